package theme

import (
	"bytes"
	"fmt"
	"text/template"
)

var stylesheetTemplate = template.Must(template.New("stylesheet").Parse(stylesheetSource))

type stylesheetData struct {
	Mode    Mode
	Config  Config
	Palette Palette
}

// Stylesheet renders the CSS for a mode. Auto emits both palettes, the dark one
// behind a prefers-color-scheme media query. Selectors are identical across
// modes, only custom property values change.
func (c Config) Stylesheet(mode Mode) (string, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err := stylesheetTemplate.Execute(&buf, stylesheetData{
		Mode:    mode,
		Config:  c,
		Palette: c.Palette(mode),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render stylesheet: %w", err)
	}
	return buf.String(), nil
}

const stylesheetSource = `{{define "vars"}}
    --text: {{.Text}};
    --muted: {{.Muted}};
    --heading: {{.Heading}};
    --background: {{.Background}};
    --surface: {{.Surface}};
    --surface-border: {{.SurfaceBorder}};
    --shadow: {{.Shadow}};
    --shadow-hover: {{.ShadowHover}};
    --header-gradient: {{.HeaderGradient}};
    --tab-bg: {{.TabBackground}};
    --tab-text: {{.TabText}};
    --tab-active-bg: {{.TabActive}};
    --tab-active-text: {{.TabActiveText}};
    --link: {{.Link}};
    --link-hover: {{.LinkHover}};
    --reference-bg: {{.Reference}};
    --reference-title: {{.ReferenceTitle}};
{{- range $name, $c := .Boxes}}
    --{{$name}}-bg: {{$c.Background}};
    --{{$name}}-border: {{$c.Border}};
    --{{$name}}-heading: {{$c.Heading}};
    --{{$name}}-strong: {{$c.Strong}};
{{- end}}
{{- range $tone, $b := .Badges}}
    --badge-{{$tone}}-bg: {{$b.Background}};
    --badge-{{$tone}}-text: {{$b.Text}};
{{- end}}
{{end -}}
{{- if eq .Mode "auto" -}}
:root {
    color-scheme: light dark;{{template "vars" .Config.Light}}}
@media (prefers-color-scheme: dark) {
  :root {{"{"}}{{template "vars" .Config.Dark}}  }
}
{{- else -}}
:root {
    color-scheme: {{.Mode}};{{template "vars" .Palette}}}
{{- end}}

* { box-sizing: border-box; }
body {
    margin: 0;
    font-family: {{.Config.FontStack}};
    color: var(--text);
    background: var(--background);
    line-height: 1.5;
}
a { color: var(--link); }
a:hover { color: var(--link-hover); }

.block-container { max-width: 100%; padding: 1rem; }

.main-header {
    font-size: 2.5rem;
    font-weight: 700;
    text-align: center;
    padding: 1rem 0;
    margin: 0;
    background: var(--header-gradient);
    -webkit-background-clip: text;
    background-clip: text;
    -webkit-text-fill-color: transparent;
}
.sub-header { font-size: 1.2rem; color: var(--muted); text-align: center; margin-bottom: 1rem; }
.drug-image-container { display: flex; justify-content: center; align-items: center; padding: 0.5rem 0; margin-bottom: 1rem; }
.drug-image-container img { max-width: 50%; height: auto; }
.image-warning {
    background: var(--badge-yellow-bg);
    color: var(--badge-yellow-text);
    border-radius: 8px;
    padding: 0.8rem 1rem;
    max-width: 50%;
    margin: 0 auto;
}
hr.divider { border: none; border-top: 1px solid var(--surface-border); margin: 1rem 0; }

.tab-strip { display: flex; flex-wrap: wrap; gap: 4px; justify-content: center; margin-bottom: 1rem; }
.tab {
    height: 45px;
    line-height: 45px;
    padding: 0 12px;
    background-color: var(--tab-bg);
    color: var(--tab-text);
    border-radius: 8px;
    font-size: 0.9rem;
    white-space: nowrap;
    flex: 0 1 auto;
    margin: 2px;
    text-decoration: none;
}
.tab[aria-selected="true"] { background-color: var(--tab-active-bg); color: var(--tab-active-text); }

.sections { display: grid; grid-template-columns: repeat(2, minmax(0, 1fr)); column-gap: 1rem; }
.span-full, .group-heading { grid-column: 1 / -1; }
.group-heading { color: var(--heading); margin: 1rem 0 0.25rem; }

.box {
    background-color: var(--box-bg);
    padding: 1.2rem;
    border-radius: 10px;
    border-left: 5px solid var(--box-border);
    margin: 0.8rem 0;
    overflow-wrap: break-word;
}
.box h3, .box h4, .box h5 { color: var(--box-heading); margin-top: 0; }
.box strong { color: var(--box-strong); }
{{- range $name, $c := .Config.Light.Boxes}}
.category-{{$name}} { --box-bg: var(--{{$name}}-bg); --box-border: var(--{{$name}}-border); --box-heading: var(--{{$name}}-heading); --box-strong: var(--{{$name}}-strong); }
{{- end}}
.box.category-critical { border: 2px solid var(--box-border); border-left-width: 5px; }

.card-item {
    background: var(--surface);
    border: 1px solid var(--surface-border);
    border-radius: 10px;
    padding: 1rem;
    margin: 0.6rem 0;
    box-shadow: var(--shadow);
    transition: box-shadow 0.2s;
}
.card-item:hover { box-shadow: var(--shadow-hover); }
.card-item h4 { margin: 0 0 0.5rem 0; color: var(--heading); font-size: 1.05rem; }
.card-detail { font-size: 0.92rem; margin: 0.25rem 0; line-height: 1.5; }
.card-detail strong { color: var(--muted); }
.footnote { color: var(--muted); font-size: 0.85rem; }
{{- range $name, $color := .Config.Accents}}
.accent-{{$name}} { border-left: 4px solid {{$color}}; }
{{- end}}

.card-badge { display: inline-block; padding: 2px 8px; border-radius: 12px; font-size: 0.82rem; font-weight: 600; margin-right: 4px; }
{{- range $tone, $b := .Config.Light.Badges}}
.card-badge-{{$tone}} { background: var(--badge-{{$tone}}-bg); color: var(--badge-{{$tone}}-text); }
{{- end}}

.reference-item {
    background-color: var(--reference-bg);
    padding: 1rem;
    margin: 0.5rem 0;
    border-radius: 8px;
    border-left: 3px solid var(--informational-border);
}
.reference-item strong { color: var(--reference-title); font-size: 1.05rem; }
.reference-item a { text-decoration: none; word-break: break-all; display: block; margin-top: 0.3rem; }
.reference-item a:hover { text-decoration: underline; }

.page-footer { text-align: center; color: var(--muted); padding: 2rem 0; }
.page-footer .disclaimer { font-size: 0.9rem; margin-top: 1rem; font-style: italic; }

@media (max-width: {{.Config.Breakpoints.Tablet}}px) {
    .block-container { padding-left: 0.5rem; padding-right: 0.5rem; }
    .main-header { font-size: 1.6rem; padding: 0.5rem 0; }
    .sub-header { font-size: 0.95rem; margin-bottom: 0.5rem; }
    .tab-strip { gap: 3px; }
    .tab { font-size: 0.75rem; padding: 0 6px; height: 38px; line-height: 38px; }
    .box { padding: 0.8rem; font-size: 0.9rem; }
    .box h3, .box h4 { font-size: 1rem; }
    .sections { grid-template-columns: minmax(0, 1fr); }
    .card-item { padding: 0.8rem; margin: 0.4rem 0; }
    .card-item h4 { font-size: 0.95rem; }
    .card-detail { font-size: 0.85rem; }
    .drug-image-container img, .image-warning { max-width: 100%; }
    h1 { font-size: 1.5rem; }
    h2 { font-size: 1.3rem; }
    h3 { font-size: 1.1rem; }
    h4 { font-size: 1rem; }
}

@media (max-width: {{.Config.Breakpoints.Phone}}px) {
    .main-header { font-size: 1.3rem; }
    .sub-header { font-size: 0.85rem; }
    .tab { font-size: 0.7rem; padding: 0 4px; height: 34px; line-height: 34px; }
    .box { padding: 0.6rem; font-size: 0.85rem; border-radius: 8px; }
}
`
