package render

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

const pageSource = `{{define "badge"}}{{with .}} <span class="card-badge card-badge-{{.Tone}}">{{.Text}}</span>{{end}}{{end}}

{{- define "details"}}
{{- range .Items}}
    <p class="card-detail">{{if .Label}}<strong>{{.Label}}:</strong> {{end}}{{.Value}}{{template "badge" .Badge}}</p>
{{- end}}
{{- if .Bullets}}
    <ul>
{{- range .Bullets}}
      <li>{{.}}</li>
{{- end}}
    </ul>
{{- end}}
{{- if .Footnote}}
    <p class="card-detail footnote">{{.Footnote}}</p>
{{- end}}
{{- end}}

{{- define "section"}}
{{- if eq .Kind "reference"}}
  <div class="reference-item span-{{.Span}}">
    <strong>{{.Title}}</strong>
    {{.Body}}
{{- if .Link}}
    <a href="{{.Link}}" target="_blank" rel="noopener noreferrer">🔗 {{.Link}}</a>
{{- end}}
  </div>
{{- else if eq .Kind "card"}}
  <div class="card-item category-{{.Category}}{{if .Accent}} accent-{{.Accent}}{{end}} span-{{.Span}}">
    <h4>{{.Title}}{{template "badge" .Badge}}</h4>
{{- if .Body}}
    <div class="card-detail">{{.Body}}</div>
{{- end}}
{{- template "details" .}}
  </div>
{{- else}}
  <div class="box category-{{.Category}} span-{{.Span}}">
    <h4>{{.Title}}{{template "badge" .Badge}}</h4>
{{- if .Body}}
    {{.Body}}
{{- end}}
{{- template "details" .}}
  </div>
{{- end}}
{{- end -}}

<!DOCTYPE html>
<html lang="en" data-theme="{{.Mode}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="icon" href="{{.IconURL}}">
<style>
{{.Stylesheet}}
</style>
</head>
<body>
<main class="block-container">
<header class="page-header">
  <div class="drug-image-container">
{{- if .Image.Present}}
    <img src="{{.Image.URL}}" alt="{{.Image.Alt}}">
{{- else}}
    <div class="image-warning" role="alert">{{.Image.Warning}}</div>
{{- end}}
  </div>
  <h1 class="main-header">{{.Header}}</h1>
  <p class="sub-header">{{.Subtitle}}</p>
</header>
<hr class="divider">
<nav class="tab-strip" role="tablist">
{{- range .Tabs}}
  <a class="tab" role="tab" href="{{.Href}}" aria-selected="{{.Selected}}" data-tab="{{.Slug}}">{{.Label}}</a>
{{- end}}
</nav>
<section class="tab-panel" role="tabpanel" id="panel-{{.Active.Slug}}">
<h2>{{.Active.Heading}}</h2>
<div class="sections">
{{- range .Active.Blocks}}
{{- if .Group}}
  <h3 class="group-heading">{{.Group}}</h3>
{{- end}}
{{- template "section" .Section}}
{{- end}}
</div>
</section>
<hr class="divider">
<footer class="page-footer">
{{- range $i, $line := .Footer}}
  <p>{{if eq $i 0}}<strong>{{$line}}</strong>{{else}}{{$line}}{{end}}</p>
{{- end}}
{{- if .Disclaimer}}
  <p class="disclaimer">{{.Disclaimer}}</p>
{{- end}}
</footer>
</main>
</body>
</html>
`
