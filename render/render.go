// Package render produces the viewer page from the content catalog: a header
// with the drug image (or a fallback notice), the tab strip, and the sections
// of the selected tab. Markdown bodies are converted once when the renderer is
// built; per request only the theme, the image lookup and the selection vary.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/theme"
	"github.com/yuin/goldmark"
)

// ErrUnknownTab is returned when the requested tab slug is not in the catalog
var ErrUnknownTab = errors.New("unknown tab")

// Request selects what a single render shows
type Request struct {
	Tab   string // slug, empty selects the first tab
	Mode  theme.Mode
	Image asset.Image
}

// Renderer renders pages for one catalog and one theme configuration
type Renderer struct {
	catalog     *catalog.Catalog
	page        catalog.Page
	tabs        []tabView
	stylesheets map[theme.Mode]template.CSS
	tabHref     func(slug string, first bool) string
	imageURL    string
}

// Option customizes a Renderer
type Option func(*Renderer)

// WithTabHref sets how tab strip links are built
func WithTabHref(fn func(slug string, first bool) string) Option {
	return func(r *Renderer) {
		r.tabHref = fn
	}
}

// WithImageURL sets the src used for the drug image
func WithImageURL(u string) Option {
	return func(r *Renderer) {
		r.imageURL = u
	}
}

// ServerTabHref links tabs to the HTTP routes
func ServerTabHref(slug string, first bool) string {
	if first {
		return "/"
	}
	return "/tab/" + url.PathEscape(slug)
}

// StaticTabHref links tabs to exported files
func StaticTabHref(slug string, first bool) string {
	if first {
		return "index.html"
	}
	return url.PathEscape(slug) + ".html"
}

// New prepares a renderer. Markdown and stylesheets are rendered here.
func New(c *catalog.Catalog, cfg theme.Config, opts ...Option) (*Renderer, error) {
	if c == nil {
		return nil, errors.New("renderer needs a catalog")
	}

	r := &Renderer{
		catalog:     c,
		page:        c.Page(),
		stylesheets: make(map[theme.Mode]template.CSS, len(theme.Modes)),
		tabHref:     ServerTabHref,
		imageURL:    "/image",
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, mode := range theme.Modes {
		css, err := cfg.Stylesheet(mode)
		if err != nil {
			return nil, err
		}
		// generated from the theme config, not from user input
		r.stylesheets[mode] = template.CSS(css)
	}

	md := goldmark.New()
	for _, tab := range c.Tabs() {
		view, err := buildTabView(md, tab)
		if err != nil {
			return nil, fmt.Errorf("tab %q: %w", tab.Title, err)
		}
		r.tabs = append(r.tabs, view)
	}

	return r, nil
}

// Render writes the full page for req
func (r *Renderer) Render(w io.Writer, req Request) error {
	view, err := r.pageView(req)
	if err != nil {
		return err
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// RenderString is Render into a string
func (r *Renderer) RenderString(req Request) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HasTab reports whether slug names a tab
func (r *Renderer) HasTab(slug string) bool {
	_, ok := r.catalog.Tab(slug)
	return ok
}

// FallbackNotice is the warning shown when the drug image is missing
func FallbackNotice(name string) string {
	return fmt.Sprintf("⚠️ Drug box image not found. Please place %s in the app folder.", name)
}

func (r *Renderer) pageView(req Request) (pageView, error) {
	mode := req.Mode
	if _, err := theme.ParseMode(string(mode)); err != nil {
		mode = theme.Auto
	}

	selected := 0
	if req.Tab != "" {
		selected = -1
		for i, tab := range r.tabs {
			if tab.Slug == req.Tab {
				selected = i
				break
			}
		}
		if selected < 0 {
			return pageView{}, fmt.Errorf("%w: %q", ErrUnknownTab, req.Tab)
		}
	}

	links := make([]tabLink, len(r.tabs))
	for i, tab := range r.tabs {
		links[i] = tabLink{
			Label:    tab.Label,
			Slug:     tab.Slug,
			Href:     r.tabHref(tab.Slug, i == 0),
			Selected: i == selected,
		}
	}

	imageName := req.Image.Name
	if imageName == "" {
		imageName = r.page.Image
	}
	img := imageView{Present: req.Image.Present}
	if img.Present {
		img.URL = r.imageURL
		img.Alt = strings.TrimSpace(r.page.Drug + " " + r.page.Generic + " package")
	} else {
		img.Warning = FallbackNotice(imageName)
	}

	return pageView{
		Mode:       string(mode),
		Title:      r.page.Title,
		IconURL:    iconURL(r.page.Icon),
		Stylesheet: r.stylesheets[mode],
		Image:      img,
		Header:     r.page.Header,
		Subtitle:   r.page.Subtitle,
		Tabs:       links,
		Active:     r.tabs[selected],
		Footer:     r.page.Footer,
		Disclaimer: r.page.Disclaimer,
	}, nil
}

// iconURL wraps an emoji into an inline SVG favicon
func iconURL(icon string) template.URL {
	if icon == "" {
		return ""
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` +
		template.HTMLEscapeString(icon) + `</text></svg>`
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
