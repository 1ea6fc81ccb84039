package render

import (
	"bytes"
	"html/template"

	"github.com/giygas/entresto-info/catalog"
	"github.com/yuin/goldmark"
)

type pageView struct {
	Mode       string
	Title      string
	IconURL    template.URL
	Stylesheet template.CSS
	Image      imageView
	Header     string
	Subtitle   string
	Tabs       []tabLink
	Active     tabView
	Footer     []string
	Disclaimer string
}

type imageView struct {
	Present bool
	URL     string
	Alt     string
	Warning string
}

type tabLink struct {
	Label    string
	Slug     string
	Href     string
	Selected bool
}

type tabView struct {
	Label   string
	Slug    string
	Heading string
	Blocks  []block
}

// block is a section, preceded by its group heading when the group changes
type block struct {
	Group   string
	Section sectionView
}

type sectionView struct {
	Title    string
	Kind     string
	Category string
	Accent   string
	Span     string
	Badge    *catalog.Badge
	Body     template.HTML
	Items    []catalog.Item
	Bullets  []string
	Link     string
	Footnote string
}

func buildTabView(md goldmark.Markdown, tab catalog.Tab) (tabView, error) {
	heading := tab.Heading
	if heading == "" {
		heading = tab.Label()
	}

	view := tabView{
		Label:   tab.Label(),
		Slug:    tab.Slug,
		Heading: heading,
		Blocks:  make([]block, 0, len(tab.Sections)),
	}

	lastGroup := ""
	for _, s := range tab.Sections {
		body, err := markdown(md, s.Body)
		if err != nil {
			return tabView{}, err
		}

		category := s.Category
		if !category.Valid() {
			category = catalog.Informational
		}

		b := block{
			Section: sectionView{
				Title:    s.Title,
				Kind:     string(s.Kind),
				Category: string(category),
				Accent:   s.Accent,
				Span:     string(s.Span),
				Badge:    s.Badge,
				Body:     body,
				Items:    s.Items,
				Bullets:  s.Bullets,
				Link:     s.Link,
				Footnote: s.Footnote,
			},
		}
		if s.Group != lastGroup {
			b.Group = s.Group
			lastGroup = s.Group
		}
		view.Blocks = append(view.Blocks, b)
	}

	return view, nil
}

// markdown converts a section body. goldmark drops raw HTML by default.
func markdown(md goldmark.Markdown, source string) (template.HTML, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
