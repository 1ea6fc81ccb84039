// Package catalog holds the static drug reference content shown by the viewer.
// The content lives in an embedded YAML document so that text changes never
// touch rendering code. A Catalog is built once and has no write path.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/entresto.yaml
var content []byte

var (
	// ErrEmptyTabTitle is returned when a tab has no title
	ErrEmptyTabTitle = errors.New("tab title is empty")
	// ErrNoTabs is returned when the document defines no tab at all
	ErrNoTabs = errors.New("catalog has no tabs")
)

// Catalog is the full, read-only data set backing all tabs
type Catalog struct {
	page  Page
	tabs  []Tab
	index map[string]int
}

// Load decodes the embedded ENTRESTO content
func Load() (*Catalog, error) {
	return Parse(content)
}

// Raw returns a copy of the embedded content document
func Raw() []byte {
	return bytes.Clone(content)
}

// Parse decodes a catalog document and applies section defaults
func Parse(raw []byte) (*Catalog, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		page:  doc.Page,
		tabs:  make([]Tab, len(doc.Tabs)),
		index: make(map[string]int, len(doc.Tabs)),
	}

	for i, tab := range doc.Tabs {
		tab.Title = strings.TrimSpace(tab.Title)
		tab.Slug = Slugify(tab.Title)
		for j := range tab.Sections {
			normalizeSection(&tab.Sections[j])
		}
		c.tabs[i] = tab

		// first tab wins on a slug collision, the quality report flags it
		if _, exists := c.index[tab.Slug]; !exists && tab.Slug != "" {
			c.index[tab.Slug] = i
		}
	}

	if err := Validate(c); err != nil {
		return nil, err
	}

	return c, nil
}

func normalizeSection(s *Section) {
	s.Title = strings.TrimSpace(s.Title)
	s.Body = strings.TrimSpace(s.Body)
	if s.Kind == "" {
		s.Kind = KindBox
	}
	if s.Category == "" {
		s.Category = Informational
	}
	if s.Span == "" {
		s.Span = SpanFull
	}
}

// Validate checks that every tab has a non-empty title
func Validate(c *Catalog) error {
	if c == nil || len(c.tabs) == 0 {
		return ErrNoTabs
	}
	for i, tab := range c.tabs {
		if strings.TrimSpace(tab.Title) == "" {
			return fmt.Errorf("tab %d: %w", i+1, ErrEmptyTabTitle)
		}
	}
	return nil
}

// Page returns the header and footer content
func (c *Catalog) Page() Page {
	p := c.page
	p.Footer = append([]string(nil), c.page.Footer...)
	return p
}

// Tabs returns the tabs in authored order. The result is a copy.
func (c *Catalog) Tabs() []Tab {
	tabs := make([]Tab, len(c.tabs))
	for i, tab := range c.tabs {
		tabs[i] = cloneTab(tab)
	}
	return tabs
}

// Len returns the number of tabs
func (c *Catalog) Len() int {
	return len(c.tabs)
}

// Tab looks up a tab by slug
func (c *Catalog) Tab(slug string) (Tab, bool) {
	i, ok := c.index[slug]
	if !ok {
		return Tab{}, false
	}
	return cloneTab(c.tabs[i]), true
}

// Default returns the tab selected when none is requested
func (c *Catalog) Default() Tab {
	return cloneTab(c.tabs[0])
}

// Labels returns the tab strip labels in authored order
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.tabs))
	for i, tab := range c.tabs {
		labels[i] = tab.Label()
	}
	return labels
}

// SectionCount returns the number of sections across all tabs
func (c *Catalog) SectionCount() int {
	n := 0
	for _, tab := range c.tabs {
		n += len(tab.Sections)
	}
	return n
}

// MarshalJSON exposes the catalog through the read-only API
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Page Page  `json:"page"`
		Tabs []Tab `json:"tabs"`
	}{
		Page: c.page,
		Tabs: c.tabs,
	})
}

func cloneTab(t Tab) Tab {
	sections := make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		sections[i] = cloneSection(s)
	}
	t.Sections = sections
	return t
}

func cloneSection(s Section) Section {
	if s.Badge != nil {
		b := *s.Badge
		s.Badge = &b
	}
	if s.Items != nil {
		items := make([]Item, len(s.Items))
		for i, item := range s.Items {
			if item.Badge != nil {
				b := *item.Badge
				item.Badge = &b
			}
			items[i] = item
		}
		s.Items = items
	}
	if s.Bullets != nil {
		s.Bullets = append([]string(nil), s.Bullets...)
	}
	return s
}
