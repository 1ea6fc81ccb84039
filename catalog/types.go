package catalog

import (
	"fmt"
	"strings"
)

// Category is the visual category of a Topic Section. It is a styling hint only.
type Category string

const (
	Informational Category = "informational"
	Warning       Category = "warning"
	Success       Category = "success"
	Critical      Category = "critical"
)

// Categories lists every known category in display order
var Categories = []Category{Informational, Warning, Success, Critical}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw category name, case-insensitively
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Kind selects how a section is laid out on the page
type Kind string

const (
	KindBox       Kind = "box"
	KindCard      Kind = "card"
	KindReference Kind = "reference"
)

// Span controls whether a section takes the full row or half of it
type Span string

const (
	SpanFull Span = "full"
	SpanHalf Span = "half"
)

// Badge is a small colored label attached to a section title or an item value
type Badge struct {
	Text string `yaml:"text" json:"text"`
	Tone string `yaml:"tone" json:"tone"`
}

// Item is a label/value row, e.g. the Dose or Schedule line of a dosing card
type Item struct {
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	Badge *Badge `yaml:"badge,omitempty" json:"badge,omitempty"`
}

// Section is one Topic Section: a self-contained block of reference text
type Section struct {
	Title    string   `yaml:"title" json:"title"`
	Group    string   `yaml:"group,omitempty" json:"group,omitempty"`
	Kind     Kind     `yaml:"kind,omitempty" json:"kind"`
	Category Category `yaml:"category,omitempty" json:"category"`
	Accent   string   `yaml:"accent,omitempty" json:"accent,omitempty"`
	Span     Span     `yaml:"span,omitempty" json:"span"`
	Badge    *Badge   `yaml:"badge,omitempty" json:"badge,omitempty"`
	Body     string   `yaml:"body,omitempty" json:"body,omitempty"`
	Items    []Item   `yaml:"items,omitempty" json:"items,omitempty"`
	Bullets  []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
	Link     string   `yaml:"link,omitempty" json:"link,omitempty"`
	Footnote string   `yaml:"footnote,omitempty" json:"footnote,omitempty"`
}

// Tab is a named, ordered group of Topic Sections
type Tab struct {
	Title    string    `yaml:"title" json:"title"`
	Icon     string    `yaml:"icon,omitempty" json:"icon,omitempty"`
	Heading  string    `yaml:"heading,omitempty" json:"heading,omitempty"`
	Slug     string    `yaml:"-" json:"slug"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Label is the text shown in the tab strip
func (t Tab) Label() string {
	if t.Icon == "" {
		return t.Title
	}
	return t.Icon + " " + t.Title
}

// Page holds the header and footer text surrounding the tabs
type Page struct {
	Drug       string   `yaml:"drug" json:"drug"`
	Generic    string   `yaml:"generic" json:"generic"`
	Title      string   `yaml:"title" json:"title"`
	Icon       string   `yaml:"icon" json:"icon"`
	Header     string   `yaml:"header" json:"header"`
	Subtitle   string   `yaml:"subtitle" json:"subtitle"`
	Image      string   `yaml:"image" json:"image"`
	Footer     []string `yaml:"footer" json:"footer"`
	Disclaimer string   `yaml:"disclaimer" json:"disclaimer"`
}

// document is the on-disk shape of the content file
type document struct {
	Page Page  `yaml:"page"`
	Tabs []Tab `yaml:"tabs"`
}
