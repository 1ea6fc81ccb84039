// Package theme describes the visual theme of the viewer: a light and a dark
// palette, the responsive breakpoints, and how the active mode is chosen from
// the viewing environment. A Config is immutable and passed to the renderer.
package theme

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Mode is the active color theme
type Mode string

const (
	// Auto follows the browser's prefers-color-scheme media feature
	Auto  Mode = "auto"
	Light Mode = "light"
	Dark  Mode = "dark"
)

// CookieName stores an explicit theme choice between requests
const CookieName = "theme"

// HintHeader is the client hint carrying the user agent's color preference
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// ErrUnknownMode is returned by ParseMode for anything but auto, light or dark
var ErrUnknownMode = errors.New("unknown theme mode")

// Modes lists every supported mode
var Modes = []Mode{Auto, Light, Dark}

// ParseMode converts a raw mode name, case-insensitively
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.Trim(strings.TrimSpace(s), `"`)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// FromRequest resolves the mode for a request: the theme query parameter,
// then the theme cookie, then the color scheme client hint, then fallback
func FromRequest(r *http.Request, fallback Mode) Mode {
	if m, err := ParseMode(r.URL.Query().Get("theme")); err == nil {
		return m
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if m, err := ParseMode(c.Value); err == nil {
			return m
		}
	}
	if m, err := ParseMode(r.Header.Get(HintHeader)); err == nil && m != Auto {
		return m
	}
	return fallback
}

// Palette is one set of colors. Every field becomes a CSS custom property.
type Palette struct {
	Text           string
	Muted          string
	Heading        string
	Background     string
	Surface        string
	SurfaceBorder  string
	Shadow         string
	ShadowHover    string
	HeaderGradient string
	TabBackground  string
	TabText        string
	TabActive      string
	TabActiveText  string
	Link           string
	LinkHover      string
	Reference      string
	ReferenceTitle string

	Boxes  map[string]BoxColors
	Badges map[string]BadgeColors
}

// BoxColors styles one section category
type BoxColors struct {
	Background string
	Border     string
	Heading    string
	Strong     string
}

// BadgeColors styles one badge tone
type BadgeColors struct {
	Background string
	Text       string
}

// Breakpoints are the max-width media queries for narrow viewports
type Breakpoints struct {
	Tablet int
	Phone  int
}

// Config is the theme configuration handed to the renderer. It is treated as
// read-only; Default builds fresh maps on each call, so changes made by one
// holder never reach another.
type Config struct {
	Light       Palette
	Dark        Palette
	Accents     map[string]string
	Breakpoints Breakpoints
	FontStack   string
}

// Default returns the authored ENTRESTO theme
func Default() Config {
	return Config{
		Light: Palette{
			Text:           "#1e293b",
			Muted:          "#475569",
			Heading:        "#1e3a8a",
			Background:     "#ffffff",
			Surface:        "#ffffff",
			SurfaceBorder:  "#e2e8f0",
			Shadow:         "0 1px 3px rgba(0,0,0,0.08)",
			ShadowHover:    "0 3px 8px rgba(0,0,0,0.12)",
			HeaderGradient: "linear-gradient(135deg, #e74c3c 0%, #c0392b 50%, #8e44ad 100%)",
			TabBackground:  "#f1f5f9",
			TabText:        "#1e293b",
			TabActive:      "#e74c3c",
			TabActiveText:  "#ffffff",
			Link:           "#2563eb",
			LinkHover:      "#1d4ed8",
			Reference:      "#f8fafc",
			ReferenceTitle: "#1e40af",
			Boxes: map[string]BoxColors{
				"informational": {Background: "#f0f9ff", Border: "#3b82f6", Heading: "#1e3a8a", Strong: "#1e293b"},
				"warning":       {Background: "#fef2f2", Border: "#ef4444", Heading: "#991b1b", Strong: "#1e293b"},
				"success":       {Background: "#f0fdf4", Border: "#22c55e", Heading: "#166534", Strong: "#1e293b"},
				"critical":      {Background: "#fdf2f8", Border: "#dc2626", Heading: "#dc2626", Strong: "#1e293b"},
			},
			Badges: map[string]BadgeColors{
				"red":    {Background: "#fee2e2", Text: "#dc2626"},
				"green":  {Background: "#dcfce7", Text: "#16a34a"},
				"blue":   {Background: "#dbeafe", Text: "#2563eb"},
				"yellow": {Background: "#fef9c3", Text: "#ca8a04"},
				"purple": {Background: "#f3e8ff", Text: "#7c3aed"},
			},
		},
		Dark: Palette{
			Text:           "#e2e8f0",
			Muted:          "#94a3b8",
			Heading:        "#93c5fd",
			Background:     "#0f172a",
			Surface:        "#1e293b",
			SurfaceBorder:  "#334155",
			Shadow:         "0 1px 3px rgba(0,0,0,0.4)",
			ShadowHover:    "0 3px 8px rgba(0,0,0,0.5)",
			HeaderGradient: "linear-gradient(135deg, #f87171 0%, #ef4444 50%, #d8b4fe 100%)",
			TabBackground:  "#1e293b",
			TabText:        "#cbd5e1",
			TabActive:      "#e74c3c",
			TabActiveText:  "#ffffff",
			Link:           "#60a5fa",
			LinkHover:      "#93c5fd",
			Reference:      "#1e293b",
			ReferenceTitle: "#93c5fd",
			Boxes: map[string]BoxColors{
				"informational": {Background: "#172033", Border: "#60a5fa", Heading: "#93c5fd", Strong: "#f1f5f9"},
				"warning":       {Background: "#2a1a1a", Border: "#f87171", Heading: "#fca5a5", Strong: "#f1f5f9"},
				"success":       {Background: "#172318", Border: "#4ade80", Heading: "#86efac", Strong: "#f1f5f9"},
				"critical":      {Background: "#2d1318", Border: "#ef4444", Heading: "#fca5a5", Strong: "#f1f5f9"},
			},
			Badges: map[string]BadgeColors{
				"red":    {Background: "#450a0a", Text: "#fca5a5"},
				"green":  {Background: "#052e16", Text: "#86efac"},
				"blue":   {Background: "#1e3a5f", Text: "#93c5fd"},
				"yellow": {Background: "#422006", Text: "#fde047"},
				"purple": {Background: "#2e1065", Text: "#c4b5fd"},
			},
		},
		Accents: map[string]string{
			"red":    "#dc2626",
			"yellow": "#eab308",
			"blue":   "#3b82f6",
			"green":  "#22c55e",
			"purple": "#7c3aed",
		},
		Breakpoints: Breakpoints{Tablet: 768, Phone: 480},
		FontStack:   `"Source Sans Pro", -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`,
	}
}

// Palette returns the palette used when mode is forced; Auto maps to Light
func (c Config) Palette(mode Mode) Palette {
	if mode == Dark {
		return c.Dark
	}
	return c.Light
}
