package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var expectedTitles = []string{
	"Overview",
	"Mechanism",
	"Dosage",
	"Pharmacokinetics",
	"Contraindications",
	"Side Effects",
	"Interactions",
	"Comparison",
	"References",
	"Manufacturer",
}

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tabs := c.Tabs()
	if len(tabs) != 10 {
		t.Fatalf("Expected 10 tabs, got %d", len(tabs))
	}

	for i, tab := range tabs {
		if tab.Title != expectedTitles[i] {
			t.Errorf("tab %d: got %q, want %q", i, tab.Title, expectedTitles[i])
		}
		if len(tab.Sections) == 0 {
			t.Errorf("tab %q has no sections", tab.Title)
		}
		for _, s := range tab.Sections {
			if !s.Category.Valid() {
				t.Errorf("tab %q section %q has invalid category %q", tab.Title, s.Title, s.Category)
			}
			if s.Kind != KindBox && s.Kind != KindCard && s.Kind != KindReference {
				t.Errorf("tab %q section %q has unknown kind %q", tab.Title, s.Title, s.Kind)
			}
		}
	}

	page := c.Page()
	if page.Image != "ENTRESTO.png" {
		t.Errorf("Expected image ENTRESTO.png, got %q", page.Image)
	}
	if page.Title == "" || page.Header == "" {
		t.Error("Page title and header should be set")
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first.Tabs(), second.Tabs()); diff != "" {
		t.Errorf("Two loads differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Page(), second.Page()); diff != "" {
		t.Errorf("Page differs (-first +second):\n%s", diff)
	}

	a, err := first.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	b, err := second.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("JSON encodings of two loads should be byte-identical")
	}
}

func TestTabsReturnsCopy(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tabs := c.Tabs()
	tabs[0].Title = "mutated"
	tabs[0].Sections[0].Title = "mutated"
	tabs[2].Sections[1].Items[0].Value = "mutated"

	fresh := c.Tabs()
	if fresh[0].Title != "Overview" {
		t.Error("Mutating the returned tabs changed the catalog title")
	}
	if fresh[0].Sections[0].Title == "mutated" {
		t.Error("Mutating a returned section changed the catalog")
	}
	if fresh[2].Sections[1].Items[0].Value == "mutated" {
		t.Error("Mutating a returned item changed the catalog")
	}
}

func TestTabLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		slug  string
		title string
		found bool
	}{
		{"overview", "Overview", true},
		{"side-effects", "Side Effects", true},
		{"manufacturer", "Manufacturer", true},
		{"Dosage", "", false},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			tab, ok := c.Tab(tt.slug)
			if ok != tt.found {
				t.Fatalf("Tab(%q) found = %v, want %v", tt.slug, ok, tt.found)
			}
			if ok && tab.Title != tt.title {
				t.Errorf("Tab(%q) title = %q, want %q", tt.slug, tab.Title, tt.title)
			}
		})
	}

	if def := c.Default(); def.Slug != "overview" {
		t.Errorf("Default tab should be overview, got %s", def.Slug)
	}
}

func TestLabels(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	labels := c.Labels()
	if len(labels) != 10 {
		t.Fatalf("Expected 10 labels, got %d", len(labels))
	}
	for i, label := range labels {
		if !strings.HasSuffix(label, expectedTitles[i]) {
			t.Errorf("label %d = %q, want suffix %q", i, label, expectedTitles[i])
		}
	}
}

func TestDosageContent(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	dosage, ok := c.Tab("dosage")
	if !ok {
		t.Fatal("dosage tab missing")
	}

	doses := map[string]bool{}
	pediatric := 0
	for _, s := range dosage.Sections {
		for _, item := range s.Items {
			if item.Label == "Dose" {
				doses[item.Value] = true
			}
		}
		if strings.HasPrefix(s.Group, "👶 Pediatric Dosing") {
			pediatric++
		}
	}

	for _, want := range []string{
		"49/51 mg (sacubitril/valsartan)",
		"24/26 mg (sacubitril/valsartan)",
		"97/103 mg (sacubitril/valsartan)",
	} {
		if !doses[want] {
			t.Errorf("Missing adult dose card %q", want)
		}
	}
	if pediatric != 2 {
		t.Errorf("Expected 2 pediatric weight-based cards, got %d", pediatric)
	}
}

func TestParseDefaults(t *testing.T) {
	raw := []byte(`
page:
  title: "Test"
tabs:
  - title: "Only Tab"
    sections:
      - title: "  Plain  "
`)
	c, err := Parse(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tab := c.Default()
	if tab.Slug != "only-tab" {
		t.Errorf("Expected slug only-tab, got %s", tab.Slug)
	}
	s := tab.Sections[0]
	if s.Title != "Plain" {
		t.Errorf("Expected trimmed title, got %q", s.Title)
	}
	if s.Kind != KindBox || s.Category != Informational || s.Span != SpanFull {
		t.Errorf("Unexpected defaults: kind=%s category=%s span=%s", s.Kind, s.Category, s.Span)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "empty tab title",
			raw:     "tabs:\n  - title: \"Ok\"\n  - title: \"  \"\n",
			wantErr: ErrEmptyTabTitle,
		},
		{
			name:    "no tabs",
			raw:     "page:\n  title: \"x\"\n",
			wantErr: ErrNoTabs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Parse([]byte("tabs:\n  - title: x\n    colour: red\n")); err == nil {
		t.Error("Unknown fields should be rejected")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"informational", Informational, false},
		{"WARNING", Warning, false},
		{" success ", Success, false},
		{"critical", Critical, false},
		{"danger", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Overview", "overview"},
		{"Side Effects", "side-effects"},
		{"Médicaments génériques", "medicaments-generiques"},
		{"  Novartis AG  ", "novartis-ag"},
		{"📖 Overview", "overview"},
		{"A/B -- C", "a-b-c"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
