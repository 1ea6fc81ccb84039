// Package validation checks tab slugs received over HTTP and reports content
// problems in a catalog. Content problems never stop the viewer.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/interfaces"
)

const maxSlugLength = 64

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

var (
	ErrEmptySlug   = errors.New("tab slug cannot be empty")
	ErrInvalidSlug = errors.New("invalid tab slug")
)

// ContentValidatorImpl implements interfaces.ContentValidator
type ContentValidatorImpl struct{}

// NewContentValidator creates a new content validator
func NewContentValidator() interfaces.ContentValidator {
	return &ContentValidatorImpl{}
}

// ValidateTabSlug accepts 1 to 64 characters of lowercase letters, digits and dashes
func (v *ContentValidatorImpl) ValidateTabSlug(slug string) error {
	if slug == "" {
		return ErrEmptySlug
	}

	if len(slug) > maxSlugLength {
		return fmt.Errorf("%w: maximum %d characters", ErrInvalidSlug, maxSlugLength)
	}

	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("%w: only lowercase letters, digits and dashes are allowed", ErrInvalidSlug)
	}

	return nil
}

// ReportContentQuality lists duplicate slugs, tabs without sections, sections
// with no content and sections whose category is not known
func (v *ContentValidatorImpl) ReportContentQuality(c *catalog.Catalog) *interfaces.ContentQualityReport {
	report := &interfaces.ContentQualityReport{
		DuplicateSlugs:      []string{},
		TabsWithoutSections: []string{},
		EmptySections:       []string{},
		UnknownCategories:   []string{},
	}
	if c == nil {
		return report
	}

	seen := make(map[string]int)
	for _, tab := range c.Tabs() {
		seen[tab.Slug]++
		if seen[tab.Slug] == 2 {
			report.DuplicateSlugs = append(report.DuplicateSlugs, tab.Slug)
		}

		if len(tab.Sections) == 0 {
			report.TabsWithoutSections = append(report.TabsWithoutSections, tab.Slug)
			continue
		}

		for _, s := range tab.Sections {
			where := tab.Slug + "/" + s.Title
			if isEmptySection(s) {
				report.EmptySections = append(report.EmptySections, where)
			}
			if !s.Category.Valid() {
				report.UnknownCategories = append(report.UnknownCategories, fmt.Sprintf("%s: %s", where, s.Category))
			}
		}
	}

	return report
}

// isEmptySection is true when a section would render as a bare heading
func isEmptySection(s catalog.Section) bool {
	return strings.TrimSpace(s.Body) == "" &&
		len(s.Items) == 0 &&
		len(s.Bullets) == 0 &&
		s.Link == "" &&
		s.Footnote == ""
}
