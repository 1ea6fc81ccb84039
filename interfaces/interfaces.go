// Package interfaces defines the seams between the viewer's packages so that
// handlers, health checks and the asset monitor can be tested in isolation.
package interfaces

import (
	"io"
	"net/http"
	"time"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/render"
)

// ContentQualityReport lists non-fatal content problems found in a catalog
type ContentQualityReport struct {
	DuplicateSlugs      []string
	TabsWithoutSections []string
	EmptySections       []string // "<tab slug>/<section title>"
	UnknownCategories   []string // "<tab slug>/<section title>: <category>"
}

// HasIssues reports whether anything was found
func (r *ContentQualityReport) HasIssues() bool {
	return len(r.DuplicateSlugs)+len(r.TabsWithoutSections)+len(r.EmptySections)+len(r.UnknownCategories) > 0
}

// CatalogStore holds the runtime state shared by the HTTP surface and the
// asset monitor. All methods are safe for concurrent use.
type CatalogStore interface {
	GetCatalog() *catalog.Catalog
	SetCatalog(c *catalog.Catalog)
	GetServerStartTime() time.Time

	// Image probe state
	GetImage() asset.Image
	GetLastProbe() time.Time
	RecordProbe(img asset.Image, at time.Time) (previous asset.Image, first bool)
	BeginProbe() bool
	EndProbe()
}

// AssetLocator finds the optional drug image
type AssetLocator interface {
	Lookup() asset.Image
	Candidates() []string
}

// PageRenderer renders one viewer page
type PageRenderer interface {
	Render(w io.Writer, req render.Request) error
	HasTab(slug string) bool
}

// Scheduler runs background jobs
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker reports the health of the running viewer
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, httpStatus int)
}

// ContentValidator checks user input and catalog content
type ContentValidator interface {
	ValidateTabSlug(slug string) error
	ReportContentQuality(c *catalog.Catalog) *ContentQualityReport
}

// HTTPHandler is the set of endpoints served by the viewer
type HTTPHandler interface {
	ServeIndex(w http.ResponseWriter, r *http.Request)
	ServeTab(w http.ResponseWriter, r *http.Request)
	ServeImage(w http.ResponseWriter, r *http.Request)
	ServeCatalog(w http.ResponseWriter, r *http.Request)
	ServeTabJSON(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}
