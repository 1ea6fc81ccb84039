// Package health reports whether the viewer can serve its pages.
package health

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/giygas/entresto-info/interfaces"
)

// HealthCheckerImpl implements interfaces.HealthChecker
type HealthCheckerImpl struct {
	store   interfaces.CatalogStore
	locator interfaces.AssetLocator
	now     func() time.Time
}

// NewHealthChecker creates a health checker reading from store. The image is
// looked up through locator on every check, like the pages do.
func NewHealthChecker(store interfaces.CatalogStore, locator interfaces.AssetLocator) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		store:   store,
		locator: locator,
		now:     time.Now,
	}
}

// HealthCheck is unhealthy (503) without a catalog, degraded (200) when the
// drug image is missing and healthy (200) otherwise
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	cat := h.store.GetCatalog()
	img := h.store.GetImage()
	if h.locator != nil {
		img = h.locator.Lookup()
	}
	lastProbe := h.store.GetLastProbe()

	switch {
	case cat == nil || cat.Len() == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case !img.Present:
		status = "degraded"
		httpStatus = http.StatusOK
	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	tabs, sections := 0, 0
	if cat != nil {
		tabs = cat.Len()
		sections = cat.SectionCount()
	}

	data = map[string]any{
		"tabs":          tabs,
		"sections":      sections,
		"image_present": img.Present,
		"image_name":    img.Name,
	}

	// last background probe, the image fields above are live
	if !lastProbe.IsZero() {
		data["last_image_check"] = lastProbe.Format(time.RFC3339)
	}

	if start := h.store.GetServerStartTime(); !start.IsZero() {
		uptime := h.now().Sub(start)
		data["uptime_seconds"] = int64(uptime.Seconds())
		data["uptime"] = FormatUptime(uptime)
	}

	return status, data, httpStatus
}

// FormatUptime renders a duration as "1d 2h 3m 4s", omitting leading zero units
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
