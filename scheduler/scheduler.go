// Package scheduler re-probes the optional drug image in the background so
// that a file dropped next to the binary shows up without a restart.
package scheduler

import (
	"fmt"
	"time"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/interfaces"
	"github.com/giygas/entresto-info/logging"
	"github.com/giygas/entresto-info/metrics"
	"github.com/go-co-op/gocron"
)

var _ interfaces.Scheduler = (*AssetMonitor)(nil)

// AssetMonitor probes the image every interval and stores the result
type AssetMonitor struct {
	store     interfaces.CatalogStore
	locator   interfaces.AssetLocator
	minutes   int
	scheduler *gocron.Scheduler
}

// NewAssetMonitor creates a monitor probing every minutes minutes
func NewAssetMonitor(store interfaces.CatalogStore, locator interfaces.AssetLocator, minutes int) *AssetMonitor {
	return &AssetMonitor{
		store:     store,
		locator:   locator,
		minutes:   minutes,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start probes once, then schedules the periodic probe
func (m *AssetMonitor) Start() error {
	if m.minutes < 1 {
		return fmt.Errorf("invalid probe interval: %d minutes", m.minutes)
	}

	m.Probe()

	_, err := m.scheduler.Every(m.minutes).Minutes().WaitForSchedule().Do(func() {
		m.Probe()
	})
	if err != nil {
		logging.Error("Failed to schedule image probe", "error", err)
		return fmt.Errorf("failed to schedule image probe: %w", err)
	}

	m.scheduler.StartAsync()
	logging.Info("Image monitor started", "interval_minutes", m.minutes)

	return nil
}

// Stop stops the scheduler
func (m *AssetMonitor) Stop() {
	m.scheduler.Stop()
}

// Probe looks the image up, stores the result and logs presence changes.
// A probe already in flight makes this call return the stored result.
func (m *AssetMonitor) Probe() asset.Image {
	if !m.store.BeginProbe() {
		logging.Debug("Image probe already in progress, skipping")
		return m.store.GetImage()
	}
	defer m.store.EndProbe()

	img := m.locator.Lookup()
	prev, first := m.store.RecordProbe(img, time.Now())
	metrics.SetImagePresent(img.Present)

	switch {
	case first && img.Present:
		logging.Info("Drug image found", "path", img.Path)
	case first:
		logging.Warn("Drug image not found, pages show a notice instead",
			"name", img.Name, "searched", m.locator.Candidates())
	case img.Present && !prev.Present:
		logging.Info("Drug image appeared", "path", img.Path)
	case !img.Present && prev.Present:
		logging.Warn("Drug image disappeared", "previous_path", prev.Path)
	case img.Present && img.Path != prev.Path:
		logging.Info("Drug image moved", "path", img.Path, "previous_path", prev.Path)
	default:
		logging.Debug("Image probe unchanged", "present", img.Present)
	}

	return img
}
