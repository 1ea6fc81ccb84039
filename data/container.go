// Package data holds the runtime state of the viewer: the loaded catalog, the
// server start time and the result of the latest image probe. Values are
// swapped atomically so readers never take a lock.
package data

import (
	"sync/atomic"
	"time"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/interfaces"
	"github.com/giygas/entresto-info/logging"
)

var _ interfaces.CatalogStore = (*Container)(nil)

// Container is the shared state behind the HTTP handlers
type Container struct {
	catalog         atomic.Pointer[catalog.Catalog]
	image           atomic.Pointer[asset.Image]
	lastProbe       atomic.Value // time.Time
	serverStartTime atomic.Value // time.Time
	probing         atomic.Bool
}

// NewContainer creates an empty container. The catalog is nil until set.
func NewContainer() *Container {
	c := &Container{}
	c.lastProbe.Store(time.Time{})
	c.serverStartTime.Store(time.Time{})
	return c
}

// GetCatalog returns the loaded catalog or nil
func (c *Container) GetCatalog() *catalog.Catalog {
	return c.catalog.Load()
}

// SetCatalog replaces the catalog
func (c *Container) SetCatalog(cat *catalog.Catalog) {
	c.catalog.Store(cat)
}

// SetServerStartTime sets the server start time
func (c *Container) SetServerStartTime(t time.Time) {
	c.serverStartTime.Store(t)
}

// GetServerStartTime returns the server start time
func (c *Container) GetServerStartTime() time.Time {
	if t, ok := c.serverStartTime.Load().(time.Time); ok {
		return t
	}
	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// GetImage returns the last probe result. Before the first probe the image
// is reported absent.
func (c *Container) GetImage() asset.Image {
	if img := c.image.Load(); img != nil {
		return *img
	}
	return asset.Image{}
}

// GetLastProbe returns when the image was last probed
func (c *Container) GetLastProbe() time.Time {
	if t, ok := c.lastProbe.Load().(time.Time); ok {
		return t
	}
	return time.Time{}
}

// RecordProbe stores a probe result and returns the one it replaced.
// first is true when no probe was recorded before.
func (c *Container) RecordProbe(img asset.Image, at time.Time) (asset.Image, bool) {
	prev := c.image.Swap(&img)
	c.lastProbe.Store(at)
	if prev == nil {
		return asset.Image{}, true
	}
	return *prev, false
}

// BeginProbe marks a probe as running. It returns false when one already is.
func (c *Container) BeginProbe() bool {
	return c.probing.CompareAndSwap(false, true)
}

// EndProbe marks the running probe as finished
func (c *Container) EndProbe() {
	c.probing.Store(false)
}

// IsProbing reports whether a probe is running
func (c *Container) IsProbing() bool {
	return c.probing.Load()
}
