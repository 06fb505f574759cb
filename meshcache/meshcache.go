// Package meshcache caches extracted meshes keyed by region and a caller
// supplied version stamp, so a batch re-extracting the same region after an
// unrelated edit elsewhere in the volume can skip the extractor entirely.
// Grounded on FortressVision's BlockMesher/ResultStore pair, which checks a
// ResultStore keyed by (origin, mtime) before regenerating geometry.
package meshcache

import (
	"golang.org/x/sync/syncmap"

	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/meshbuf"
	"github.com/voxelsplace/cubicmesh/region"
)

// Key identifies one cached mesh: the region it covers and a version stamp
// the caller bumps whenever that region's voxel data changes. Using a plain
// stamp instead of hashing page contents keeps Get/Store O(1), matching the
// teacher's mtime-based invalidation rather than content hashing.
type Key struct {
	Region  region.Region
	Version uint64
}

// Cache maps Keys to the mesh the extractor produced for them, backed by a
// sync/syncmap.Map the way Aqua's slice/byte pools share state across
// concurrent workers without an explicit mutex.
type Cache[V comparable] struct {
	entries syncmap.Map
}

// New returns an empty cache.
func New[V comparable]() *Cache[V] {
	return &Cache[V]{}
}

// Get returns the cached mesh for key, if present.
func (c *Cache[V]) Get(key Key) (*meshbuf.Mesh[cubic.CubicVertex[V]], bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*meshbuf.Mesh[cubic.CubicVertex[V]]), true
}

// Store records the mesh produced for key, overwriting any previous entry
// (e.g. from a stale version stamp).
func (c *Cache[V]) Store(key Key, mesh *meshbuf.Mesh[cubic.CubicVertex[V]]) {
	c.entries.Store(key, mesh)
}

// Evict drops a specific region's cached entries across all versions seen so
// far, by scanning and deleting matching keys. Used when a region is removed
// from a batch's working set entirely rather than merely re-versioned.
func (c *Cache[V]) Evict(reg region.Region) {
	var toDelete []Key
	c.entries.Range(func(k, _ any) bool {
		if key, ok := k.(Key); ok && key.Region == reg {
			toDelete = append(toDelete, key)
		}
		return true
	})
	for _, k := range toDelete {
		c.entries.Delete(k)
	}
}

// Len counts the number of cached entries. Intended for diagnostics and
// tests, not hot paths.
func (c *Cache[V]) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
