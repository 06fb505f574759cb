package volume

import "github.com/voxelsplace/cubicmesh/vecmath"

// Volume is a sparse map of fixed-size Pages, addressed by page coordinate.
// Reads outside any allocated page return the zero value of T rather than
// erroring, so a Sampler's neighbourhood can spill past populated pages
// without special-casing volume edges.
type Volume[T comparable] struct {
	pages map[vecmath.IVec3]*Page[T]
}

// NewVolume returns an empty volume.
func NewVolume[T comparable]() *Volume[T] {
	return &Volume[T]{pages: make(map[vecmath.IVec3]*Page[T])}
}

func pageCoord(x, y, z int32) vecmath.IVec3 {
	return vecmath.IVec3{X: floorDiv(x), Y: floorDiv(y), Z: floorDiv(z)}
}

func floorDiv(v int32) int32 {
	if v >= 0 {
		return v >> PageSizeLog2
	}
	return -(((-v - 1) >> PageSizeLog2) + 1)
}

func localCoord(v int32) int32 {
	m := v & pageMask
	return m
}

// Get returns the voxel at the given world coordinate, or the zero value of
// T if no page has been allocated there.
func (v *Volume[T]) Get(x, y, z int32) T {
	pc := pageCoord(x, y, z)
	p, ok := v.pages[pc]
	if !ok {
		var zero T
		return zero
	}
	return p.Get(localCoord(x), localCoord(y), localCoord(z))
}

// Set writes the voxel at the given world coordinate, allocating its page on
// first write.
func (v *Volume[T]) Set(x, y, z int32, val T) {
	pc := pageCoord(x, y, z)
	p, ok := v.pages[pc]
	if !ok {
		p = &Page[T]{}
		v.pages[pc] = p
	}
	p.Set(localCoord(x), localCoord(y), localCoord(z), val)
}

// PageCount returns the number of allocated pages, mostly useful for tests
// and cache-key sizing.
func (v *Volume[T]) PageCount() int {
	return len(v.pages)
}

// PageCoords returns the coordinates of every allocated page, in no
// particular order.
func (v *Volume[T]) PageCoords() []vecmath.IVec3 {
	coords := make([]vecmath.IVec3, 0, len(v.pages))
	for c := range v.pages {
		coords = append(coords, c)
	}
	return coords
}

// PageAt returns the page at the given page coordinate, if allocated.
func (v *Volume[T]) PageAt(coord vecmath.IVec3) (*Page[T], bool) {
	p, ok := v.pages[coord]
	return p, ok
}

// SetPage installs a fully-formed page at the given page coordinate,
// replacing whatever was there. Used by codec deserialization to avoid
// paying per-voxel Set overhead when a whole page is already assembled.
func (v *Volume[T]) SetPage(coord vecmath.IVec3, p *Page[T]) {
	v.pages[coord] = p
}

// Bounds returns the inclusive voxel-space bounding box covering every
// allocated page, or ok=false if the volume has no pages yet. The box is
// conservative: it covers whole pages, not just the voxels actually
// written within them.
func (v *Volume[T]) Bounds() (lower, upper vecmath.IVec3, ok bool) {
	first := true
	for c := range v.pages {
		pl := vecmath.IVec3{X: c.X * PageSize, Y: c.Y * PageSize, Z: c.Z * PageSize}
		pu := vecmath.IVec3{X: pl.X + PageSize - 1, Y: pl.Y + PageSize - 1, Z: pl.Z + PageSize - 1}
		if first {
			lower, upper = pl, pu
			first = false
			continue
		}
		lower = vecmath.IVec3{X: min32(lower.X, pl.X), Y: min32(lower.Y, pl.Y), Z: min32(lower.Z, pl.Z)}
		upper = vecmath.IVec3{X: max32(upper.X, pu.X), Y: max32(upper.Y, pu.Y), Z: max32(upper.Z, pu.Z)}
	}
	return lower, upper, !first
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
