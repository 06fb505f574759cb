// Package material supplies a concrete, realistic voxel material type and
// the pair of caller predicates the cubic extractor needs (is_quad_needed,
// contributes_to_ao), grounded on VoxelsPlace-VOPL's palette-indexed voxel
// model.
package material

// Material is a palette-indexed voxel value. Index 0 is reserved for empty
// space, matching the teacher's VoxelGrid convention where 0 means "no
// voxel".
type Material struct {
	Index uint8
}

// Empty is the zero-value material, used for unoccupied voxels.
var Empty = Material{Index: 0}

// IsEmpty reports whether m represents empty space.
func (m Material) IsEmpty() bool {
	return m.Index == 0
}

// RGBA is a palette colour entry.
type RGBA struct {
	R, G, B, A uint8
}

// Palette is a 64-entry colour table, matching the 64-colour palette the
// teacher's .vopl header declares (Pal: 64) even though the retrieved
// snapshot never carried the actual table contents.
type Palette [64]RGBA

// DefaultPalette returns a palette with entry 0 transparent black (matching
// Material{}'s empty voxel) and the remaining 63 entries populated by a
// deterministic HSV-style ramp, good enough to make exported meshes visually
// distinct without depending on any particular world's actual palette.
func DefaultPalette() Palette {
	var p Palette
	for i := 1; i < len(p); i++ {
		p[i] = rampColor(i)
	}
	return p
}

func rampColor(i int) RGBA {
	// Cheap deterministic ramp: cycle hue across 6 bands of the palette.
	band := (i - 1) % 6
	level := uint8(64 + ((i-1)/6)*24)
	switch band {
	case 0:
		return RGBA{level, 0, 0, 255}
	case 1:
		return RGBA{0, level, 0, 255}
	case 2:
		return RGBA{0, 0, level, 255}
	case 3:
		return RGBA{level, level, 0, 255}
	case 4:
		return RGBA{0, level, level, 255}
	default:
		return RGBA{level, 0, level, 255}
	}
}

// SolidVsEmpty is the simplest is_quad_needed predicate: a quad is needed
// only when the back voxel is solid and the front voxel is empty, and the
// back voxel's material is reported.
func SolidVsEmpty(back, front Material) (needed bool, out Material) {
	if !back.IsEmpty() && front.IsEmpty() {
		return true, back
	}
	return false, Material{}
}

// DistinctMaterials treats any pair of differing, non-empty-vs-non-empty
// materials as a boundary too, reporting the "back" voxel's material. This
// is the "two adjacent distinct materials" scenario: a quad separates them
// even though neither side is empty.
func DistinctMaterials(back, front Material) (needed bool, out Material) {
	if back.IsEmpty() {
		return false, Material{}
	}
	if front.IsEmpty() || front.Index != back.Index {
		return true, back
	}
	return false, Material{}
}

// ContributesToAO is the simplest contributes_to_ao predicate: any non-empty
// voxel occludes.
func ContributesToAO(m Material) bool {
	return !m.IsEmpty()
}
