package cubic_test

import (
	"testing"

	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/vecmath"
	"github.com/voxelsplace/cubicmesh/volume"
)

func solid(idx uint8) material.Material { return material.Material{Index: idx} }

// TestSingleSolidVoxel pins the vertex count for a single isolated solid
// voxel at exactly 8: one per geometric cube corner. Ambient occlusion and
// material are uniform everywhere in this scene (every AO-neighbour cell is
// empty and only one material exists), so every one of the 24 face-corner
// vertex requests the extractor makes lands on an already-occupied slot for
// seven of its eight corners' worth of requests; working the sweep by hand
// confirms all 24 requests collapse onto the 8 distinct cube corners.
func TestSingleSolidVoxel(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, solid(1))

	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: -1, Y: -1, Z: -1}, vecmath.IVec3{X: 1, Y: 1, Z: 1})

	mesh, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}

	if got, want := mesh.NumVertices(), 8; got != want {
		t.Errorf("NumVertices() = %d, want %d", got, want)
	}
	if got, want := mesh.NumTriangles(), 12; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}

	for i := 0; i < mesh.NumVertices(); i++ {
		v := mesh.GetVertex(uint32(i))
		if v.AmbientOcclusion != 3 {
			t.Errorf("vertex %d: AmbientOcclusion = %d, want 3 (isolated voxel has no occluding neighbours)", i, v.AmbientOcclusion)
		}
		if v.Material != solid(1) {
			t.Errorf("vertex %d: Material = %v, want %v", i, v.Material, solid(1))
		}
	}

	indices := mesh.Indices()
	for _, idx := range indices {
		if int(idx) >= mesh.NumVertices() {
			t.Fatalf("triangle index %d out of range (NumVertices=%d)", idx, mesh.NumVertices())
		}
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			t.Errorf("triangle %d has repeated vertex indices: %d,%d,%d", i/3, a, b, c)
		}
	}
}

// TestTwoSeparatedVoxels checks that two voxels with empty space between
// them produce two fully independent sets of faces; nothing merges or
// dedups across the gap.
func TestTwoSeparatedVoxels(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, solid(1))
	vol.Set(3, 0, 0, solid(1))

	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: -1, Y: -1, Z: -1}, vecmath.IVec3{X: 4, Y: 1, Z: 1})

	mesh, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}

	if got, want := mesh.NumVertices(), 16; got != want {
		t.Errorf("NumVertices() = %d, want %d", got, want)
	}
	if got, want := mesh.NumTriangles(), 24; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}
}

// TestTwoTouchingVoxelsMerge checks that two adjacent same-material voxels
// produce a single merged quad on their shared large face, rather than two
// coplanar quads, and that no quad is emitted on the internal boundary
// between them.
func TestTwoTouchingVoxelsMerge(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, solid(1))
	vol.Set(1, 0, 0, solid(1))

	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: -1, Y: -1, Z: -1}, vecmath.IVec3{X: 2, Y: 1, Z: 1})

	merged, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}
	// 2x1x1 block: 6 faces total, but the two 1x1 end faces (+-X) can't
	// merge with anything, while the four side faces (+-Y, +-Z) each merge
	// the two voxels' quads into one 2x1 quad. 6 quads -> 12 triangles.
	if got, want := merged.NumTriangles(), 12; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}

	unmerged, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: false})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}
	// Without merging: 2 voxels * 6 faces, minus the 2 faces on their shared
	// internal boundary (solid-solid, so neither is emitted) = 10 quads ->
	// 20 triangles.
	if got, want := unmerged.NumTriangles(), 20; got != want {
		t.Errorf("unmerged NumTriangles() = %d, want %d", got, want)
	}
}

// TestDistinctMaterialsBoundary checks that a quad is emitted between two
// adjacent, non-empty voxels of different materials even though neither
// side is empty.
func TestDistinctMaterialsBoundary(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, solid(1))
	vol.Set(1, 0, 0, solid(2))

	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: -1, Y: -1, Z: -1}, vecmath.IVec3{X: 2, Y: 1, Z: 1})

	mesh, err := cubic.ExtractMesh[material.Material](sampler, reg, material.DistinctMaterials, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}
	// Now every face is a boundary: 2 voxels * 6 faces, with only the four
	// side faces (+-Y, +-Z) able to merge per voxel-pair, but since the two
	// voxels differ in material their side faces don't merge into each
	// other either (materials differ) -- 12 quads -> 24 triangles.
	if got, want := mesh.NumTriangles(), 24; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}
}

// TestRegionTooLarge checks that a region spanning more than 255 voxels on
// an axis is rejected rather than silently truncating vertex positions.
func TestRegionTooLarge(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: 0, Y: 0, Z: 0}, vecmath.IVec3{X: 300, Y: 1, Z: 1})

	_, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err == nil {
		t.Fatal("expected ExtractMesh to reject an oversized region")
	}
}

// TestRegionExactlyBoundsSolidVoxel extracts a region sized exactly to its
// one solid voxel, with no empty margin on any side. The voxel's -X, -Y and
// -Z faces are emitted while sweeping the voxel itself; its +X, +Y and +Z
// faces are only emitted while sweeping the empty voxel beyond each of them,
// which lies outside this region, so they are absent. The three emitted
// faces use the vertex grid's far edge (the extra vertex column past the
// last voxel index) and share the seven cube corners that are not (1,1,1):
// 3 quads -> 6 triangles over 7 vertices.
func TestRegionExactlyBoundsSolidVoxel(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, solid(1))

	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: 0, Y: 0, Z: 0}, vecmath.IVec3{X: 0, Y: 0, Z: 0})

	mesh, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}

	if got, want := mesh.NumVertices(), 7; got != want {
		t.Errorf("NumVertices() = %d, want %d", got, want)
	}
	if got, want := mesh.NumTriangles(), 6; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}

	indices := mesh.Indices()
	for _, idx := range indices {
		if int(idx) >= mesh.NumVertices() {
			t.Fatalf("triangle index %d out of range (NumVertices=%d)", idx, mesh.NumVertices())
		}
	}
}

// TestEmptyRegionProducesEmptyMesh checks that a region with no solid
// voxels at all produces a mesh with no geometry.
func TestEmptyRegionProducesEmptyMesh(t *testing.T) {
	vol := volume.NewVolume[material.Material]()
	sampler := volume.NewSampler(vol)
	reg := region.NewRegion(vecmath.IVec3{X: 0, Y: 0, Z: 0}, vecmath.IVec3{X: 3, Y: 3, Z: 3})

	mesh, err := cubic.ExtractMesh[material.Material](sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: true})
	if err != nil {
		t.Fatalf("ExtractMesh: %v", err)
	}
	if mesh.NumVertices() != 0 || mesh.NumTriangles() != 0 {
		t.Errorf("expected empty mesh, got %d vertices, %d triangles", mesh.NumVertices(), mesh.NumTriangles())
	}
}
