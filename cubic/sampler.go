package cubic

import "github.com/voxelsplace/cubicmesh/vecmath"

// Sampler is everything the extractor needs from a caller-supplied volume
// walker: absolute positioning, the voxel at the current position, six
// directional single-step moves, and all 26 neighbour peeks. volume.Sampler
// implements this for any comparable voxel type.
type Sampler[V comparable] interface {
	SetPosition(vecmath.IVec3)

	GetVoxel() V

	MovePositiveX()
	MoveNegativeX()
	MovePositiveY()
	MoveNegativeY()
	MovePositiveZ()
	MoveNegativeZ()

	PeekVoxel1nx1ny1nz() V
	PeekVoxel0px1ny1nz() V
	PeekVoxel1px1ny1nz() V
	PeekVoxel1nx0py1nz() V
	PeekVoxel0px0py1nz() V
	PeekVoxel1px0py1nz() V
	PeekVoxel1nx1py1nz() V
	PeekVoxel0px1py1nz() V
	PeekVoxel1px1py1nz() V

	PeekVoxel1nx1ny0pz() V
	PeekVoxel0px1ny0pz() V
	PeekVoxel1px1ny0pz() V
	PeekVoxel1nx0py0pz() V
	PeekVoxel1px0py0pz() V
	PeekVoxel1nx1py0pz() V
	PeekVoxel0px1py0pz() V
	PeekVoxel1px1py0pz() V

	PeekVoxel1nx1ny1pz() V
	PeekVoxel0px1ny1pz() V
	PeekVoxel1px1ny1pz() V
	PeekVoxel1nx0py1pz() V
	PeekVoxel0px0py1pz() V
	PeekVoxel1px0py1pz() V
	PeekVoxel1nx1py1pz() V
	PeekVoxel0px1py1pz() V
	PeekVoxel1px1py1pz() V
}

// MeshSink is what the extractor writes into: a generic append-only mesh
// container over CubicVertex[V]. meshbuf.Mesh[CubicVertex[V]] implements it
// directly.
type MeshSink[V comparable] interface {
	vertexAdder[V]
	vertexReader[V]
	triangleAdder
	Clear()
	SetOffset(vecmath.IVec3)
	RemoveUnusedVertices()
}

// IsQuadNeededFunc decides whether a quad belongs between two adjacent
// voxels (back, then front, in the direction the face's normal points) and,
// if so, which material the quad should carry.
type IsQuadNeededFunc[V comparable] func(back, front V) (needed bool, material V)

// ContributesToAOFunc decides whether a voxel should be treated as an
// occluder for ambient-occlusion purposes.
type ContributesToAOFunc[V comparable] func(v V) bool
