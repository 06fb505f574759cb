package volume

import "github.com/voxelsplace/cubicmesh/vecmath"

// Sampler walks a Volume one voxel at a time, the way the cubic extractor's
// driver sweeps a region. It satisfies the 26-neighbour peek interface the
// extractor's face and ambient-occlusion tests need, plus the six directional
// move operations the extractor uses instead of re-seeking for every step.
type Sampler[T comparable] struct {
	vol     *Volume[T]
	x, y, z int32
}

// NewSampler returns a sampler over vol, initially positioned at the origin.
func NewSampler[T comparable](vol *Volume[T]) *Sampler[T] {
	return &Sampler[T]{vol: vol}
}

// SetPosition moves the sampler to the given world coordinate.
func (s *Sampler[T]) SetPosition(p vecmath.IVec3) {
	s.x, s.y, s.z = p.X, p.Y, p.Z
}

// Position returns the sampler's current world coordinate.
func (s *Sampler[T]) Position() vecmath.IVec3 {
	return vecmath.IVec3{X: s.x, Y: s.y, Z: s.z}
}

// GetVoxel returns the voxel at the sampler's current position.
func (s *Sampler[T]) GetVoxel() T {
	return s.vol.Get(s.x, s.y, s.z)
}

func (s *Sampler[T]) MovePositiveX() { s.x++ }
func (s *Sampler[T]) MoveNegativeX() { s.x-- }
func (s *Sampler[T]) MovePositiveY() { s.y++ }
func (s *Sampler[T]) MoveNegativeY() { s.y-- }
func (s *Sampler[T]) MovePositiveZ() { s.z++ }
func (s *Sampler[T]) MoveNegativeZ() { s.z-- }

func (s *Sampler[T]) peek(dx, dy, dz int32) T {
	return s.vol.Get(s.x+dx, s.y+dy, s.z+dz)
}

// The 26 neighbour peeks, named the way PolyVox's VolumeSampler names them:
// PeekVoxel<X><Y><Z> where each axis component is 1n (-1), 0p (0), or 1p (+1),
// skipping the centre (0px0py0pz, which is GetVoxel).

func (s *Sampler[T]) PeekVoxel1nx1ny1nz() T { return s.peek(-1, -1, -1) }
func (s *Sampler[T]) PeekVoxel0px1ny1nz() T { return s.peek(0, -1, -1) }
func (s *Sampler[T]) PeekVoxel1px1ny1nz() T { return s.peek(1, -1, -1) }
func (s *Sampler[T]) PeekVoxel1nx0py1nz() T { return s.peek(-1, 0, -1) }
func (s *Sampler[T]) PeekVoxel0px0py1nz() T { return s.peek(0, 0, -1) }
func (s *Sampler[T]) PeekVoxel1px0py1nz() T { return s.peek(1, 0, -1) }
func (s *Sampler[T]) PeekVoxel1nx1py1nz() T { return s.peek(-1, 1, -1) }
func (s *Sampler[T]) PeekVoxel0px1py1nz() T { return s.peek(0, 1, -1) }
func (s *Sampler[T]) PeekVoxel1px1py1nz() T { return s.peek(1, 1, -1) }

func (s *Sampler[T]) PeekVoxel1nx1ny0pz() T { return s.peek(-1, -1, 0) }
func (s *Sampler[T]) PeekVoxel0px1ny0pz() T { return s.peek(0, -1, 0) }
func (s *Sampler[T]) PeekVoxel1px1ny0pz() T { return s.peek(1, -1, 0) }
func (s *Sampler[T]) PeekVoxel1nx0py0pz() T { return s.peek(-1, 0, 0) }
func (s *Sampler[T]) PeekVoxel1px0py0pz() T { return s.peek(1, 0, 0) }
func (s *Sampler[T]) PeekVoxel1nx1py0pz() T { return s.peek(-1, 1, 0) }
func (s *Sampler[T]) PeekVoxel0px1py0pz() T { return s.peek(0, 1, 0) }
func (s *Sampler[T]) PeekVoxel1px1py0pz() T { return s.peek(1, 1, 0) }

func (s *Sampler[T]) PeekVoxel1nx1ny1pz() T { return s.peek(-1, -1, 1) }
func (s *Sampler[T]) PeekVoxel0px1ny1pz() T { return s.peek(0, -1, 1) }
func (s *Sampler[T]) PeekVoxel1px1ny1pz() T { return s.peek(1, -1, 1) }
func (s *Sampler[T]) PeekVoxel1nx0py1pz() T { return s.peek(-1, 0, 1) }
func (s *Sampler[T]) PeekVoxel0px0py1pz() T { return s.peek(0, 0, 1) }
func (s *Sampler[T]) PeekVoxel1px0py1pz() T { return s.peek(1, 0, 1) }
func (s *Sampler[T]) PeekVoxel1nx1py1pz() T { return s.peek(-1, 1, 1) }
func (s *Sampler[T]) PeekVoxel0px1py1pz() T { return s.peek(0, 1, 1) }
func (s *Sampler[T]) PeekVoxel1px1py1pz() T { return s.peek(1, 1, 1) }
