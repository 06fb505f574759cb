package volume

import (
	"testing"

	"github.com/voxelsplace/cubicmesh/vecmath"
)

func TestSamplerMoveAndGetVoxel(t *testing.T) {
	v := NewVolume[int]()
	v.Set(5, 5, 5, 7)

	s := NewSampler(v)
	s.SetPosition(vecmath.IVec3{X: 4, Y: 5, Z: 5})
	if got := s.GetVoxel(); got != 0 {
		t.Fatalf("GetVoxel before move = %d, want 0", got)
	}

	s.MovePositiveX()
	if got := s.GetVoxel(); got != 7 {
		t.Fatalf("GetVoxel after MovePositiveX = %d, want 7", got)
	}
	if got := s.Position(); got != (vecmath.IVec3{X: 5, Y: 5, Z: 5}) {
		t.Fatalf("Position = %v, want (5,5,5)", got)
	}

	s.MoveNegativeX()
	if got := s.GetVoxel(); got != 0 {
		t.Fatalf("GetVoxel after MoveNegativeX = %d, want 0", got)
	}
}

func TestSamplerPeeks(t *testing.T) {
	v := NewVolume[int]()
	v.Set(1, 1, 1, 1) // centre
	v.Set(0, 0, 0, 2) // 1nx1ny1nz
	v.Set(2, 2, 2, 3) // 1px1py1pz
	v.Set(0, 1, 1, 4) // 1nx0py0pz

	s := NewSampler(v)
	s.SetPosition(vecmath.IVec3{X: 1, Y: 1, Z: 1})

	if got := s.PeekVoxel1nx1ny1nz(); got != 2 {
		t.Fatalf("PeekVoxel1nx1ny1nz() = %d, want 2", got)
	}
	if got := s.PeekVoxel1px1py1pz(); got != 3 {
		t.Fatalf("PeekVoxel1px1py1pz() = %d, want 3", got)
	}
	if got := s.PeekVoxel1nx0py0pz(); got != 4 {
		t.Fatalf("PeekVoxel1nx0py0pz() = %d, want 4", got)
	}
}
