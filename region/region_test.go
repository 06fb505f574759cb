package region

import (
	"testing"

	"github.com/voxelsplace/cubicmesh/vecmath"
)

func TestWidthHeightDepth(t *testing.T) {
	r := NewRegion(vecmath.IVec3{X: 0, Y: 0, Z: 0}, vecmath.IVec3{X: 4, Y: 8, Z: 2})
	if r.Width() != 5 || r.Height() != 9 || r.Depth() != 3 {
		t.Fatalf("got width=%d height=%d depth=%d", r.Width(), r.Height(), r.Depth())
	}
}

func TestWidthHeightDepthSingleVoxel(t *testing.T) {
	r := NewRegion(vecmath.IVec3{X: 3, Y: 3, Z: 3}, vecmath.IVec3{X: 3, Y: 3, Z: 3})
	if r.Width() != 1 || r.Height() != 1 || r.Depth() != 1 {
		t.Fatalf("got width=%d height=%d depth=%d, want 1x1x1", r.Width(), r.Height(), r.Depth())
	}
}

func TestContains(t *testing.T) {
	r := NewRegion(vecmath.IVec3{X: -1, Y: -1, Z: -1}, vecmath.IVec3{X: 1, Y: 1, Z: 1})
	cases := []struct {
		p    vecmath.IVec3
		want bool
	}{
		{vecmath.IVec3{X: 0, Y: 0, Z: 0}, true},
		{vecmath.IVec3{X: -1, Y: -1, Z: -1}, true},
		{vecmath.IVec3{X: 1, Y: 1, Z: 1}, true},
		{vecmath.IVec3{X: 2, Y: 0, Z: 0}, false},
		{vecmath.IVec3{X: 0, Y: -2, Z: 0}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
