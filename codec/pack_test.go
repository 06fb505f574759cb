package codec

import (
	"testing"

	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/vecmath"
	"github.com/voxelsplace/cubicmesh/volume"
)

func buildTestVolume() *volume.Volume[material.Material] {
	vol := volume.NewVolume[material.Material]()
	vol.Set(0, 0, 0, material.Material{Index: 1})
	vol.Set(5, 5, 5, material.Material{Index: 2})
	vol.Set(volume.PageSize, 0, 0, material.Material{Index: 3})
	vol.Set(volume.PageSize+1, 1, 1, material.Material{Index: 3})
	vol.Set(-1, -1, -1, material.Material{Index: 4})
	return vol
}

func TestMarshalUnmarshalVolumeRoundTrip(t *testing.T) {
	vol := buildTestVolume()
	pal := material.DefaultPalette()

	data, err := MarshalVolume(vol, pal, defaultBPP)
	if err != nil {
		t.Fatalf("MarshalVolume error: %v", err)
	}

	got, gotPal, gotBPP, err := UnmarshalVolume(data)
	if err != nil {
		t.Fatalf("UnmarshalVolume error: %v", err)
	}
	if gotBPP != defaultBPP {
		t.Fatalf("bpp = %d, want %d", gotBPP, defaultBPP)
	}
	if gotPal != pal {
		t.Fatalf("palette mismatch")
	}
	if got.PageCount() != vol.PageCount() {
		t.Fatalf("page count = %d, want %d", got.PageCount(), vol.PageCount())
	}

	checkCoords := []vecmath.IVec3{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
		{X: volume.PageSize, Y: 0, Z: 0},
		{X: volume.PageSize + 1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: -1},
	}
	for _, c := range checkCoords {
		if want, got2 := vol.Get(c.X, c.Y, c.Z), got.Get(c.X, c.Y, c.Z); want != got2 {
			t.Fatalf("Get(%v) = %v, want %v", c, got2, want)
		}
	}
}

func TestUnmarshalVolumeRejectsBadMagic(t *testing.T) {
	if _, _, _, err := UnmarshalVolume([]byte("not a pack")); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}
