package genvolume

import (
	"math/rand"
	"testing"
)

func TestNoiseFillCountIsExact(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	size := int32(8)
	vol := Noise(size, 25, r)

	count := 0
	for y := int32(0); y < size; y++ {
		for z := int32(0); z < size; z++ {
			for x := int32(0); x < size; x++ {
				if !vol.Get(x, y, z).IsEmpty() {
					count++
				}
			}
		}
	}
	total := int(size) * int(size) * int(size)
	want := int(float64(total)*0.25 + 0.5)
	if count != want {
		t.Fatalf("got %d filled voxels, want %d", count, want)
	}
}

func TestNoiseZeroPercentIsEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	vol := Noise(4, 0, r)
	if vol.PageCount() == 0 {
		return
	}
	for y := int32(0); y < 4; y++ {
		for z := int32(0); z < 4; z++ {
			for x := int32(0); x < 4; x++ {
				if !vol.Get(x, y, z).IsEmpty() {
					t.Fatalf("expected no filled voxels at 0%%")
				}
			}
		}
	}
}

func TestNoiseRangeStaysWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	size := int32(6)
	vol := NoiseRange(size, 10, 20, r)
	total := int(size) * int(size) * int(size)

	count := 0
	for y := int32(0); y < size; y++ {
		for z := int32(0); z < size; z++ {
			for x := int32(0); x < size; x++ {
				if !vol.Get(x, y, z).IsEmpty() {
					count++
				}
			}
		}
	}
	if count < int(float64(total)*0.09) || count > int(float64(total)*0.22) {
		t.Fatalf("count %d outside expected [10%%,20%%] range of %d", count, total)
	}
}
