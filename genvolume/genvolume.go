// Package genvolume generates random test volumes, ported from
// VoxelsPlace-VOPL's utils/noise.go (generateNoiseGrid / RunGenerateNoiseVOPLRange)
// and generalized from its fixed 16x16x16 grid to an arbitrary-size cube of
// paged voxels.
package genvolume

import (
	"math/rand"

	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/volume"
)

// Noise fills a size x size x size cube starting at the origin with
// randomly placed, randomly materialed voxels, using the same
// partial-Fisher-Yates position shuffle generateNoiseGrid uses so that
// "percentage filled" is exact rather than sampled per-voxel.
func Noise(size int32, percentage float64, r *rand.Rand) *volume.Volume[material.Material] {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := int(size) * int(size) * int(size)
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	vol := volume.NewVolume[material.Material]()
	for k := 0; k < want; k++ {
		i := idx[k]
		y := int32(i) / (size * size)
		rem := int32(i) % (size * size)
		x := rem / size
		z := rem % size
		color := uint8(1 + r.Intn(63))
		vol.Set(x, y, z, material.Material{Index: color})
	}
	return vol
}

// NoiseRange samples a fill percentage uniformly from [percentageMin,
// percentageMax] and generates one Noise volume with it, mirroring
// RunGenerateNoiseVOPLRange's per-file random percentage.
func NoiseRange(size int32, percentageMin, percentageMax float64, r *rand.Rand) *volume.Volume[material.Material] {
	if percentageMax < percentageMin {
		percentageMin, percentageMax = percentageMax, percentageMin
	}
	perc := percentageMin
	if percentageMax > percentageMin {
		perc = percentageMin + r.Float64()*(percentageMax-percentageMin)
	}
	return Noise(size, perc, r)
}
