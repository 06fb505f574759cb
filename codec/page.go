package codec

import (
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/volume"
)

// flattenPage reads a page into a row-major (y,z,x) linear byte slice of
// palette indices, matching VoxelsPlace-VOPL's flatten() traversal order.
func flattenPage(p *volume.Page[material.Material]) []uint8 {
	const size = volume.PageSize
	out := make([]uint8, 0, pageVoxelCount)
	for y := int32(0); y < size; y++ {
		for z := int32(0); z < size; z++ {
			for x := int32(0); x < size; x++ {
				out = append(out, p.Get(x, y, z).Index)
			}
		}
	}
	return out
}

// unflattenPage writes a row-major (y,z,x) linear byte slice of palette
// indices back into a page.
func unflattenPage(linear []uint8) *volume.Page[material.Material] {
	p := &volume.Page[material.Material]{}
	const size = volume.PageSize
	i := 0
	for y := int32(0); y < size; y++ {
		for z := int32(0); z < size; z++ {
			for x := int32(0); x < size; x++ {
				p.Set(x, y, z, material.Material{Index: linear[i]})
				i++
			}
		}
	}
	return p
}
