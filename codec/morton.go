package codec

import "github.com/voxelsplace/cubicmesh/volume"

const pageVoxelCount = volume.PageSize * volume.PageSize * volume.PageSize

func expand3(v uint32) uint32 {
	v = (v | (v << 16)) & 0x030000FF
	v = (v | (v << 8)) & 0x0300F00F
	v = (v | (v << 4)) & 0x030C30C3
	v = (v | (v << 2)) & 0x09249249
	return v
}

func morton3D(x, y, z uint32) uint32 {
	return expand3(x) | (expand3(y) << 1) | (expand3(z) << 2)
}

// mortonOrder maps Morton rank -> linear index (x + z*size + y*size*size)
// within one page, built once via insertion sort like VoxelsPlace-VOPL's
// buildMortonOrder, since the page size is small and fixed.
var mortonOrder = buildMortonOrder()

func buildMortonOrder() []int {
	type kv struct {
		key uint32
		i   int
	}
	const size = volume.PageSize
	idx := make([]kv, 0, pageVoxelCount)
	i := 0
	for y := 0; y < size; y++ {
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				idx = append(idx, kv{morton3D(uint32(x), uint32(y), uint32(z)), i})
				i++
			}
		}
	}
	for a := 1; a < len(idx); a++ {
		k := idx[a]
		b := a - 1
		for b >= 0 && idx[b].key > k.key {
			idx[b+1] = idx[b]
			b--
		}
		idx[b+1] = k
	}
	order := make([]int, len(idx))
	for i, e := range idx {
		order[i] = e.i
	}
	return order
}

// flattenMorton reorders a row-major (y,z,x) page payload into Morton order,
// so that spatially adjacent voxels end up close together in the
// bitstream, improving how well the dense encoding compresses.
func flattenMorton(linear []uint8) []uint8 {
	out := make([]uint8, len(linear))
	for rank, lin := range mortonOrder {
		out[rank] = linear[lin]
	}
	return out
}

// unflattenMorton undoes flattenMorton.
func unflattenMorton(morton []uint8) []uint8 {
	out := make([]uint8, len(morton))
	for rank, lin := range mortonOrder {
		out[lin] = morton[rank]
	}
	return out
}
