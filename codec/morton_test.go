package codec

import "testing"

func TestMortonOrderIsPermutation(t *testing.T) {
	if len(mortonOrder) != pageVoxelCount {
		t.Fatalf("mortonOrder length = %d, want %d", len(mortonOrder), pageVoxelCount)
	}
	seen := make([]bool, pageVoxelCount)
	for _, lin := range mortonOrder {
		if lin < 0 || lin >= pageVoxelCount {
			t.Fatalf("mortonOrder entry %d out of range", lin)
		}
		if seen[lin] {
			t.Fatalf("mortonOrder repeats linear index %d", lin)
		}
		seen[lin] = true
	}
}

func TestFlattenUnflattenMortonRoundTrip(t *testing.T) {
	linear := make([]uint8, pageVoxelCount)
	for i := range linear {
		linear[i] = uint8(i * 7 % 251)
	}
	morton := flattenMorton(linear)
	back := unflattenMorton(morton)

	for i := range linear {
		if back[i] != linear[i] {
			t.Fatalf("round trip mismatch at %d: got %d want %d", i, back[i], linear[i])
		}
	}
}
