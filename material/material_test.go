package material

import "testing"

func TestSolidVsEmpty(t *testing.T) {
	solid := Material{Index: 3}

	if needed, _ := SolidVsEmpty(Empty, Empty); needed {
		t.Fatalf("empty/empty should not need a quad")
	}
	if needed, _ := SolidVsEmpty(solid, solid); needed {
		t.Fatalf("solid/solid should not need a quad")
	}
	needed, out := SolidVsEmpty(solid, Empty)
	if !needed || out != solid {
		t.Fatalf("solid/empty: got needed=%v out=%v", needed, out)
	}
	if needed, _ := SolidVsEmpty(Empty, solid); needed {
		t.Fatalf("empty/solid should not need a quad (front occludes)")
	}
}

func TestDistinctMaterials(t *testing.T) {
	a := Material{Index: 1}
	b := Material{Index: 2}

	if needed, _ := DistinctMaterials(Empty, a); needed {
		t.Fatalf("empty back should never need a quad")
	}
	if needed, _ := DistinctMaterials(a, a); needed {
		t.Fatalf("matching materials should not need a quad")
	}
	if needed, out := DistinctMaterials(a, Empty); !needed || out != a {
		t.Fatalf("solid/empty: got needed=%v out=%v", needed, out)
	}
	if needed, out := DistinctMaterials(a, b); !needed || out != a {
		t.Fatalf("distinct materials: got needed=%v out=%v", needed, out)
	}
}

func TestContributesToAO(t *testing.T) {
	if ContributesToAO(Empty) {
		t.Fatalf("empty should not contribute to AO")
	}
	if !ContributesToAO(Material{Index: 1}) {
		t.Fatalf("solid should contribute to AO")
	}
}

func TestDefaultPaletteEntryZeroIsUnset(t *testing.T) {
	pal := DefaultPalette()
	if pal[0] != (RGBA{}) {
		t.Fatalf("palette entry 0 should stay zero-value, got %v", pal[0])
	}
	for i := 1; i < len(pal); i++ {
		if pal[i] == (RGBA{}) {
			t.Fatalf("palette entry %d unexpectedly zero", i)
		}
	}
}
