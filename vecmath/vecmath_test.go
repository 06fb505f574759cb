package vecmath

import "testing"

func TestAddSub(t *testing.T) {
	a := IVec3{X: 1, Y: 2, Z: 3}
	b := IVec3{X: 4, Y: -1, Z: 0}

	if got := a.Add(b); got != (IVec3{X: 5, Y: 1, Z: 3}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (IVec3{X: -3, Y: 3, Z: 3}) {
		t.Fatalf("Sub: got %v", got)
	}
}

func TestFloat(t *testing.T) {
	v := IVec3{X: -2, Y: 0, Z: 5}
	f := v.Float()
	if f.X() != -2 || f.Y() != 0 || f.Z() != 5 {
		t.Fatalf("Float: got %v", f)
	}
}
