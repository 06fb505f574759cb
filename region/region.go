// Package region defines the axis-aligned integer box the extractor sweeps.
package region

import (
	"fmt"

	"github.com/voxelsplace/cubicmesh/vecmath"
)

// Region is an axis-aligned box with both bounds inclusive.
type Region struct {
	Lower, Upper vecmath.IVec3
}

// NewRegion builds a Region from its inclusive lower and upper corners.
func NewRegion(lower, upper vecmath.IVec3) Region {
	return Region{Lower: lower, Upper: upper}
}

// Width returns the number of voxel columns spanned on X: upper-lower+1,
// bounds inclusive.
func (r Region) Width() int32 {
	return r.Upper.X - r.Lower.X + 1
}

// Height returns the voxel span on Y, bounds inclusive.
func (r Region) Height() int32 {
	return r.Upper.Y - r.Lower.Y + 1
}

// Depth returns the voxel span on Z, bounds inclusive.
func (r Region) Depth() int32 {
	return r.Upper.Z - r.Lower.Z + 1
}

// Contains reports whether p lies within the region, bounds inclusive.
func (r Region) Contains(p vecmath.IVec3) bool {
	return p.X >= r.Lower.X && p.X <= r.Upper.X &&
		p.Y >= r.Lower.Y && p.Y <= r.Upper.Y &&
		p.Z >= r.Lower.Z && p.Z <= r.Upper.Z
}

func (r Region) String() string {
	return fmt.Sprintf("[%v, %v]", r.Lower, r.Upper)
}
