// Package vecmath provides the integer and float vector types shared by the
// region, volume, and cubic packages.
package vecmath

import "github.com/go-gl/mathgl/mgl32"

// IVec3 is an integer 3-vector, used for voxel positions and region bounds.
type IVec3 struct {
	X, Y, Z int32
}

// Add returns v+o.
func (v IVec3) Add(o IVec3) IVec3 {
	return IVec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v IVec3) Sub(o IVec3) IVec3 {
	return IVec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Float converts v to a float vector, suitable for rendering or export.
func (v IVec3) Float() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
