//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/cubicmesh/api"
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/vecmath"
	"github.com/voxelsplace/cubicmesh/volume"
)

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

func fromUint8Array(v js.Value) []byte {
	b := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(b, v)
	return b
}

// packVoxels builds a pack from a flat Int32Array of (x, y, z, materialIndex)
// quadruples via api.PackVolume: the browser hands over raw voxel data, Go
// returns a ready-to-store blob.
func packVoxels(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf("usage: packVoxels(quadruples, bpp)")
	}
	flat := args[0]
	n := flat.Get("length").Int()
	if n%4 != 0 {
		return js.ValueOf("quadruples length must be a multiple of 4")
	}
	bpp := uint8(args[1].Int())

	vol := volume.NewVolume[material.Material]()
	for i := 0; i < n; i += 4 {
		x := int32(flat.Index(i).Int())
		y := int32(flat.Index(i + 1).Int())
		z := int32(flat.Index(i + 2).Int())
		idx := uint8(flat.Index(i + 3).Int())
		vol.Set(x, y, z, material.Material{Index: idx})
	}

	out, err := api.PackVolume(vol, material.DefaultPalette(), bpp)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// extractRegionFromPack unpacks a pack blob and extracts a single region
// from it directly to binary glTF bytes via api.ExtractRegionToGLB, taking
// region bounds instead of consuming the whole volume.
func extractRegionFromPack(this js.Value, args []js.Value) any {
	if len(args) < 7 {
		return js.ValueOf("usage: extractRegionFromPack(packBytes, lx, ly, lz, ux, uy, uz, mergeQuads)")
	}
	packBytes := fromUint8Array(args[0])
	lower := vecmath.IVec3{X: int32(args[1].Int()), Y: int32(args[2].Int()), Z: int32(args[3].Int())}
	upper := vecmath.IVec3{X: int32(args[4].Int()), Y: int32(args[5].Int()), Z: int32(args[6].Int())}
	mergeQuads := true
	if len(args) > 7 {
		mergeQuads = args[7].Bool()
	}

	vol, pal, _, err := api.UnpackVolume(packBytes)
	if err != nil {
		return js.ValueOf(err.Error())
	}

	glb, err := api.ExtractRegionToGLB(vol, region.NewRegion(lower, upper), pal, mergeQuads)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(glb)
}

func main() {
	js.Global().Set("packVoxels", js.FuncOf(packVoxels))
	js.Global().Set("extractRegionFromPack", js.FuncOf(extractRegionFromPack))
	select {}
}
