// Package api exposes the high-level entry points the CLI and wasm bindings
// call: extracting a region straight to glTF bytes, and packing/unpacking a
// volume to the codec's on-disk format. Grounded on VoxelsPlace-VOPL's
// api.go, which wraps its grid/mesh/pack machinery behind a handful of
// byte-in, byte-out functions instead of exposing the underlying types.
package api

import (
	"bytes"
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/voxelsplace/cubicmesh/codec"
	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/gltfexport"
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/volume"
)

// ExtractRegionToGLB extracts one region of vol and encodes it directly to
// binary glTF bytes, baking ambient occlusion into vertex colour the way
// the teacher's VOPLToGLB bakes its palette lookup into vertex colour.
func ExtractRegionToGLB(vol *volume.Volume[material.Material], reg region.Region, pal material.Palette, mergeQuads bool) ([]byte, error) {
	sampler := volume.NewSampler(vol)
	mesh, err := cubic.ExtractMesh(sampler, reg, material.SolidVsEmpty, material.ContributesToAO, cubic.Options{MergeQuads: mergeQuads})
	if err != nil {
		return nil, fmt.Errorf("api: extract region: %w", err)
	}

	doc := gltfexport.BuildDocument(mesh, pal, func(m material.Material) uint8 { return m.Index }, gltfexport.Options{BakeAO: true})

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("api: encode glb: %w", err)
	}
	return out.Bytes(), nil
}

// ExtractVolumeToGLB extracts the whole of vol -- its tightest page-aligned
// bounding region -- to a single glTF blob. For a volume too large to mesh
// in one pass, extract its regions individually (ExtractRegionToGLB) or
// fan them out through package batch instead.
func ExtractVolumeToGLB(vol *volume.Volume[material.Material], pal material.Palette, mergeQuads bool) ([]byte, error) {
	lower, upper, ok := vol.Bounds()
	if !ok {
		return nil, fmt.Errorf("api: volume has no allocated pages")
	}
	return ExtractRegionToGLB(vol, region.NewRegion(lower, upper), pal, mergeQuads)
}

// ExtractVolumeRegionsToGLB extracts every region in regs from the same
// volume and returns one glTF blob per region, in the same order. A failure
// on any one region aborts the whole call; use package batch instead when
// partial results or concurrency are wanted.
func ExtractVolumeRegionsToGLB(vol *volume.Volume[material.Material], regs []region.Region, pal material.Palette, mergeQuads bool) ([][]byte, error) {
	out := make([][]byte, len(regs))
	for i, reg := range regs {
		blob, err := ExtractRegionToGLB(vol, reg, pal, mergeQuads)
		if err != nil {
			return nil, fmt.Errorf("api: region %d: %w", i, err)
		}
		out[i] = blob
	}
	return out, nil
}

// PackVolume serializes vol and its palette into the codec package's pack
// format, ready to write to disk or ship over the wire.
func PackVolume(vol *volume.Volume[material.Material], pal material.Palette, bpp uint8) ([]byte, error) {
	data, err := codec.MarshalVolume(vol, pal, bpp)
	if err != nil {
		return nil, fmt.Errorf("api: pack volume: %w", err)
	}
	return data, nil
}

// UnpackVolume parses a pack built by PackVolume back into a volume, its
// palette, and the bits-per-index its pages were encoded with.
func UnpackVolume(data []byte) (*volume.Volume[material.Material], material.Palette, uint8, error) {
	vol, pal, bpp, err := codec.UnmarshalVolume(data)
	if err != nil {
		return nil, pal, 0, fmt.Errorf("api: unpack volume: %w", err)
	}
	return vol, pal, bpp, nil
}
