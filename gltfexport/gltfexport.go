// Package gltfexport converts an extracted cubic mesh into a binary glTF
// (.glb) document, grounded on VoxelsPlace-VOPL's RunVOPL2GLB: per-vertex
// flat normals computed from triangle winding, a palette colour lookup per
// vertex, and a single opaque-or-blended PBR material.
package gltfexport

import (
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsplace/cubicmesh/cubic"
	"github.com/voxelsplace/cubicmesh/material"
	"github.com/voxelsplace/cubicmesh/meshbuf"
)

// Options controls whether ambient occlusion is baked into vertex colours
// and which generator string the exported glTF document records. The
// mesh's region offset is always applied to positions.
type Options struct {
	// BakeAO multiplies each vertex's palette colour by ao/3.0 when set,
	// the same 0..3 ambient-occlusion scale the extractor computes.
	BakeAO bool
	// Generator is recorded in the document's asset metadata.
	Generator string
}

// WriteGLB writes mesh as a single-mesh, single-material binary glTF
// document to outPath, resolving vertex colours through pal and offsetting
// positions by the mesh's recorded region offset plus the mesh's own
// EncodedPosition -0.5 decode.
func WriteGLB[V comparable](mesh *meshbuf.Mesh[cubic.CubicVertex[V]], pal material.Palette, materialIndex func(V) uint8, opts Options, outPath string) error {
	doc := BuildDocument(mesh, pal, materialIndex, opts)
	return gltf.SaveBinary(doc, outPath)
}

// BuildDocument builds the in-memory glTF document WriteGLB would save,
// exposed separately so callers (e.g. the wasm bindings) can serialize it
// themselves instead of writing to a file path.
func BuildDocument[V comparable](mesh *meshbuf.Mesh[cubic.CubicVertex[V]], pal material.Palette, materialIndex func(V) uint8, opts Options) *gltf.Document {
	verts := mesh.Vertices()
	offset := mesh.Offset().Float()

	positions := make([][3]float32, len(verts))
	colors := make([][4]float32, len(verts))
	hasAlpha := false

	for i, v := range verts {
		p := cubic.DecodePosition(v.EncodedPosition)
		positions[i] = [3]float32{p.X() + offset.X(), p.Y() + offset.Y(), p.Z() + offset.Z()}

		rgba := pal[materialIndex(v.Material)]
		scale := float32(1)
		if opts.BakeAO {
			scale = float32(v.AmbientOcclusion) / 3.0
		}
		colors[i] = [4]float32{
			clamp01(float32(rgba.R)/255*scale),
			clamp01(float32(rgba.G)/255*scale),
			clamp01(float32(rgba.B)/255*scale),
			float32(rgba.A) / 255,
		}
		if rgba.A < 255 {
			hasAlpha = true
		}
	}

	indices := append([]uint32(nil), mesh.Indices()...)
	normals := faceNormals(positions, indices)

	doc := gltf.NewDocument()
	generator := opts.Generator
	if generator == "" {
		generator = "cubicmesh extractor -> GLB"
	}
	doc.Asset.Generator = generator

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	mat := &gltf.Material{PBRMetallicRoughness: pbr}
	if hasAlpha {
		mat.AlphaMode = gltf.AlphaBlend
	} else {
		mat.AlphaMode = gltf.AlphaOpaque
	}
	doc.Materials = []*gltf.Material{mat}
	prim.Material = gltf.Index(0)

	meshGltf := &gltf.Mesh{Name: "CubicMesh", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc
}

func faceNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[v0] = cross
		normals[v1] = cross
		normals[v2] = cross
	}
	return normals
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
