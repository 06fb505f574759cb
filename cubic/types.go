// Package cubic implements the cubic (blocky, Minecraft-style) surface
// extractor: it walks a region of a voxel volume and emits one quad per
// solid/empty boundary face, deduplicating vertices that are shared between
// adjacent faces and optionally greedily merging coplanar quads before
// triangulating.
package cubic

import "github.com/go-gl/mathgl/mgl32"

// MaxVerticesPerPosition bounds how many distinct (material, AO) vertex
// variants may share one encoded position. A 2x2x2 block of eight
// differently-materialed voxels is the worst case that can occur, so eight
// slots are always enough; a ninth request at the same position is a bug in
// the caller's predicates, not a limitation of the algorithm.
const MaxVerticesPerPosition = 8

// FaceDirection names one of the six cube faces a quad can be emitted for.
type FaceDirection int

const (
	PositiveX FaceDirection = iota
	PositiveY
	PositiveZ
	NegativeX
	NegativeY
	NegativeZ
	numFaces
)

func (f FaceDirection) String() string {
	switch f {
	case PositiveX:
		return "PositiveX"
	case PositiveY:
		return "PositiveY"
	case PositiveZ:
		return "PositiveZ"
	case NegativeX:
		return "NegativeX"
	case NegativeY:
		return "NegativeY"
	case NegativeZ:
		return "NegativeZ"
	default:
		return "unknown"
	}
}

// CubicVertex is the encoded vertex form the extractor writes into the mesh.
// Position components are packed into a single byte each (0..255) because a
// region can span at most 255 voxels per axis; decode with DecodePosition.
type CubicVertex[V comparable] struct {
	EncodedPosition [3]uint8
	Material        V
	AmbientOcclusion uint8
}

// Quad references four vertex indices in winding order v0,v1,v2,v3. It is
// split into two triangles along either the v0-v2 or the v1-v3 diagonal,
// depending on ambient occlusion (see triangulate).
type Quad struct {
	Vertices [4]uint32
}

// DecodePosition undoes CubicVertex's byte-packed encoding, returning the
// vertex position relative to the region's lower corner. The -0.5 offset
// matches the source algorithm: vertex planes sit between voxel centres.
func DecodePosition(encoded [3]uint8) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(encoded[0]) - 0.5,
		float32(encoded[1]) - 0.5,
		float32(encoded[2]) - 0.5,
	}
}
