package cubic

import (
	"log"
	"time"

	"github.com/voxelsplace/cubicmesh/meshbuf"
	"github.com/voxelsplace/cubicmesh/region"
	"github.com/voxelsplace/cubicmesh/vecmath"
)

const maxRegionDimensionInVoxels = 255

// Options controls extraction behaviour beyond the required sampler/mesh/
// predicate arguments.
type Options struct {
	// MergeQuads enables the greedy quad-merging pass before triangulation.
	// Disabling it is mostly useful for tests that want to reason about
	// unmerged per-voxel quads.
	MergeQuads bool

	// Trace, when true, logs region size and timing at the end of
	// extraction, the way the source library's trace logging does.
	Trace bool
}

// ExtractMesh extracts a cubic mesh for reg out of a freshly allocated mesh.
func ExtractMesh[V comparable](sampler Sampler[V], reg region.Region, isQuadNeeded IsQuadNeededFunc[V], contributesToAO ContributesToAOFunc[V], opts Options) (*meshbuf.Mesh[CubicVertex[V]], error) {
	m := newMesh[V]()
	if err := ExtractMeshInto(sampler, reg, isQuadNeeded, contributesToAO, opts, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ExtractMeshInto extracts a cubic mesh for reg into a caller-provided mesh,
// clearing it first. Useful for pooling mesh allocations across many
// extractions.
func ExtractMeshInto[V comparable](sampler Sampler[V], reg region.Region, isQuadNeeded IsQuadNeededFunc[V], contributesToAO ContributesToAOFunc[V], opts Options, result MeshSink[V]) error {
	start := time.Now()
	result.Clear()

	width := reg.Width()
	height := reg.Height()
	depth := reg.Depth()

	if width > maxRegionDimensionInVoxels || height > maxRegionDimensionInVoxels || depth > maxRegionDimensionInVoxels {
		return regionTooLargeErr("ExtractMeshInto")
	}

	// The vertex grid spans one position past the last voxel index on
	// each axis (a face on the last voxel still needs its far-edge
	// vertex column), so slotTable takes width/height directly: it
	// already allocates width+1 positions per axis. Quad buckets are
	// sliced per voxel index, one bucket short of the vertex grid.
	previous := newSlotTable[V](width, height)
	current := newSlotTable[V](width, height)

	quads := newQuadBuckets(width-1, height-1, depth-1)

	ao3 := func(f1, f2, corner V) uint8 {
		return vertexAmbientOcclusion(contributesToAO(f1), contributesToAO(f2), contributesToAO(corner))
	}

	for z := reg.Lower.Z; z <= reg.Upper.Z; z++ {
		regZ := z - reg.Lower.Z

		for y := reg.Lower.Y; y <= reg.Upper.Y; y++ {
			regY := y - reg.Lower.Y

			sampler.SetPosition(vecmath.IVec3{X: reg.Lower.X, Y: y, Z: z})

			for x := reg.Lower.X; x <= reg.Upper.X; x++ {
				regX := x - reg.Lower.X

				voxelCurrent := sampler.GetVoxel()

				voxelLeft := sampler.PeekVoxel1nx0py0pz()
				voxelBefore := sampler.PeekVoxel0px0py1nz()
				voxelLeftBefore := sampler.PeekVoxel1nx0py1nz()
				voxelRightBefore := sampler.PeekVoxel1px0py1nz()
				voxelLeftBehind := sampler.PeekVoxel1nx0py1pz()

				voxelAboveLeft := sampler.PeekVoxel1nx1py0pz()
				voxelAboveBefore := sampler.PeekVoxel0px1py1nz()
				voxelAboveLeftBefore := sampler.PeekVoxel1nx1py1nz()
				voxelAboveRightBefore := sampler.PeekVoxel1px1py1nz()
				voxelAboveLeftBehind := sampler.PeekVoxel1nx1py1pz()

				voxelBelow := sampler.PeekVoxel0px1ny0pz()
				voxelBelowLeft := sampler.PeekVoxel1nx1ny0pz()
				voxelBelowRight := sampler.PeekVoxel1px1ny0pz()
				voxelBelowBefore := sampler.PeekVoxel0px1ny1nz()
				voxelBelowBehind := sampler.PeekVoxel0px1ny1pz()
				voxelBelowLeftBefore := sampler.PeekVoxel1nx1ny1nz()
				voxelBelowRightBefore := sampler.PeekVoxel1px1ny1nz()
				voxelBelowLeftBehind := sampler.PeekVoxel1nx1ny1pz()
				voxelBelowRightBehind := sampler.PeekVoxel1px1ny1pz()

				// X negative (left)
				if needed, mat := isQuadNeeded(voxelCurrent, voxelLeft); needed {
					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(voxelLeftBefore, voxelBelowLeft, voxelBelowLeftBefore), result)
					if err != nil {
						return err
					}
					v1, err := current.addVertex(regX, regY, regZ+1, mat, ao3(voxelBelowLeft, voxelLeftBehind, voxelBelowLeftBehind), result)
					if err != nil {
						return err
					}
					v2, err := current.addVertex(regX, regY+1, regZ+1, mat, ao3(voxelLeftBehind, voxelAboveLeft, voxelAboveLeftBehind), result)
					if err != nil {
						return err
					}
					v3, err := previous.addVertex(regX, regY+1, regZ, mat, ao3(voxelAboveLeft, voxelLeftBefore, voxelAboveLeftBefore), result)
					if err != nil {
						return err
					}
					quads.push(NegativeX, regX, Quad{[4]uint32{v0, v1, v2, v3}})
				}

				// X positive (right)
				if needed, mat := isQuadNeeded(voxelLeft, voxelCurrent); needed {
					sampler.MoveNegativeX()

					rightBefore := sampler.PeekVoxel1px0py1nz()
					rightBehind := sampler.PeekVoxel1px0py1pz()
					aboveRight := sampler.PeekVoxel1px1py0pz()
					aboveRightBefore := sampler.PeekVoxel1px1py1nz()
					aboveRightBehind := sampler.PeekVoxel1px1py1pz()
					belowRight := sampler.PeekVoxel1px1ny0pz()
					belowRightBefore := sampler.PeekVoxel1px1ny1nz()
					belowRightBehind := sampler.PeekVoxel1px1ny1pz()

					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(belowRight, rightBefore, belowRightBefore), result)
					if err != nil {
						return err
					}
					v1, err := current.addVertex(regX, regY, regZ+1, mat, ao3(belowRight, rightBehind, belowRightBehind), result)
					if err != nil {
						return err
					}
					v2, err := current.addVertex(regX, regY+1, regZ+1, mat, ao3(aboveRight, rightBehind, aboveRightBehind), result)
					if err != nil {
						return err
					}
					v3, err := previous.addVertex(regX, regY+1, regZ, mat, ao3(aboveRight, rightBefore, aboveRightBefore), result)
					if err != nil {
						return err
					}
					quads.push(PositiveX, regX, Quad{[4]uint32{v0, v3, v2, v1}})

					sampler.MovePositiveX()
				}

				// Y negative (below)
				if needed, mat := isQuadNeeded(voxelCurrent, voxelBelow); needed {
					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(voxelBelowBefore, voxelBelowLeft, voxelBelowLeftBefore), result)
					if err != nil {
						return err
					}
					v1, err := previous.addVertex(regX+1, regY, regZ, mat, ao3(voxelBelowRight, voxelBelowBefore, voxelBelowRightBefore), result)
					if err != nil {
						return err
					}
					v2, err := current.addVertex(regX+1, regY, regZ+1, mat, ao3(voxelBelowBehind, voxelBelowRight, voxelBelowRightBehind), result)
					if err != nil {
						return err
					}
					v3, err := current.addVertex(regX, regY, regZ+1, mat, ao3(voxelBelowLeft, voxelBelowBehind, voxelBelowLeftBehind), result)
					if err != nil {
						return err
					}
					quads.push(NegativeY, regY, Quad{[4]uint32{v0, v1, v2, v3}})
				}

				// Y positive (above)
				if needed, mat := isQuadNeeded(voxelBelow, voxelCurrent); needed {
					sampler.MoveNegativeY()

					aboveLeft := sampler.PeekVoxel1nx1py0pz()
					aboveRight := sampler.PeekVoxel1px1py0pz()
					aboveBefore := sampler.PeekVoxel0px1py1nz()
					aboveBehind := sampler.PeekVoxel0px1py1pz()
					aboveLeftBefore := sampler.PeekVoxel1nx1py1nz()
					aboveRightBefore := sampler.PeekVoxel1px1py1nz()
					aboveLeftBehind := sampler.PeekVoxel1nx1py1pz()
					aboveRightBehind := sampler.PeekVoxel1px1py1pz()

					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(aboveBefore, aboveLeft, aboveLeftBefore), result)
					if err != nil {
						return err
					}
					v1, err := previous.addVertex(regX+1, regY, regZ, mat, ao3(aboveRight, aboveBefore, aboveRightBefore), result)
					if err != nil {
						return err
					}
					v2, err := current.addVertex(regX+1, regY, regZ+1, mat, ao3(aboveBehind, aboveRight, aboveRightBehind), result)
					if err != nil {
						return err
					}
					v3, err := current.addVertex(regX, regY, regZ+1, mat, ao3(aboveLeft, aboveBehind, aboveLeftBehind), result)
					if err != nil {
						return err
					}
					quads.push(PositiveY, regY, Quad{[4]uint32{v0, v3, v2, v1}})

					sampler.MovePositiveY()
				}

				// Z negative (before)
				if needed, mat := isQuadNeeded(voxelCurrent, voxelBefore); needed {
					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(voxelBelowBefore, voxelLeftBefore, voxelBelowLeftBefore), result)
					if err != nil {
						return err
					}
					v1, err := previous.addVertex(regX, regY+1, regZ, mat, ao3(voxelAboveBefore, voxelLeftBefore, voxelAboveLeftBefore), result)
					if err != nil {
						return err
					}
					v2, err := previous.addVertex(regX+1, regY+1, regZ, mat, ao3(voxelAboveBefore, voxelRightBefore, voxelAboveRightBefore), result)
					if err != nil {
						return err
					}
					v3, err := previous.addVertex(regX+1, regY, regZ, mat, ao3(voxelBelowBefore, voxelRightBefore, voxelBelowRightBefore), result)
					if err != nil {
						return err
					}
					quads.push(NegativeZ, regZ, Quad{[4]uint32{v0, v1, v2, v3}})
				}

				// Z positive (behind)
				if needed, mat := isQuadNeeded(voxelBefore, voxelCurrent); needed {
					sampler.MoveNegativeZ()

					leftBehind := sampler.PeekVoxel1nx0py1pz()
					rightBehind := sampler.PeekVoxel1px0py1pz()
					aboveBehind := sampler.PeekVoxel0px1py1pz()
					aboveLeftBehind := sampler.PeekVoxel1nx1py1pz()
					aboveRightBehind := sampler.PeekVoxel1px1py1pz()
					belowBehind := sampler.PeekVoxel0px1ny1pz()
					belowLeftBehind := sampler.PeekVoxel1nx1ny1pz()
					belowRightBehind := sampler.PeekVoxel1px1ny1pz()

					v0, err := previous.addVertex(regX, regY, regZ, mat, ao3(belowBehind, leftBehind, belowLeftBehind), result)
					if err != nil {
						return err
					}
					v1, err := previous.addVertex(regX, regY+1, regZ, mat, ao3(aboveBehind, leftBehind, aboveLeftBehind), result)
					if err != nil {
						return err
					}
					v2, err := previous.addVertex(regX+1, regY+1, regZ, mat, ao3(aboveBehind, rightBehind, aboveRightBehind), result)
					if err != nil {
						return err
					}
					v3, err := previous.addVertex(regX+1, regY, regZ, mat, ao3(belowBehind, rightBehind, belowRightBehind), result)
					if err != nil {
						return err
					}
					quads.push(PositiveZ, regZ, Quad{[4]uint32{v0, v3, v2, v1}})

					sampler.MovePositiveZ()
				}

				sampler.MovePositiveX()
			}
		}

		previous, current = current, previous
		current.clear()
	}

	for face := FaceDirection(0); face < numFaces; face++ {
		for slice := range quads.buckets[face] {
			bucket := quads.buckets[face][slice]
			if len(bucket) == 0 {
				continue
			}
			if opts.MergeQuads {
				bucket = performQuadMerging(bucket, result)
			}
			for _, q := range bucket {
				triangulate(q, result, result)
			}
		}
	}

	result.SetOffset(reg.Lower)
	result.RemoveUnusedVertices()

	if opts.Trace {
		log.Printf("cubic surface extraction took %s (region size = %dx%dx%d)",
			time.Since(start), width, height, depth)
	}

	return nil
}
