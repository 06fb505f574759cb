package cubic

// vertexReader is the subset of the mesh interface merging needs.
type vertexReader[V comparable] interface {
	GetVertex(uint32) CubicVertex[V]
}

func sameVertex[V comparable](a, b CubicVertex[V]) bool {
	return a.Material == b.Material && a.AmbientOcclusion == b.AmbientOcclusion
}

// mergeQuads attempts to merge q2 into q1 in place, returning whether it
// succeeded. Two quads merge only if all four vertex pairs match on
// material and ambient occlusion, and the quads are adjacent along exactly
// one edge (left, right, above, or below one another).
func mergeQuads[V comparable](q1, q2 *Quad, mesh vertexReader[V]) bool {
	v11 := mesh.GetVertex(q1.Vertices[0])
	v21 := mesh.GetVertex(q2.Vertices[0])
	v12 := mesh.GetVertex(q1.Vertices[1])
	v22 := mesh.GetVertex(q2.Vertices[1])
	v13 := mesh.GetVertex(q1.Vertices[2])
	v23 := mesh.GetVertex(q2.Vertices[2])
	v14 := mesh.GetVertex(q1.Vertices[3])
	v24 := mesh.GetVertex(q2.Vertices[3])

	if !(sameVertex(v11, v21) && sameVertex(v12, v22) && sameVertex(v13, v23) && sameVertex(v14, v24)) {
		return false
	}

	switch {
	case q1.Vertices[0] == q2.Vertices[1] && q1.Vertices[3] == q2.Vertices[2]:
		q1.Vertices[0] = q2.Vertices[0]
		q1.Vertices[3] = q2.Vertices[3]
		return true
	case q1.Vertices[3] == q2.Vertices[0] && q1.Vertices[2] == q2.Vertices[1]:
		q1.Vertices[3] = q2.Vertices[3]
		q1.Vertices[2] = q2.Vertices[2]
		return true
	case q1.Vertices[1] == q2.Vertices[0] && q1.Vertices[2] == q2.Vertices[3]:
		q1.Vertices[1] = q2.Vertices[1]
		q1.Vertices[2] = q2.Vertices[2]
		return true
	case q1.Vertices[0] == q2.Vertices[3] && q1.Vertices[1] == q2.Vertices[2]:
		q1.Vertices[0] = q2.Vertices[0]
		q1.Vertices[1] = q2.Vertices[1]
		return true
	}
	return false
}

// performQuadMerging runs a pass over quads, merging any pair that can be
// merged and dropping the absorbed quad, and repeats passes until one makes
// no progress. It returns the surviving quads.
func performQuadMerging[V comparable](quads []Quad, mesh vertexReader[V]) []Quad {
	merged := false
	out := quads[:0]
	consumed := make([]bool, len(quads))
	for i := range quads {
		if consumed[i] {
			continue
		}
		q1 := quads[i]
		for j := i + 1; j < len(quads); j++ {
			if consumed[j] {
				continue
			}
			if mergeQuads(&q1, &quads[j], mesh) {
				consumed[j] = true
				merged = true
			}
		}
		out = append(out, q1)
	}
	if !merged {
		return quads
	}
	return performQuadMerging(out, mesh)
}
