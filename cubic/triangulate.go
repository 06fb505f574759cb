package cubic

// triangleAdder is the subset of the mesh interface triangulation needs.
type triangleAdder interface {
	AddTriangle(i0, i1, i2 uint32)
}

// triangulate emits the two triangles for a quad, choosing the diagonal that
// keeps ambient-occlusion interpolation looking right: the split runs
// through whichever pair of opposite corners has the higher combined
// ambient-occlusion value (the less occluded pair; v0-v2 on a tie),
// avoiding the visible seam that the other diagonal would produce.
//
// The original algorithm additionally emitted a third, redundant triangle
// (vertices 0,2,3) on every quad regardless of which diagonal was chosen;
// that duplicate is not reproduced here.
func triangulate[V comparable](q Quad, mesh vertexReader[V], out triangleAdder) {
	v00 := mesh.GetVertex(q.Vertices[3])
	v01 := mesh.GetVertex(q.Vertices[0])
	v10 := mesh.GetVertex(q.Vertices[2])
	v11 := mesh.GetVertex(q.Vertices[1])

	if int(v00.AmbientOcclusion)+int(v11.AmbientOcclusion) > int(v01.AmbientOcclusion)+int(v10.AmbientOcclusion) {
		out.AddTriangle(q.Vertices[1], q.Vertices[2], q.Vertices[3])
		out.AddTriangle(q.Vertices[1], q.Vertices[3], q.Vertices[0])
	} else {
		out.AddTriangle(q.Vertices[0], q.Vertices[1], q.Vertices[2])
		out.AddTriangle(q.Vertices[0], q.Vertices[2], q.Vertices[3])
	}
}
