package cubic

// quadBuckets holds, for each face direction, one bucket of quads per slice
// along that face's normal axis. Only quads in the same bucket can ever be
// merged, since merging requires the quads to be coplanar.
type quadBuckets struct {
	buckets [numFaces][][]Quad
}

func newQuadBuckets(width, height, depth int32) *quadBuckets {
	qb := &quadBuckets{}
	qb.buckets[NegativeX] = make([][]Quad, width+1)
	qb.buckets[PositiveX] = make([][]Quad, width+1)
	qb.buckets[NegativeY] = make([][]Quad, height+1)
	qb.buckets[PositiveY] = make([][]Quad, height+1)
	qb.buckets[NegativeZ] = make([][]Quad, depth+1)
	qb.buckets[PositiveZ] = make([][]Quad, depth+1)
	return qb
}

func (qb *quadBuckets) push(face FaceDirection, slice int32, q Quad) {
	qb.buckets[face][slice] = append(qb.buckets[face][slice], q)
}
