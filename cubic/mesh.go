package cubic

import "github.com/voxelsplace/cubicmesh/meshbuf"

func newMesh[V comparable]() *meshbuf.Mesh[CubicVertex[V]] {
	return meshbuf.New[CubicVertex[V]]()
}
