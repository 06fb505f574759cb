// Package meshbuf implements the append-only vertex/index buffer the cubic
// extractor writes into.
package meshbuf

import "github.com/voxelsplace/cubicmesh/vecmath"

// Mesh is a generic vertex/triangle-index container, parameterized over the
// vertex type so the same buffer serves both the extractor's encoded vertex
// form and a decoded, render-ready form.
type Mesh[V any] struct {
	vertices []V
	indices  []uint32
	offset   vecmath.IVec3
}

// New returns an empty mesh.
func New[V any]() *Mesh[V] {
	return &Mesh[V]{}
}

// AddVertex appends v and returns its index.
func (m *Mesh[V]) AddVertex(v V) uint32 {
	m.vertices = append(m.vertices, v)
	return uint32(len(m.vertices) - 1)
}

// AddTriangle appends a triangle referencing three existing vertex indices.
func (m *Mesh[V]) AddTriangle(i0, i1, i2 uint32) {
	m.indices = append(m.indices, i0, i1, i2)
}

// GetVertex returns the vertex at index i.
func (m *Mesh[V]) GetVertex(i uint32) V {
	return m.vertices[i]
}

// Vertices returns the mesh's vertex slice. The caller must not mutate it.
func (m *Mesh[V]) Vertices() []V {
	return m.vertices
}

// Indices returns the mesh's triangle index slice, three per triangle. The
// caller must not mutate it.
func (m *Mesh[V]) Indices() []uint32 {
	return m.indices
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh[V]) NumVertices() int {
	return len(m.vertices)
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh[V]) NumTriangles() int {
	return len(m.indices) / 3
}

// SetOffset records the region offset the mesh's encoded local coordinates
// are relative to. It doesn't move any vertex; downstream consumers add it
// back in when decoding to world space.
func (m *Mesh[V]) SetOffset(o vecmath.IVec3) {
	m.offset = o
}

// Offset returns the region offset set by SetOffset.
func (m *Mesh[V]) Offset() vecmath.IVec3 {
	return m.offset
}

// Clear empties the mesh for reuse.
func (m *Mesh[V]) Clear() {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
	m.offset = vecmath.IVec3{}
}

// RemoveUnusedVertices compacts out any vertex never referenced by an index,
// remapping the index list in place. Grounded on the same mark-used/remap/
// compact shape VoxelsPlace-VOPL's pack.go uses to drop unreferenced
// dictionary entries, applied here to vertices instead of CDC chunks.
func (m *Mesh[V]) RemoveUnusedVertices() {
	used := make([]bool, len(m.vertices))
	for _, idx := range m.indices {
		used[idx] = true
	}

	remap := make([]uint32, len(m.vertices))
	compacted := make([]V, 0, len(m.vertices))
	for i, u := range used {
		if !u {
			continue
		}
		remap[i] = uint32(len(compacted))
		compacted = append(compacted, m.vertices[i])
	}

	for i, idx := range m.indices {
		m.indices[i] = remap[idx]
	}
	m.vertices = compacted
}
