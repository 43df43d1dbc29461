package geom

// Meshlet is one bounded-size cluster of a mesh. Its vertices and triangles
// live in the shared pools of the owning Meshlets aggregate.
type Meshlet struct {
	VertexOffset   uint32
	TriangleOffset uint32
	VertexCount    uint32
	TriangleCount  uint32
}

// Meshlets is the aggregate produced by kernel clustering. Vertices holds
// indices into the source vertex buffer; Triangles holds micro-indices into
// each meshlet's slice of Vertices, three per triangle.
type Meshlets struct {
	Meshlets  []Meshlet
	Vertices  []uint32
	Triangles []uint8
}

// Count returns the number of meshlets.
func (m *Meshlets) Count() int { return len(m.Meshlets) }

// MeshletVertices returns the source vertex indices of meshlet i.
func (m *Meshlets) MeshletVertices(i int) []uint32 {
	ml := m.Meshlets[i]
	return m.Vertices[ml.VertexOffset : ml.VertexOffset+ml.VertexCount]
}

// MeshletTriangles returns the micro-index triples of meshlet i.
func (m *Meshlets) MeshletTriangles(i int) []uint8 {
	ml := m.Meshlets[i]
	return m.Triangles[ml.TriangleOffset : ml.TriangleOffset+ml.TriangleCount*3]
}
