// Package mesh provides the in-memory triangle-mesh representation consumed
// by the optimization adapter: an index buffer plus named vertex attributes.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Topology describes how the index buffer assembles primitives.
type Topology int

const (
	TriangleList Topology = iota
	TriangleStrip
	LineList
	PointList
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	case TriangleStrip:
		return "triangle-strip"
	case LineList:
		return "line-list"
	case PointList:
		return "point-list"
	default:
		return "unknown"
	}
}

// Mesh owns an optional index buffer and a set of named vertex attributes.
// All attributes are indexed by the same index buffer and must agree on
// vertex count; keeping them in agreement is the caller's responsibility.
type Mesh struct {
	Name string

	topology Topology
	indices  Indices
	attrs    map[string]VertexValues
}

// New creates an empty triangle-list mesh.
func New(name string) *Mesh {
	return &Mesh{
		Name:     name,
		topology: TriangleList,
		attrs:    make(map[string]VertexValues),
	}
}

// Topology returns the declared primitive topology.
func (m *Mesh) Topology() Topology { return m.topology }

// SetTopology sets the primitive topology.
func (m *Mesh) SetTopology(t Topology) { m.topology = t }

// Indices returns the index buffer, or nil when the mesh has none.
func (m *Mesh) Indices() Indices { return m.indices }

// SetIndices replaces the index buffer wholesale. A nil value removes it.
func (m *Mesh) SetIndices(indices Indices) { m.indices = indices }

// Attribute returns the named vertex attribute.
func (m *Mesh) Attribute(name string) (VertexValues, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// SetAttribute stores a vertex attribute under name, replacing any previous
// values.
func (m *Mesh) SetAttribute(name string, values VertexValues) {
	m.attrs[name] = values
}

// RemoveAttribute deletes the named attribute if present.
func (m *Mesh) RemoveAttribute(name string) {
	delete(m.attrs, name)
}

// AttributeNames returns the names of all stored attributes.
func (m *Mesh) AttributeNames() []string {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		names = append(names, name)
	}
	return names
}

// Positions returns the position attribute when it is present in the
// canonical 3-component float32 form.
func (m *Mesh) Positions() (Float32x3, bool) {
	positions, ok := m.attrs[AttributePosition].(Float32x3)
	return positions, ok
}

// VertexCount returns the number of vertices, defined by the position
// attribute. Meshes without positions report zero.
func (m *Mesh) VertexCount() int {
	positions, ok := m.Positions()
	if !ok {
		return 0
	}
	return len(positions)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	if m.indices == nil {
		return 0
	}
	return m.indices.Len() / 3
}

// Bounds computes the axis-aligned bounding box of the position attribute.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	positions, ok := m.Positions()
	if !ok || len(positions) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min, max = positions[0], positions[0]
	for _, p := range positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl32.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Mul(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() mgl32.Vec3 {
	min, max := m.Bounds()
	return max.Sub(min)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := New(m.Name)
	clone.topology = m.topology
	clone.indices = cloneIndices(m.indices)
	for name, values := range m.attrs {
		clone.attrs[name] = cloneValues(values)
	}
	return clone
}
