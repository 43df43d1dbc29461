package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ComputeSmoothNormals computes area-weighted per-vertex normals from the
// index buffer and stores them as the NORMAL attribute.
func (m *Mesh) ComputeSmoothNormals() error {
	positions, indices, err := m.triangleGeometry()
	if err != nil {
		return err
	}

	normals := make(Float32x3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := positions[indices[i]]
		v1 := positions[indices[i+1]]
		v2 := positions[indices[i+2]]

		// Cross product length is proportional to triangle area, so
		// accumulating unnormalized face normals weights by area.
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		normals[indices[i]] = normals[indices[i]].Add(n)
		normals[indices[i+1]] = normals[indices[i+1]].Add(n)
		normals[indices[i+2]] = normals[indices[i+2]].Add(n)
	}

	for i := range normals {
		if normals[i].Len() > 0 {
			normals[i] = normals[i].Normalize()
		}
	}

	m.SetAttribute(AttributeNormal, normals)
	return nil
}

// ComputeFlatNormals assigns each vertex the normal of the last face that
// references it. Vertices shared between faces end up with one of the face
// normals; for true flat shading vertices must not be shared.
func (m *Mesh) ComputeFlatNormals() error {
	positions, indices, err := m.triangleGeometry()
	if err != nil {
		return err
	}

	normals := make(Float32x3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := positions[indices[i]]
		v1 := positions[indices[i+1]]
		v2 := positions[indices[i+2]]

		n := v1.Sub(v0).Cross(v2.Sub(v0))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		normals[indices[i]] = n
		normals[indices[i+1]] = n
		normals[indices[i+2]] = n
	}

	m.SetAttribute(AttributeNormal, normals)
	return nil
}

func (m *Mesh) triangleGeometry() ([]mgl32.Vec3, []uint32, error) {
	positions, ok := m.Positions()
	if !ok {
		return nil, nil, fmt.Errorf("mesh %q has no float32x3 position attribute", m.Name)
	}

	var indices []uint32
	switch idx := m.indices.(type) {
	case IndicesU16:
		indices = idx.Widen()
	case IndicesU32:
		indices = idx
	default:
		return nil, nil, fmt.Errorf("mesh %q has no index buffer", m.Name)
	}

	for _, i := range indices {
		if int(i) >= len(positions) {
			return nil, nil, fmt.Errorf("mesh %q: index %d out of range for %d vertices", m.Name, i, len(positions))
		}
	}
	return positions, indices, nil
}
