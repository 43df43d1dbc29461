package optimize

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/meshtune/pkg/mesh"
)

// Validate checks that a mesh is in the state every kernel-backed operation
// requires: a canonical 32-bit triangle-list index buffer whose length is a
// non-zero multiple of 3, plus a 3-component float32 position attribute. It
// returns the same error the failing operation would.
func Validate(m *mesh.Mesh) error {
	_, _, err := triangleBuffers(m)
	return err
}

// indexSlice validates the mesh and returns its canonical 32-bit index
// buffer. The returned slice aliases the mesh's own buffer, so in-place
// kernel permutations act directly on the mesh.
//
// Checks run in a fixed order: buffer presence, index width, index count,
// topology. Pure validation, no mutation.
func indexSlice(m *mesh.Mesh) ([]uint32, error) {
	var indices []uint32
	switch idx := m.Indices().(type) {
	case nil:
		return nil, ErrMissingIndices
	case mesh.IndicesU32:
		indices = idx
	default:
		return nil, ErrUnsupportedIndexFormat
	}

	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, IndexCountError{Count: len(indices)}
	}
	if m.Topology() != mesh.TriangleList {
		return nil, TopologyError{Topology: m.Topology()}
	}
	return indices, nil
}

// positionSlice returns the mesh's position attribute in the canonical
// 3-component float32 form. The slice aliases the mesh's own attribute.
func positionSlice(m *mesh.Mesh) ([]mgl32.Vec3, error) {
	positions, ok := m.Positions()
	if !ok {
		return nil, ErrMissingPositions
	}
	return positions, nil
}

// triangleBuffers validates and extracts both buffers at once, the common
// case for kernel-backed operations.
func triangleBuffers(m *mesh.Mesh) ([]uint32, []mgl32.Vec3, error) {
	indices, err := indexSlice(m)
	if err != nil {
		return nil, nil, err
	}
	positions, err := positionSlice(m)
	if err != nil {
		return nil, nil, err
	}
	return indices, positions, nil
}
