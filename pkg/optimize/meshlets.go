package optimize

import (
	"github.com/taigrr/meshtune/pkg/geom"
	"github.com/taigrr/meshtune/pkg/mesh"
)

// BuildMeshlets clusters the mesh into meshlets holding at most maxVertices
// vertices and maxTriangles triangles each. coneWeight, in [0, 1], shifts
// the clustering from uniform triangle counts toward tight normal cones
// (useful for backface cluster culling); it is forwarded to the kernel
// unmodified. The mesh is not mutated.
func (o *Optimizer) BuildMeshlets(m *mesh.Mesh, maxVertices, maxTriangles int, coneWeight float32) (*geom.Meshlets, error) {
	indices, positions, err := triangleBuffers(m)
	if err != nil {
		return nil, err
	}

	view, err := geom.NewVertexView(positions, geom.PositionSize, 0)
	if err != nil {
		return nil, kernelError(err)
	}

	meshlets, err := o.kernel.BuildMeshlets(indices, view, maxVertices, maxTriangles, coneWeight)
	if err != nil {
		return nil, kernelError(err)
	}
	return meshlets, nil
}
