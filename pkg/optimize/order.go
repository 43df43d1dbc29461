package optimize

import (
	"fmt"

	"github.com/taigrr/meshtune/pkg/geom"
	"github.com/taigrr/meshtune/pkg/mesh"
)

// OptimizeVertexCache reorders triangles in place so sequential rendering
// reuses the post-transform vertex cache. Pure index-buffer permutation:
// winding is preserved and positions are never modified.
func (o *Optimizer) OptimizeVertexCache(m *mesh.Mesh) error {
	indices, positions, err := triangleBuffers(m)
	if err != nil {
		return err
	}
	if err := o.kernel.OptimizeVertexCache(indices, len(positions)); err != nil {
		return kernelError(err)
	}
	return nil
}

// OptimizeOverdraw reorders triangles in place to reduce pixel overdraw
// using front-to-back heuristics over the positions. threshold bounds the
// acceptable vertex cache hit ratio trade-off; values slightly above 1.0
// (such as 1.05) are typical.
func (o *Optimizer) OptimizeOverdraw(m *mesh.Mesh, threshold float32) error {
	indices, positions, err := triangleBuffers(m)
	if err != nil {
		return err
	}

	view, err := geom.NewVertexView(positions, geom.PositionSize, 0)
	if err != nil {
		return kernelError(err)
	}
	if err := o.kernel.OptimizeOverdraw(indices, view, threshold); err != nil {
		return kernelError(err)
	}
	return nil
}

// OptimizeVertexFetch compacts and reorders the position attribute in place
// for fetch locality, remapping the index buffer accordingly and truncating
// the attribute to the vertices still referenced.
//
// This is the only pass that permutes the vertex index space: any other
// per-vertex data keyed by the old ordering (skinning weights, attributes
// held outside the mesh) must be re-derived by the caller.
func (o *Optimizer) OptimizeVertexFetch(m *mesh.Mesh) error {
	indices, positions, err := triangleBuffers(m)
	if err != nil {
		return err
	}

	unique, err := o.kernel.OptimizeVertexFetch(indices, positions)
	if err != nil {
		return kernelError(err)
	}
	if unique < 0 || unique > len(positions) {
		return kernelError(fmt.Errorf("vertex fetch reported %d unique vertices for a buffer of %d", unique, len(positions)))
	}
	m.SetAttribute(mesh.AttributePosition, mesh.Float32x3(positions[:unique]))
	return nil
}

// OptimizeFull runs the three passes in their required order: vertex cache,
// then overdraw, then vertex fetch. Cache locality must exist before the
// overdraw heuristics mean anything, and fetch compaction permutes the
// vertex index space everything earlier depended on, so it goes last.
//
// The first failing pass aborts the sequence; passes already applied are not
// rolled back. The mesh stays index/position-consistent either way.
func (o *Optimizer) OptimizeFull(m *mesh.Mesh, threshold float32) error {
	if err := o.OptimizeVertexCache(m); err != nil {
		return err
	}
	if err := o.OptimizeOverdraw(m, threshold); err != nil {
		return err
	}
	return o.OptimizeVertexFetch(m)
}
