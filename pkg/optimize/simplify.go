package optimize

import (
	"fmt"

	"github.com/taigrr/meshtune/pkg/geom"
	"github.com/taigrr/meshtune/pkg/mesh"
)

// SimplifyParams controls mesh simplification.
type SimplifyParams struct {
	// MaxError bounds the allowed deviation from the original surface.
	MaxError float32

	// Target selects the desired index count.
	Target Target

	// Options are forwarded verbatim to the kernel's exact simplifier.
	// The sloppy simplifier ignores them entirely.
	Options geom.SimplifyOptions

	// Sloppy selects the faster, less precise simplifier, which can reduce
	// aggressively where the exact one would stop at topological features.
	Sloppy bool

	// VertexLocks, when non-nil, pins the vertices whose entries are true
	// against removal or relocation. Its length must equal the mesh's
	// vertex count.
	VertexLocks []bool
}

// SimplifyIndices derives a simplified index buffer without touching the
// mesh. It returns the new indices and the achieved deviation from the
// original surface, an estimate when Sloppy is set.
func (o *Optimizer) SimplifyIndices(m *mesh.Mesh, p SimplifyParams) ([]uint32, float32, error) {
	return o.deriveSimplifiedIndices(m, p)
}

// Simplify derives a simplified index buffer and commits it to the mesh,
// returning the achieved deviation. A degenerate result of fewer than 3
// indices is never committed: pathological over-reduction leaves the mesh's
// prior indices intact. Position data is never modified.
func (o *Optimizer) Simplify(m *mesh.Mesh, p SimplifyParams) (float32, error) {
	simplified, resultError, err := o.deriveSimplifiedIndices(m, p)
	if err != nil {
		return 0, err
	}
	if len(simplified) >= 3 {
		m.SetIndices(mesh.IndicesU32(simplified))
	}
	return resultError, nil
}

// deriveSimplifiedIndices is the pure core of simplification: validate,
// derive the target count, dispatch the kernel variant selected by
// (Sloppy, VertexLocks). No mesh mutation.
func (o *Optimizer) deriveSimplifiedIndices(m *mesh.Mesh, p SimplifyParams) ([]uint32, float32, error) {
	indices, positions, err := triangleBuffers(m)
	if err != nil {
		return nil, 0, err
	}
	if p.VertexLocks != nil && len(p.VertexLocks) != len(positions) {
		return nil, 0, LockCountError{Locks: len(p.VertexLocks), Vertices: len(positions)}
	}

	view, err := geom.NewVertexView(positions, geom.PositionSize, 0)
	if err != nil {
		return nil, 0, kernelError(err)
	}

	target := p.Target.IndexCount(len(indices))

	var (
		simplified  []uint32
		resultError float32
	)
	switch {
	case p.Sloppy && p.VertexLocks != nil:
		simplified, resultError, err = o.kernel.SimplifySloppyWithLocks(indices, view, p.VertexLocks, target, p.MaxError)
	case p.Sloppy:
		simplified, resultError, err = o.kernel.SimplifySloppy(indices, view, target, p.MaxError)
	case p.VertexLocks != nil:
		simplified, resultError, err = o.kernel.SimplifyWithLocks(indices, view, p.VertexLocks, target, p.MaxError, p.Options)
	default:
		simplified, resultError, err = o.kernel.Simplify(indices, view, target, p.MaxError, p.Options)
	}
	if err != nil {
		return nil, 0, kernelError(err)
	}
	if len(simplified)%3 != 0 {
		return nil, 0, kernelError(fmt.Errorf("simplification produced %d indices", len(simplified)))
	}
	for _, idx := range simplified {
		if int(idx) >= len(positions) {
			return nil, 0, kernelError(fmt.Errorf("simplification produced index %d for %d vertices", idx, len(positions)))
		}
	}
	return simplified, resultError, nil
}
