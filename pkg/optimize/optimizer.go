// Package optimize adapts the Mesh representation to the geometry-processing
// kernel: it validates mesh state, translates between the mesh structure and
// the flat buffers the kernel expects, derives target counts, and writes
// results back without ever leaving a mesh with dangling or out-of-range
// indices.
//
// Every operation is a synchronous, CPU-bound computation over the one mesh
// it is given; nothing is retained between calls. Callers must not run two
// operations against the same mesh concurrently.
package optimize

import (
	"github.com/taigrr/meshtune/pkg/geom"
)

// Optimizer exposes the adapter operations over an injected kernel.
type Optimizer struct {
	kernel geom.Kernel
}

// New creates an Optimizer backed by the given kernel.
func New(kernel geom.Kernel) *Optimizer {
	return &Optimizer{kernel: kernel}
}
