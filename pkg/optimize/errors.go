package optimize

import (
	"errors"
	"fmt"

	"github.com/taigrr/meshtune/pkg/mesh"
)

// Sentinel errors for mesh states that an operation cannot work with. All
// public operations return one of these (or one of the typed errors below)
// without mutating the mesh.
var (
	// ErrMissingIndices is returned when the mesh has no index buffer.
	ErrMissingIndices = errors.New("mesh has no index buffer")

	// ErrUnsupportedIndexFormat is returned when the index buffer is not in
	// the canonical 32-bit form. WidenIndices upgrades 16-bit buffers.
	ErrUnsupportedIndexFormat = errors.New("index buffer is not in 32-bit form")

	// ErrMissingPositions is returned when the position attribute is absent
	// or not 3-component float32.
	ErrMissingPositions = errors.New("mesh has no float32x3 position attribute")

	// ErrKernel wraps failures reported by the geometry kernel itself.
	ErrKernel = errors.New("geometry kernel")
)

// IndexCountError reports an index buffer whose length is zero or not a
// multiple of 3.
type IndexCountError struct {
	Count int
}

func (e IndexCountError) Error() string {
	return fmt.Sprintf("invalid index count %d: want a non-zero multiple of 3", e.Count)
}

// TopologyError reports a mesh whose primitive topology is not a triangle
// list.
type TopologyError struct {
	Topology mesh.Topology
}

func (e TopologyError) Error() string {
	return fmt.Sprintf("unsupported primitive topology %s: want triangle-list", e.Topology)
}

// LockCountError reports a vertex lock mask whose length does not match the
// mesh's vertex count. The kernel's behavior under a mismatch is undefined,
// so the adapter rejects it before any kernel call.
type LockCountError struct {
	Locks    int
	Vertices int
}

func (e LockCountError) Error() string {
	return fmt.Sprintf("vertex lock mask has %d entries for %d vertices", e.Locks, e.Vertices)
}

func kernelError(err error) error {
	return fmt.Errorf("%w: %w", ErrKernel, err)
}
