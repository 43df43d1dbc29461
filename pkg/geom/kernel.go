// Package geom declares the interface to the geometry-processing kernel
// that backs mesh simplification, render-order optimization, and meshlet
// clustering. The kernel operates on raw index and position buffers; the
// higher-level adapter in pkg/optimize owns validation and mesh plumbing.
package geom

import "github.com/go-gl/mathgl/mgl32"

// SimplifyOptions is a bitset of flags forwarded verbatim to the kernel's
// exact simplifier. The sloppy simplifier does not accept options.
type SimplifyOptions uint32

const (
	// SimplifyLockBorder keeps vertices on topological borders in place.
	SimplifyLockBorder SimplifyOptions = 1 << iota
	// SimplifySparse improves performance when only a fraction of the mesh
	// is simplified.
	SimplifySparse
	// SimplifyErrorAbsolute interprets the error limit and the reported
	// result error in absolute units instead of relative to mesh extents.
	SimplifyErrorAbsolute
)

// Kernel provides the geometry-processing primitives. Implementations work
// on caller-owned buffers: methods documented as in-place mutate the slices
// they are given, the Simplify family returns fresh index buffers and never
// touches its inputs. All methods are synchronous and CPU-bound.
type Kernel interface {
	// Simplify reduces the triangle count toward targetIndexCount without
	// exceeding maxError. It returns the new index buffer and the achieved
	// deviation from the original surface.
	Simplify(indices []uint32, view VertexView, targetIndexCount int, maxError float32, options SimplifyOptions) ([]uint32, float32, error)

	// SimplifyWithLocks is Simplify with a per-vertex lock mask; locked
	// vertices are never removed or moved. len(locks) must equal
	// view.Count().
	SimplifyWithLocks(indices []uint32, view VertexView, locks []bool, targetIndexCount int, maxError float32, options SimplifyOptions) ([]uint32, float32, error)

	// SimplifySloppy trades geometric fidelity for reduction aggressiveness.
	// The reported error is an estimate, not an exact bound.
	SimplifySloppy(indices []uint32, view VertexView, targetIndexCount int, maxError float32) ([]uint32, float32, error)

	// SimplifySloppyWithLocks is SimplifySloppy with a per-vertex lock mask.
	SimplifySloppyWithLocks(indices []uint32, view VertexView, locks []bool, targetIndexCount int, maxError float32) ([]uint32, float32, error)

	// OptimizeVertexCache reorders triangles in place to maximize reuse of
	// a bounded-size post-transform vertex cache. Winding is preserved.
	OptimizeVertexCache(indices []uint32, vertexCount int) error

	// OptimizeOverdraw reorders triangles in place to reduce pixel overdraw
	// using front-to-back heuristics over the vertex positions. threshold
	// bounds the acceptable vertex cache hit ratio trade-off.
	OptimizeOverdraw(indices []uint32, view VertexView, threshold float32) error

	// OptimizeVertexFetch compacts and reorders positions in place for
	// fetch locality, remapping indices accordingly. It returns the number
	// of vertices referenced after compaction.
	OptimizeVertexFetch(indices []uint32, positions []mgl32.Vec3) (int, error)

	// BuildMeshlets clusters the mesh into meshlets bounded by maxVertices
	// and maxTriangles. coneWeight balances triangle-count uniformity
	// against normal-cone tightness.
	BuildMeshlets(indices []uint32, view VertexView, maxVertices, maxTriangles int, coneWeight float32) (*Meshlets, error)
}
