package optimize

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/meshtune/pkg/geom"
	"github.com/taigrr/meshtune/pkg/mesh"
)

// fakeKernel is a deterministic stand-in for the geometry kernel so the
// adapter's validation, dispatch, and commit logic can be tested without the
// real algorithms' numeric behavior.
//
// Simplify variants truncate the index buffer to the target count. The cache
// pass sorts triangles into lexicographic order and the fetch pass remaps
// vertices into first-use order; both orders are canonical, so re-running a
// pass on its own output is a no-op. The overdraw pass sorts triangles by
// descending first index, distinct from the cache order.
type fakeKernel struct {
	calls       []string
	lastOptions geom.SimplifyOptions
	lastLocks   []bool
	lastTarget  int
	lastCone    float32
	lastMaxV    int
	lastMaxT    int

	resultError float32
	failOn      string // method name that should fail
	badUnique   bool   // make OptimizeVertexFetch report a bogus count
}

var errFakeKernel = errors.New("fake kernel failure")

func (f *fakeKernel) fail(name string) error {
	f.calls = append(f.calls, name)
	if f.failOn == name {
		return errFakeKernel
	}
	return nil
}

func (f *fakeKernel) simplify(indices []uint32, target int) []uint32 {
	if target > len(indices) {
		target = len(indices)
	}
	out := make([]uint32, target)
	copy(out, indices[:target])
	return out
}

func (f *fakeKernel) Simplify(indices []uint32, view geom.VertexView, target int, maxError float32, options geom.SimplifyOptions) ([]uint32, float32, error) {
	f.lastOptions = options
	f.lastTarget = target
	if err := f.fail("Simplify"); err != nil {
		return nil, 0, err
	}
	return f.simplify(indices, target), f.resultError, nil
}

func (f *fakeKernel) SimplifyWithLocks(indices []uint32, view geom.VertexView, locks []bool, target int, maxError float32, options geom.SimplifyOptions) ([]uint32, float32, error) {
	f.lastOptions = options
	f.lastLocks = locks
	f.lastTarget = target
	if err := f.fail("SimplifyWithLocks"); err != nil {
		return nil, 0, err
	}
	return f.simplify(indices, target), f.resultError, nil
}

func (f *fakeKernel) SimplifySloppy(indices []uint32, view geom.VertexView, target int, maxError float32) ([]uint32, float32, error) {
	f.lastTarget = target
	if err := f.fail("SimplifySloppy"); err != nil {
		return nil, 0, err
	}
	return f.simplify(indices, target), f.resultError, nil
}

func (f *fakeKernel) SimplifySloppyWithLocks(indices []uint32, view geom.VertexView, locks []bool, target int, maxError float32) ([]uint32, float32, error) {
	f.lastLocks = locks
	f.lastTarget = target
	if err := f.fail("SimplifySloppyWithLocks"); err != nil {
		return nil, 0, err
	}
	return f.simplify(indices, target), f.resultError, nil
}

func (f *fakeKernel) OptimizeVertexCache(indices []uint32, vertexCount int) error {
	if err := f.fail("OptimizeVertexCache"); err != nil {
		return err
	}
	sortTriangles(indices, func(a, b [3]uint32) bool {
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return nil
}

func (f *fakeKernel) OptimizeOverdraw(indices []uint32, view geom.VertexView, threshold float32) error {
	if err := f.fail("OptimizeOverdraw"); err != nil {
		return err
	}
	sortTriangles(indices, func(a, b [3]uint32) bool {
		return a[0] > b[0]
	})
	return nil
}

func (f *fakeKernel) OptimizeVertexFetch(indices []uint32, positions []mgl32.Vec3) (int, error) {
	if err := f.fail("OptimizeVertexFetch"); err != nil {
		return 0, err
	}
	if f.badUnique {
		return len(positions) + 1, nil
	}

	remap := make(map[uint32]uint32, len(positions))
	compacted := make([]mgl32.Vec3, 0, len(positions))
	for i, old := range indices {
		next, seen := remap[old]
		if !seen {
			next = uint32(len(compacted))
			remap[old] = next
			compacted = append(compacted, positions[old])
		}
		indices[i] = next
	}
	copy(positions, compacted)
	return len(compacted), nil
}

func (f *fakeKernel) BuildMeshlets(indices []uint32, view geom.VertexView, maxVertices, maxTriangles int, coneWeight float32) (*geom.Meshlets, error) {
	f.lastMaxV = maxVertices
	f.lastMaxT = maxTriangles
	f.lastCone = coneWeight
	if err := f.fail("BuildMeshlets"); err != nil {
		return nil, err
	}

	out := &geom.Meshlets{}
	for tri := 0; tri < len(indices)/3; tri += maxTriangles {
		end := tri + maxTriangles
		if end > len(indices)/3 {
			end = len(indices) / 3
		}

		ml := geom.Meshlet{
			VertexOffset:   uint32(len(out.Vertices)),
			TriangleOffset: uint32(len(out.Triangles)),
		}
		local := make(map[uint32]uint8)
		for i := tri * 3; i < end*3; i++ {
			micro, seen := local[indices[i]]
			if !seen {
				micro = uint8(len(local))
				local[indices[i]] = micro
				out.Vertices = append(out.Vertices, indices[i])
			}
			out.Triangles = append(out.Triangles, micro)
		}
		ml.VertexCount = uint32(len(local))
		ml.TriangleCount = uint32(end - tri)
		out.Meshlets = append(out.Meshlets, ml)
	}
	return out, nil
}

func sortTriangles(indices []uint32, less func(a, b [3]uint32) bool) {
	tris := make([][3]uint32, len(indices)/3)
	for i := range tris {
		tris[i] = [3]uint32{indices[i*3], indices[i*3+1], indices[i*3+2]}
	}
	sort.SliceStable(tris, func(i, j int) bool { return less(tris[i], tris[j]) })
	for i, t := range tris {
		indices[i*3], indices[i*3+1], indices[i*3+2] = t[0], t[1], t[2]
	}
}

// fanMesh builds a valid triangle-list mesh with n triangles sharing vertex
// 0, so it has n+2 vertices.
func fanMesh(n int) *mesh.Mesh {
	m := mesh.New(fmt.Sprintf("fan-%d", n))

	positions := make(mesh.Float32x3, n+2)
	for i := range positions {
		positions[i] = mgl32.Vec3{float32(i), float32(i % 3), 0}
	}
	m.SetAttribute(mesh.AttributePosition, positions)

	indices := make(mesh.IndicesU32, 0, n*3)
	for i := 0; i < n; i++ {
		indices = append(indices, 0, uint32(i+1), uint32(i+2))
	}
	m.SetIndices(indices)
	return m
}

func indicesU32(m *mesh.Mesh) []uint32 {
	idx, _ := m.Indices().(mesh.IndicesU32)
	return idx
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
