package optimize

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/meshtune/pkg/mesh"
)

// scrambledMesh builds a mesh whose triangles are deliberately out of the
// fake kernel's canonical orders.
func scrambledMesh() *mesh.Mesh {
	m := mesh.New("scrambled")
	m.SetAttribute(mesh.AttributePosition, mesh.Float32x3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 0, 0}, {2, 1, 0},
	})
	m.SetIndices(mesh.IndicesU32{
		3, 4, 5,
		0, 1, 2,
		1, 3, 2,
	})
	return m
}

func positionsOf(m *mesh.Mesh) []mgl32.Vec3 {
	p, _ := m.Positions()
	return p
}

func equalVec3(a, b []mgl32.Vec3) bool {
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

func TestOptimizeVertexCachePermutesIndicesOnly(t *testing.T) {
	opt := New(&fakeKernel{})

	m := scrambledMesh()
	positionsBefore := append([]mgl32.Vec3(nil), positionsOf(m)...)

	if err := opt.OptimizeVertexCache(m); err != nil {
		t.Fatal(err)
	}

	want := []uint32{0, 1, 2, 1, 3, 2, 3, 4, 5}
	if !equalU32(indicesU32(m), want) {
		t.Errorf("indices = %v, want %v", indicesU32(m), want)
	}
	if !equalVec3(positionsOf(m), positionsBefore) {
		t.Error("cache optimization touched positions")
	}
}

func TestCacheThenFetchReachesFixedPoint(t *testing.T) {
	opt := New(&fakeKernel{})
	m := scrambledMesh()

	runBoth := func() {
		if err := opt.OptimizeVertexCache(m); err != nil {
			t.Fatal(err)
		}
		if err := opt.OptimizeVertexFetch(m); err != nil {
			t.Fatal(err)
		}
	}

	runBoth()
	indicesAfterFirst := append([]uint32(nil), indicesU32(m)...)
	positionsAfterFirst := append([]mgl32.Vec3(nil), positionsOf(m)...)

	runBoth()
	if !equalU32(indicesU32(m), indicesAfterFirst) {
		t.Errorf("second run changed indices: %v -> %v", indicesAfterFirst, indicesU32(m))
	}
	if !equalVec3(positionsOf(m), positionsAfterFirst) {
		t.Error("second run changed positions")
	}
}

func TestOptimizeVertexFetchCompactsPositions(t *testing.T) {
	opt := New(&fakeKernel{})

	// Vertex 2 is never referenced, so fetch optimization drops it.
	m := mesh.New("sparse")
	m.SetAttribute(mesh.AttributePosition, mesh.Float32x3{
		{0, 0, 0}, {1, 0, 0}, {9, 9, 9}, {0, 1, 0}, {1, 1, 0},
	})
	m.SetIndices(mesh.IndicesU32{4, 0, 1, 0, 4, 3})

	if err := opt.OptimizeVertexFetch(m); err != nil {
		t.Fatal(err)
	}

	if got := m.VertexCount(); got != 4 {
		t.Errorf("vertex count after fetch = %d, want 4", got)
	}
	// Vertices now appear in first-use order.
	wantPositions := []mgl32.Vec3{{1, 1, 0}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if !equalVec3(positionsOf(m), wantPositions) {
		t.Errorf("positions = %v, want %v", positionsOf(m), wantPositions)
	}
	wantIndices := []uint32{0, 1, 2, 1, 0, 3}
	if !equalU32(indicesU32(m), wantIndices) {
		t.Errorf("indices = %v, want %v", indicesU32(m), wantIndices)
	}
}

func TestOptimizeVertexFetchRejectsBogusKernelCount(t *testing.T) {
	opt := New(&fakeKernel{badUnique: true})

	err := opt.OptimizeVertexFetch(scrambledMesh())
	if !errors.Is(err, ErrKernel) {
		t.Errorf("got %v, want ErrKernel", err)
	}
}

func TestOptimizeFullMatchesManualSequence(t *testing.T) {
	manual := scrambledMesh()
	composite := scrambledMesh()

	optManual := New(&fakeKernel{})
	if err := optManual.OptimizeVertexCache(manual); err != nil {
		t.Fatal(err)
	}
	if err := optManual.OptimizeOverdraw(manual, 1.05); err != nil {
		t.Fatal(err)
	}
	if err := optManual.OptimizeVertexFetch(manual); err != nil {
		t.Fatal(err)
	}

	kernel := &fakeKernel{}
	if err := New(kernel).OptimizeFull(composite, 1.05); err != nil {
		t.Fatal(err)
	}

	wantCalls := []string{"OptimizeVertexCache", "OptimizeOverdraw", "OptimizeVertexFetch"}
	if len(kernel.calls) != len(wantCalls) {
		t.Fatalf("kernel calls = %v, want %v", kernel.calls, wantCalls)
	}
	for i := range wantCalls {
		if kernel.calls[i] != wantCalls[i] {
			t.Fatalf("kernel calls = %v, want %v", kernel.calls, wantCalls)
		}
	}

	if !equalU32(indicesU32(manual), indicesU32(composite)) {
		t.Errorf("composite indices %v differ from manual %v", indicesU32(composite), indicesU32(manual))
	}
	if !equalVec3(positionsOf(manual), positionsOf(composite)) {
		t.Error("composite positions differ from manual sequence")
	}
}

func TestOptimizeFullAbortsWithoutRollback(t *testing.T) {
	kernel := &fakeKernel{failOn: "OptimizeOverdraw"}
	opt := New(kernel)

	m := scrambledMesh()
	err := opt.OptimizeFull(m, 1.05)
	if !errors.Is(err, ErrKernel) {
		t.Fatalf("got %v, want ErrKernel", err)
	}

	// The fetch pass never ran.
	for _, call := range kernel.calls {
		if call == "OptimizeVertexFetch" {
			t.Error("fetch pass ran after overdraw failed")
		}
	}

	// The cache pass already applied and stays applied: the mesh is left
	// mid-pipeline but consistent.
	wantIndices := []uint32{0, 1, 2, 1, 3, 2, 3, 4, 5}
	if !equalU32(indicesU32(m), wantIndices) {
		t.Errorf("indices = %v, want cache-ordered %v", indicesU32(m), wantIndices)
	}
	for _, idx := range indicesU32(m) {
		if int(idx) >= m.VertexCount() {
			t.Errorf("index %d out of range after aborted pipeline", idx)
		}
	}
}
