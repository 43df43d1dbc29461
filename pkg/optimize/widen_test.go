package optimize

import (
	"testing"

	"github.com/taigrr/meshtune/pkg/mesh"
)

func TestWidenIndices(t *testing.T) {
	m := mesh.New("narrow")
	m.SetIndices(mesh.IndicesU16{2, 0, 1, 65535, 3, 4})

	WidenIndices(m)

	wide, ok := m.Indices().(mesh.IndicesU32)
	if !ok {
		t.Fatalf("indices are %T, want IndicesU32", m.Indices())
	}
	want := []uint32{2, 0, 1, 65535, 3, 4}
	if !equalU32(wide, want) {
		t.Errorf("got %v, want %v", wide, want)
	}
}

func TestWidenIndicesIdempotent(t *testing.T) {
	m := mesh.New("narrow")
	m.SetIndices(mesh.IndicesU16{0, 1, 2})

	WidenIndices(m)
	first := m.Indices()
	WidenIndices(m)

	// The second call must not touch the buffer at all.
	second, ok := m.Indices().(mesh.IndicesU32)
	if !ok {
		t.Fatalf("indices are %T, want IndicesU32", m.Indices())
	}
	if &second[0] != &first.(mesh.IndicesU32)[0] {
		t.Error("second widen replaced an already-canonical buffer")
	}
}

func TestWidenIndicesNoopWithoutBuffer(t *testing.T) {
	m := mesh.New("empty")
	WidenIndices(m)
	if m.Indices() != nil {
		t.Errorf("widen invented an index buffer: %v", m.Indices())
	}
}
