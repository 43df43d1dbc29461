package optimize

import "github.com/taigrr/meshtune/pkg/mesh"

// WidenIndices upgrades a 16-bit index buffer to the canonical 32-bit form,
// preserving order and values exactly. Meshes that are already 32-bit, have
// no index buffer, or carry an unrecognized buffer are left untouched; this
// is a best-effort upgrade, not a validated operation. Idempotent.
func WidenIndices(m *mesh.Mesh) {
	if narrow, ok := m.Indices().(mesh.IndicesU16); ok {
		m.SetIndices(narrow.Widen())
	}
}
