package mesh

// Indices is an index buffer in one of the supported widths. The
// optimization adapter only processes the 32-bit form; narrower buffers are
// widened first (see optimize.WidenIndices).
type Indices interface {
	// Len returns the number of indices.
	Len() int

	isIndices()
}

// IndicesU16 is a 16-bit index buffer.
type IndicesU16 []uint16

// IndicesU32 is the canonical 32-bit index buffer.
type IndicesU32 []uint32

func (i IndicesU16) Len() int { return len(i) }
func (i IndicesU32) Len() int { return len(i) }

func (IndicesU16) isIndices() {}
func (IndicesU32) isIndices() {}

// Widen returns the 32-bit equivalent, preserving order and values.
func (i IndicesU16) Widen() IndicesU32 {
	wide := make(IndicesU32, len(i))
	for j, v := range i {
		wide[j] = uint32(v)
	}
	return wide
}

func cloneIndices(indices Indices) Indices {
	switch idx := indices.(type) {
	case IndicesU16:
		out := make(IndicesU16, len(idx))
		copy(out, idx)
		return out
	case IndicesU32:
		out := make(IndicesU32, len(idx))
		copy(out, idx)
		return out
	default:
		return nil
	}
}
