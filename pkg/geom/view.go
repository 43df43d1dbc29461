package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PositionSize is the byte size of one 3-component float32 position.
const PositionSize = 12

// VertexView is a read-only positional view over a vertex buffer, described
// by a byte stride between consecutive vertices and a byte offset of the
// position within each vertex. The kernel reads positions through it without
// caring how the host lays out the rest of its vertex data.
type VertexView struct {
	positions []mgl32.Vec3
	stride    int
	offset    int
}

// NewVertexView builds a view over positions. It fails when the declared
// layout cannot hold a 3-float position at the given offset.
func NewVertexView(positions []mgl32.Vec3, stride, offset int) (VertexView, error) {
	if offset < 0 {
		return VertexView{}, fmt.Errorf("vertex view: negative offset %d", offset)
	}
	if stride < offset+PositionSize {
		return VertexView{}, fmt.Errorf("vertex view: stride %d cannot hold a position at offset %d", stride, offset)
	}
	return VertexView{positions: positions, stride: stride, offset: offset}, nil
}

// Count returns the number of vertices in the view.
func (v VertexView) Count() int { return len(v.positions) }

// Stride returns the byte stride between consecutive vertices.
func (v VertexView) Stride() int { return v.stride }

// Offset returns the byte offset of the position within a vertex.
func (v VertexView) Offset() int { return v.offset }

// Position returns the position of vertex i.
func (v VertexView) Position(i int) mgl32.Vec3 { return v.positions[i] }
