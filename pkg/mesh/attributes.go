package mesh

import "github.com/go-gl/mathgl/mgl32"

// Well-known attribute names, matching GLTF semantics.
const (
	AttributePosition = "POSITION"
	AttributeNormal   = "NORMAL"
	AttributeTexCoord = "TEXCOORD_0"
	AttributeColor    = "COLOR_0"
)

// VertexFormat identifies the component layout of a vertex attribute.
type VertexFormat int

const (
	FormatFloat32x2 VertexFormat = iota
	FormatFloat32x3
	FormatFloat32x4
)

// String returns the format name.
func (f VertexFormat) String() string {
	switch f {
	case FormatFloat32x2:
		return "float32x2"
	case FormatFloat32x3:
		return "float32x3"
	case FormatFloat32x4:
		return "float32x4"
	default:
		return "unknown"
	}
}

// VertexValues holds the per-vertex data of one attribute in one of the
// supported component layouts.
type VertexValues interface {
	// Len returns the number of vertices.
	Len() int
	// Format returns the component layout.
	Format() VertexFormat
}

// Float32x2 holds 2-component float32 values (texture coordinates).
type Float32x2 []mgl32.Vec2

// Float32x3 holds 3-component float32 values (positions, normals).
type Float32x3 []mgl32.Vec3

// Float32x4 holds 4-component float32 values (colors, tangents).
type Float32x4 []mgl32.Vec4

func (v Float32x2) Len() int { return len(v) }
func (v Float32x3) Len() int { return len(v) }
func (v Float32x4) Len() int { return len(v) }

func (Float32x2) Format() VertexFormat { return FormatFloat32x2 }
func (Float32x3) Format() VertexFormat { return FormatFloat32x3 }
func (Float32x4) Format() VertexFormat { return FormatFloat32x4 }

func cloneValues(values VertexValues) VertexValues {
	switch v := values.(type) {
	case Float32x2:
		out := make(Float32x2, len(v))
		copy(out, v)
		return out
	case Float32x3:
		out := make(Float32x3, len(v))
		copy(out, v)
		return out
	case Float32x4:
		out := make(Float32x4, len(v))
		copy(out, v)
		return out
	default:
		return values
	}
}
