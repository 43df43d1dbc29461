package mesh

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// LoadGLTF reads a GLTF or GLB file into a Mesh, merging all triangle
// primitives. Vertex order, triangle winding, and index values are preserved
// exactly as authored; the index buffer keeps the narrowest width that holds
// the merged mesh, so files indexed with unsigned shorts load as IndicesU16.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	m := New(filepath.Base(path))

	var (
		positions Float32x3
		normals   Float32x3
		uvs       Float32x2
		indices   []uint32

		anyNormals bool
		anyUVs     bool
		anyWide    bool
	)

	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				// Lines, points, strips and fans are skipped; the adapter
				// only processes triangle lists.
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			primPositions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", gm.Name, err)
			}

			baseVertex := len(positions)
			positions = append(positions, primPositions...)

			primNormals := make([]mgl32.Vec3, len(primPositions))
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				primNormals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read normals: %w", gm.Name, err)
				}
				anyNormals = true
			}
			normals = append(normals, primNormals...)

			primUVs := make([]mgl32.Vec2, len(primPositions))
			if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				primUVs, err = readVec2Accessor(doc, uvIdx)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read uvs: %w", gm.Name, err)
				}
				anyUVs = true
			}
			uvs = append(uvs, primUVs...)

			if prim.Indices != nil {
				primIndices, wide, err := readIndexAccessor(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", gm.Name, err)
				}
				anyWide = anyWide || wide
				for _, i := range primIndices {
					indices = append(indices, uint32(baseVertex)+i)
				}
			} else {
				// Unindexed primitive: identity indices, three vertices per
				// triangle.
				for i := range primPositions {
					indices = append(indices, uint32(baseVertex+i))
				}
			}
		}
	}

	m.SetAttribute(AttributePosition, positions)
	if anyNormals {
		m.SetAttribute(AttributeNormal, normals)
	}
	if anyUVs {
		m.SetAttribute(AttributeTexCoord, uvs)
	}

	if anyWide || len(positions) > math.MaxUint16+1 {
		m.SetIndices(IndicesU32(indices))
	} else {
		narrow := make(IndicesU16, len(indices))
		for i, v := range indices {
			narrow[i] = uint16(v)
		}
		m.SetIndices(narrow)
	}

	return m, nil
}

// readVec3Accessor reads VEC3 float data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]mgl32.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v %v", accessor.ComponentType, accessor.Type)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	out := make([]mgl32.Vec3, accessor.Count)
	for i := range out {
		off := i * stride
		for j := 0; j < 3; j++ {
			out[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(data[off+4*j:]))
		}
	}
	return out, nil
}

// readVec2Accessor reads VEC2 float data from a GLTF accessor.
func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]mgl32.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC2, got %v %v", accessor.ComponentType, accessor.Type)
	}

	data, stride, err := accessorBytes(doc, accessor, 8)
	if err != nil {
		return nil, err
	}

	out := make([]mgl32.Vec2, accessor.Count)
	for i := range out {
		off := i * stride
		for j := 0; j < 2; j++ {
			out[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(data[off+4*j:]))
		}
	}
	return out, nil
}

// readIndexAccessor reads SCALAR index data. wide reports whether the source
// accessor used a 32-bit component type.
func readIndexAccessor(doc *gltf.Document, accessorIdx int) (indices []uint32, wide bool, err error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, false, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var elemSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		elemSize = 1
	case gltf.ComponentUshort:
		elemSize = 2
	case gltf.ComponentUint:
		elemSize = 4
		wide = true
	default:
		return nil, false, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, elemSize)
	if err != nil {
		return nil, false, err
	}

	out := make([]uint32, accessor.Count)
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		for i := range out {
			out[i] = uint32(data[i*stride])
		}
	case gltf.ComponentUshort:
		for i := range out {
			out[i] = uint32(binary.LittleEndian.Uint16(data[i*stride:]))
		}
	case gltf.ComponentUint:
		for i := range out {
			out[i] = binary.LittleEndian.Uint32(data[i*stride:])
		}
	}
	return out, wide, nil
}

// accessorBytes returns the raw bytes backing an accessor and the effective
// byte stride (the buffer view's stride, or elemSize when tightly packed),
// after checking that every declared element fits inside the buffer.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}

	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]

	if buffer.URI != "" {
		return nil, 0, fmt.Errorf("external buffers are not supported")
	}
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + accessor.ByteOffset
	need := 0
	if accessor.Count > 0 {
		need = (accessor.Count-1)*stride + elemSize
	}
	if start+need > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor needs %d bytes at offset %d, buffer has %d", need, start, len(buffer.Data))
	}
	return buffer.Data[start:], stride, nil
}
