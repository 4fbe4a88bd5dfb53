package wavefront

import "github.com/gogpu/softraster/raster"

// FaceVertex is one corner of a triangle as written in an "f" line: 1-based
// indices into the mesh's position, texture, and normal arrays. A zero
// texture or normal index means the corner omitted that component.
type FaceVertex struct {
	Position int
	Texture  int
	Normal   int
}

// Part is a named group of triangles ("g" ... "f" ... blocks) sharing a
// single material.
type Part struct {
	Name         string
	MaterialName string
	Surfaces     [][3]FaceVertex
}

// Mesh is the parsed, unflattened contents of a single OBJ file: the
// position/texture/normal pools and the parts that index into them.
type Mesh struct {
	Vertices    []raster.Vec3
	Textures    []raster.Vec2
	Normals     []raster.Vec3
	Parts       []Part
	MaterialLib string
}

// VertexLayout is the number of float32 values CreateData packs for each
// unique vertex: position (3), texture (2), normal (3). One vertex takes
// VertexLayout*4 = 32 bytes, which is the vertexStride to give
// raster.Pipeline.
const VertexLayout = 3 + 2 + 3

// PartIndices names the material a contiguous run of indices (within the
// shared index buffer returned by CreateData) should be drawn with.
type PartIndices struct {
	MaterialLibName string
	MaterialName    string
	IndexOffset     int
	IndexCount      int
}

// VertexIndexData is the GPU-ready form of a Mesh: a single deduplicated,
// interleaved vertex buffer and the index runs each Part contributes to a
// shared index buffer.
type VertexIndexData struct {
	Vertices []float32 // len = (number of unique vertices)*VertexLayout
	Indices  []uint32
	Parts    []PartIndices
}

// CreateData flattens m into a deduplicated vertex buffer and per-part
// index ranges, mirroring the reference mesh flattener: every distinct
// (position, texture, normal) triple seen across every face becomes exactly
// one vertex, keyed by its original 1-based index triple.
func (m Mesh) CreateData() VertexIndexData {
	type key = FaceVertex

	seen := make(map[key]uint32)
	var vertices []float32
	var indices []uint32
	parts := make([]PartIndices, 0, len(m.Parts))

	for _, part := range m.Parts {
		offset := len(indices)
		for _, surf := range part.Surfaces {
			for _, fv := range surf {
				idx, ok := seen[fv]
				if !ok {
					idx = uint32(len(vertices) / VertexLayout)
					seen[fv] = idx

					pos := m.Vertices[fv.Position-1]
					var uv raster.Vec2
					if fv.Texture > 0 {
						uv = m.Textures[fv.Texture-1]
					}
					var n raster.Vec3
					if fv.Normal > 0 {
						n = m.Normals[fv.Normal-1]
					}

					vertices = append(vertices,
						pos[0], pos[1], pos[2],
						uv[0], uv[1],
						n[0], n[1], n[2],
					)
				}
				indices = append(indices, idx)
			}
		}

		parts = append(parts, PartIndices{
			MaterialLibName: m.MaterialLib,
			MaterialName:    part.MaterialName,
			IndexOffset:     offset,
			IndexCount:      len(indices) - offset,
		})
	}

	return VertexIndexData{Vertices: vertices, Indices: indices, Parts: parts}
}
