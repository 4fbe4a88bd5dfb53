package shader

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/softraster/raster"
)

// ShaderProgram combines a vertex and fragment shader into a complete
// program a Pipeline can be built from.
type ShaderProgram struct {
	Vertex   raster.VertexShaderFunc
	Fragment raster.FragmentShaderFunc
}

// IsValid reports whether the program has both a vertex and a fragment
// shader.
func (p ShaderProgram) IsValid() bool {
	return p.Vertex != nil && p.Fragment != nil
}

// ReadFloat32 reads the little-endian float32 stored at data[offset:offset+4].
// Vertex shaders use it to pull fields out of the raw per-vertex byte slice
// the pipeline hands them.
func ReadFloat32(data []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[offset : offset+4]))
}

// ReadVec3 reads three consecutive float32 fields starting at offset.
func ReadVec3(data []byte, offset int) raster.Vec3 {
	return raster.Vec3{
		ReadFloat32(data, offset),
		ReadFloat32(data, offset+4),
		ReadFloat32(data, offset+8),
	}
}

// ReadVec2 reads two consecutive float32 fields starting at offset.
func ReadVec2(data []byte, offset int) raster.Vec2 {
	return raster.Vec2{ReadFloat32(data, offset), ReadFloat32(data, offset+4)}
}

// PassthroughVertexShader reads a 3-float position at the start of the
// vertex and passes the remaining bytes through as attributes untouched
// (reinterpreted as float32s), with no MVP transform. Useful for
// screen-space rendering and tests.
func PassthroughVertexShader(_ uint32, data []byte, _ any) (raster.Vec4, []float32) {
	pos := ReadVec3(data, 0)
	var attrs []float32
	for off := 12; off+4 <= len(data); off += 4 {
		attrs = append(attrs, ReadFloat32(data, off))
	}
	return raster.Vec4{pos[0], pos[1], pos[2], 1}, attrs
}

// WhiteFragmentShader writes opaque white to every color attachment.
func WhiteFragmentShader(_ []float32, _ raster.IVec2, _ float32, output []raster.Vec4, _ any) {
	for i := range output {
		output[i] = raster.Vec4{1, 1, 1, 1}
	}
}

// DepthFragmentShader writes the fragment's own depth as a grayscale color,
// useful for visualizing a depth attachment.
func DepthFragmentShader(_ []float32, _ raster.IVec2, depth float32, output []raster.Vec4, _ any) {
	for i := range output {
		output[i] = raster.Vec4{depth, depth, depth, 1}
	}
}

// BarycentricFragmentShader expects attrs to hold the triangle's three
// barycentric weights (for example from per-vertex attributes (1,0,0),
// (0,1,0) and (0,0,1)) and colors the fragment by them directly; useful
// for visualizing rasterizer coverage.
func BarycentricFragmentShader(attrs []float32, _ raster.IVec2, _ float32, output []raster.Vec4, _ any) {
	if len(attrs) < 3 {
		return
	}
	for i := range output {
		output[i] = raster.Vec4{attrs[0], attrs[1], attrs[2], 1}
	}
}
