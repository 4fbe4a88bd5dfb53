package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/softraster/raster"
)

// SolidColorUniforms is the shader-data record for SolidColorVertexShader /
// SolidColorFragmentShader.
type SolidColorUniforms struct {
	// MVP is the Model-View-Projection matrix in column-major order.
	MVP [16]float32

	// Color is the RGBA color every fragment is painted with.
	Color raster.Vec4
}

// SolidColorVertexShader reads a 3-float position from the front of the
// vertex, transforms it by uniforms.MVP, and carries uniforms.Color through
// as the interpolated attribute (a constant attribute interpolates to
// itself, so every fragment sees the same color).
func SolidColorVertexShader(_ uint32, data []byte, shaderData any) (raster.Vec4, []float32) {
	u := shaderData.(*SolidColorUniforms)
	pos := ReadVec3(data, 0)
	clip := Mat4MulVec4(u.MVP, raster.Vec4{pos[0], pos[1], pos[2], 1})
	return clip, append([]float32(nil), u.Color[:]...)
}

// SolidColorFragmentShader writes the interpolated color to every color
// attachment.
func SolidColorFragmentShader(attrs []float32, _ raster.IVec2, _ float32, output []raster.Vec4, _ any) {
	if len(attrs) < 4 {
		return
	}
	color := raster.Vec4{attrs[0], attrs[1], attrs[2], attrs[3]}
	for i := range output {
		output[i] = color
	}
}

// VertexColorUniforms is the shader-data record for
// VertexColorVertexShader / VertexColorFragmentShader.
type VertexColorUniforms struct {
	MVP [16]float32
}

// VertexColorVertexShader expects a vertex layout of
// (position xyz, color rgba) and passes the per-vertex color through as an
// interpolated attribute.
func VertexColorVertexShader(_ uint32, data []byte, shaderData any) (raster.Vec4, []float32) {
	u := shaderData.(*VertexColorUniforms)
	pos := ReadVec3(data, 0)
	clip := Mat4MulVec4(u.MVP, raster.Vec4{pos[0], pos[1], pos[2], 1})

	var attrs []float32
	if len(data) >= 12+16 {
		attrs = []float32{
			ReadFloat32(data, 12),
			ReadFloat32(data, 16),
			ReadFloat32(data, 20),
			ReadFloat32(data, 24),
		}
	}
	return clip, attrs
}

// VertexColorFragmentShader writes the interpolated vertex color to every
// color attachment.
func VertexColorFragmentShader(attrs []float32, _ raster.IVec2, _ float32, output []raster.Vec4, _ any) {
	if len(attrs) < 4 {
		return
	}
	color := raster.Vec4{attrs[0], attrs[1], attrs[2], attrs[3]}
	for i := range output {
		output[i] = color
	}
}

// NormalShadingUniforms is the shader-data record for
// NormalShadingVertexShader / NormalShadingFragmentShader, a simple
// directional-light shader used by cmd/demo to shade loaded meshes without
// texture sampling.
type NormalShadingUniforms struct {
	MVP        [16]float32
	LightDir   raster.Vec3
	BaseColor  raster.Vec4
	AmbientMin float32
}

// NormalShadingVertexShader expects a vertex layout of
// (position xyz, uv xy, normal xyz) — the layout wavefront.Mesh.CreateData
// produces — and carries the object-space normal through as the
// interpolated attribute.
func NormalShadingVertexShader(_ uint32, data []byte, shaderData any) (raster.Vec4, []float32) {
	u := shaderData.(*NormalShadingUniforms)
	pos := ReadVec3(data, 0)
	normal := ReadVec3(data, 20)
	clip := Mat4MulVec4(u.MVP, raster.Vec4{pos[0], pos[1], pos[2], 1})
	return clip, []float32{normal[0], normal[1], normal[2]}
}

// NormalShadingFragmentShader shades the fragment with a simple N.L
// Lambertian term against uniforms.LightDir, clamped to AmbientMin.
func NormalShadingFragmentShader(attrs []float32, _ raster.IVec2, _ float32, output []raster.Vec4, shaderData any) {
	u := shaderData.(*NormalShadingUniforms)
	if len(attrs) < 3 {
		return
	}
	n := raster.Vec3{attrs[0], attrs[1], attrs[2]}
	mag := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
	if mag > 0 {
		n = n.Scale(1 / math32.Sqrt(mag))
	}

	ndotl := n[0]*u.LightDir[0] + n[1]*u.LightDir[1] + n[2]*u.LightDir[2]
	if ndotl < 0 {
		ndotl = 0
	}
	intensity := u.AmbientMin + (1-u.AmbientMin)*ndotl

	color := raster.Vec4{
		u.BaseColor[0] * intensity,
		u.BaseColor[1] * intensity,
		u.BaseColor[2] * intensity,
		u.BaseColor[3],
	}
	for i := range output {
		output[i] = color
	}
}

// Mat4MulVec4 multiplies a column-major 4x4 matrix by a Vec4.
func Mat4MulVec4(m [16]float32, v raster.Vec4) raster.Vec4 {
	return raster.Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translate returns a translation matrix.
func Mat4Translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Mat4Scale returns a scaling matrix.
func Mat4Scale(x, y, z float32) [16]float32 {
	return [16]float32{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mat4Ortho returns an orthographic projection matrix for the given view
// volume.
func Mat4Ortho(left, right, bottom, top, near, far float32) [16]float32 {
	rml := right - left
	tmb := top - bottom
	fmn := far - near

	return [16]float32{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(right + left) / rml, -(top + bottom) / tmb, -(far + near) / fmn, 1,
	}
}

// Mat4Perspective returns a perspective projection matrix with a [0,1]
// depth range, matching the Z convention the pipeline assumes after the
// vertex shader.
func Mat4Perspective(fovYRadians, aspect, near, far float32) [16]float32 {
	f := 1 / math32.Tan(fovYRadians/2)
	nf := 1 / (near - far)
	return [16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * nf, -1,
		0, 0, far * near * nf, 0,
	}
}

// Mat4Mul multiplies two column-major 4x4 matrices, a*b.
func Mat4Mul(a, b [16]float32) [16]float32 {
	var result [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			result[col*4+row] = sum
		}
	}
	return result
}

// Mat4LookAt returns a right-handed view matrix.
func Mat4LookAt(eye, center, up raster.Vec3) [16]float32 {
	f := center.Sub(eye)
	f = f.Scale(1 / vec3Length(f))
	s := f.Cross(up)
	s = s.Scale(1 / vec3Length(s))
	u := s.Cross(f)

	return [16]float32{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot3(s, eye), -dot3(u, eye), dot3(f, eye), 1,
	}
}

func dot3(a, b raster.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func vec3Length(v raster.Vec3) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
