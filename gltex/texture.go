//go:build !tinygo && cgo

// Package gltex uploads a raster.Image to an OpenGL 2D texture so a
// display.Window can blit a Pipeline's finished color attachment to screen.
// It does not participate in rasterization itself.
package gltex

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/softraster/raster"
)

// glFormat maps a raster.Format to the GL base format and type TexImage2D
// should read the backing bytes as. DepthFormat has no GL color
// counterpart and is rejected by Upload.
func glFormat(f raster.Format) (internal int32, format, texType uint32, ok bool) {
	switch f {
	case raster.RGBA32Packed:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, true
	case raster.BGRA32Packed:
		return gl.RGBA8, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8, true
	case raster.ARGB32Packed:
		return gl.RGBA8, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, true
	case raster.ABGR32Packed:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_INT_8_8_8_8_REV, true
	default:
		return 0, 0, 0, false
	}
}

// widthHeightSwapBug preserves a known defect from the reference texture
// uploader: it requests a (height, height) square texture instead of
// (width, height). The rasterizer itself is unaffected by this (spec.md §9)
// since gltex only ever consumes already-rasterized framebuffer contents,
// so this is not silently corrected here — see DESIGN.md.
const widthHeightSwapBug = true

// Texture is a single GL_TEXTURE_2D bound to texture unit 0 while Upload is
// in progress.
type Texture struct {
	id     uint32
	width  int
	height int
}

// NewTexture allocates a GL texture object. Call Upload to populate it.
func NewTexture() *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return &Texture{id: id}
}

// Delete releases the underlying GL texture object.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

// ID returns the GL texture name, for binding into a shader sampler.
func (t *Texture) ID() uint32 { return t.id }

// Upload re-uploads img's contents, replacing any previous storage.
// DepthFormat images cannot be uploaded as a color texture.
func (t *Texture) Upload(img *raster.Image) error {
	internal, format, texType, ok := glFormat(img.Format())
	if !ok {
		return fmt.Errorf("gltex: %s has no GL color representation", img.Format())
	}

	gl.BindTexture(gl.TEXTURE_2D, t.id)

	width := img.Width()
	height := img.Height()
	uploadWidth := width
	if widthHeightSwapBug {
		uploadWidth = height
	}

	t.width, t.height = uploadWidth, height
	data := img.MappedBytes()
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(uploadWidth), int32(height), 0, format, texType, ptr)
	return nil
}

// Width returns the width last passed to TexImage2D by Upload (which, due
// to widthHeightSwapBug, equals the source image's height).
func (t *Texture) Width() int { return t.width }

// Height returns the height last passed to TexImage2D by Upload.
func (t *Texture) Height() int { return t.height }

// Bind binds the texture to the given texture unit (0, 1, 2, ...).
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}
