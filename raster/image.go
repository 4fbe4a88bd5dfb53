package raster

import "math"

// Image is a 2D pixel buffer in a single Format. Every format is 4 bytes per
// texel, so the backing store is always width*height*4 bytes.
type Image struct {
	width  int
	height int
	format Format
	data   []byte
}

// NewImage allocates an Image of the given dimensions and format. A
// zero-sized Image (width or height 0) is valid and allocates no backing
// store.
func NewImage(width, height int, format Format) *Image {
	img := &Image{}
	img.Resize(width, height, format)
	return img
}

// Resize reallocates the image to the given dimensions and format,
// discarding any previous contents.
func (img *Image) Resize(width, height int, format Format) {
	img.width = width
	img.height = height
	img.format = format
	if width <= 0 || height <= 0 {
		img.data = nil
		return
	}
	img.data = make([]byte, width*height*format.TexelSize())
}

// Destroy releases the image's backing store. The image may be reused by
// calling Resize again.
func (img *Image) Destroy() {
	img.width = 0
	img.height = 0
	img.data = nil
}

// IsCreated reports whether the image currently owns a non-empty backing
// store.
func (img *Image) IsCreated() bool {
	return len(img.data) > 0
}

// Width returns the image's width in texels.
func (img *Image) Width() int { return img.width }

// Height returns the image's height in texels.
func (img *Image) Height() int { return img.height }

// Format returns the image's texel format.
func (img *Image) Format() Format { return img.format }

// MappedBytes exposes the image's raw backing store for direct I/O (e.g.
// blitting to a window surface).
func (img *Image) MappedBytes() []byte { return img.data }

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

func (img *Image) texelOffset(x, y int) int {
	return (y*img.width + x) * img.format.TexelSize()
}

// GetColor returns the color stored at (x, y). Reads outside the image
// bounds return the zero color rather than panicking.
func (img *Image) GetColor(x, y int) Vec4 {
	if !img.inBounds(x, y) {
		return Vec4{}
	}
	off := img.texelOffset(x, y)
	return DecodeColor(img.format, img.data[off:off+img.format.TexelSize()])
}

// SetColor writes color at (x, y). Writes outside the image bounds are
// silently ignored.
func (img *Image) SetColor(x, y int, color Vec4) {
	if !img.inBounds(x, y) {
		return
	}
	off := img.texelOffset(x, y)
	EncodeColor(img.format, img.data[off:off+img.format.TexelSize()], color)
}

// GetDepth returns the depth value stored at (x, y). Reads outside the
// image bounds return NaN so they always fail a depth test.
func (img *Image) GetDepth(x, y int) float32 {
	if !img.inBounds(x, y) {
		return float32(math.NaN())
	}
	off := img.texelOffset(x, y)
	return DecodeDepth(img.format, img.data[off:off+img.format.TexelSize()])
}

// SetDepth writes depth at (x, y). Writes outside the image bounds are
// silently ignored.
func (img *Image) SetDepth(x, y int, depth float32) {
	if !img.inBounds(x, y) {
		return
	}
	off := img.texelOffset(x, y)
	EncodeDepth(img.format, img.data[off:off+img.format.TexelSize()], depth)
}
