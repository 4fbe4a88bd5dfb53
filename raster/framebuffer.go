package raster

// ClearValue carries a color and a depth clear value side by side; it has
// no tag field. ClearColor uses Depth for a color attachment whose Format is
// DepthFormat and Color for every other attachment. ClearDepth does not
// take a ClearValue.
type ClearValue struct {
	Color Vec4
	Depth float32
}

// Framebuffer binds an ordered set of non-owning color attachments and an
// optional depth attachment. Attachment images are not copied; the caller
// retains ownership and must keep them alive and correctly sized for the
// lifetime of the Framebuffer.
type Framebuffer struct {
	colorImages []*Image
	depthImage  *Image
}

// NewFramebuffer binds colorImages and depthImage (which may be nil) into a
// Framebuffer.
func NewFramebuffer(colorImages []*Image, depthImage *Image) *Framebuffer {
	fb := &Framebuffer{depthImage: depthImage}
	if len(colorImages) > 0 {
		fb.colorImages = append([]*Image(nil), colorImages...)
	}
	return fb
}

// Destroy unbinds every attachment. The underlying images are untouched.
func (fb *Framebuffer) Destroy() {
	fb.colorImages = nil
	fb.depthImage = nil
}

// IsCreated reports whether the framebuffer has at least one color
// attachment, or no depth attachment bound at all (matching the reference:
// a framebuffer with zero color attachments and no depth attachment is
// considered "created" since there is nothing to be inconsistent about).
func (fb *Framebuffer) IsCreated() bool {
	return len(fb.colorImages) > 0 || fb.depthImage == nil
}

// ColorAttachmentCount returns the number of bound color attachments.
func (fb *Framebuffer) ColorAttachmentCount() int {
	return len(fb.colorImages)
}

// ClearColor clears the color attachment at index using value. If the
// attachment's format is DepthFormat, value.Depth is used instead of
// value.Color, matching the per-format dispatch in the reference.
func (fb *Framebuffer) ClearColor(value ClearValue, index int) {
	if index < 0 || index >= len(fb.colorImages) {
		return
	}
	img := fb.colorImages[index]
	if img == nil {
		return
	}

	if img.Format() == DepthFormat {
		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				img.SetDepth(x, y, value.Depth)
			}
		}
		return
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			img.SetColor(x, y, value.Color)
		}
	}
}

// ClearDepth clears the bound depth attachment to value. It is a no-op if
// no depth attachment is bound.
func (fb *Framebuffer) ClearDepth(value float32) {
	if fb.depthImage == nil {
		return
	}
	img := fb.depthImage
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			img.SetDepth(x, y, value)
		}
	}
}

// Color returns the color attachment at index, or nil if index is out of
// range.
func (fb *Framebuffer) Color(index int) *Image {
	if index < 0 || index >= len(fb.colorImages) {
		return nil
	}
	return fb.colorImages[index]
}

// Depth returns the bound depth attachment, or nil if none is bound.
func (fb *Framebuffer) Depth() *Image {
	return fb.depthImage
}
