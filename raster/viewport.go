package raster

// Viewport maps normalized device coordinates to a pixel rectangle within
// the framebuffer, and remaps the depth range.
type Viewport struct {
	X, Y          int
	Width, Height int
	MinDepth      float32
	MaxDepth      float32
}
