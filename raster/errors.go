package raster

import "errors"

// ErrVertexCountNotMultipleOfThree is returned by Draw/DrawIndexed when
// count is not a multiple of three; every draw call operates on whole
// triangles.
var ErrVertexCountNotMultipleOfThree = errors.New("raster: vertex count is not a multiple of three")
