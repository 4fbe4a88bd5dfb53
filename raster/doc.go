// Package raster implements a software graphics pipeline: vertex shading,
// homogeneous-clip-space clipping, perspective divide, viewport transform,
// back-face culling, line and filled-triangle rasterization, depth testing,
// and multi-attachment writes, driven entirely on the calling goroutine.
package raster
