// Package shader provides callback-based shader implementations for the
// raster pipeline.
//
// Since the pipeline has no bytecode interpreter, vertex and fragment
// stages are plain Go functions that decode the raw vertex bytes (or
// interpolated attribute slice) themselves. This package collects a few
// reusable ones, plus the small matrix helpers a vertex shader typically
// needs to transform a position into clip space.
package shader
