// Package wavefront parses Wavefront OBJ meshes and MTL material libraries
// into a form the raster package can draw directly: ParseOBJ/ParseMTL
// produce a Mesh/MaterialLib, and Mesh.CreateData flattens the mesh into a
// single deduplicated, interleaved vertex buffer plus per-part index
// ranges.
package wavefront
