package raster

// InterpolateFloat32 perspective-correctly interpolates a single float32
// attribute given per-vertex barycentric weights b0..b2 and the
// corresponding 1/w values w0..w2 carried from the perspective divide:
//
//	result = (v0*b0*w0 + v1*b1*w1 + v2*b2*w2) / (b0*w0 + b1*w1 + b2*w2)
func InterpolateFloat32(v0, v1, v2, b0, b1, b2, w0, w1, w2 float32) float32 {
	invW := b0*w0 + b1*w1 + b2*w2
	if invW == 0 {
		return v0*b0 + v1*b1 + v2*b2
	}
	return (v0*b0*w0 + v1*b1*w1 + v2*b2*w2) / invW
}

// InterpolateFloat32Linear interpolates without perspective correction.
func InterpolateFloat32Linear(v0, v1, v2, b0, b1, b2 float32) float32 {
	return v0*b0 + v1*b1 + v2*b2
}

// InterpolateAttributes perspective-correctly interpolates every element of
// three equal-length attribute slices, writing the result into dst. dst
// must have the same length as v0, v1, v2 (or be nil to allocate a new
// slice).
func InterpolateAttributes(v0, v1, v2 []float32, b0, b1, b2, w0, w1, w2 float32, dst []float32) []float32 {
	if len(v0) == 0 {
		return nil
	}
	if dst == nil {
		dst = make([]float32, len(v0))
	}
	invW := b0*w0 + b1*w1 + b2*w2
	if invW == 0 {
		for i := range dst {
			dst[i] = v0[i]*b0 + v1[i]*b1 + v2[i]*b2
		}
		return dst
	}
	for i := range dst {
		dst[i] = (v0[i]*b0*w0 + v1[i]*b1*w1 + v2[i]*b2*w2) / invW
	}
	return dst
}

// InterpolateDepth interpolates a depth value linearly across barycentric
// weights. Depth is already in screen space after the viewport transform,
// so it is not perspective-corrected a second time.
func InterpolateDepth(z0, z1, z2, b0, b1, b2 float32) float32 {
	return z0*b0 + z1*b1 + z2*b2
}
