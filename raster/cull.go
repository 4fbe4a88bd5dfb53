package raster

// signedScreenArea returns twice the signed area of the screen-space
// triangle v0, v1, v2, computed as
// (v2.x-v0.x)(v1.y-v0.y) - (v2.y-v0.y)(v1.x-v0.x), matching the reference's
// culling_evaluation operand order exactly. Positive values indicate
// counter-clockwise winding (in a Y-down pixel coordinate system), negative
// values clockwise.
func signedScreenArea(v0, v1, v2 Vec4) float32 {
	e1x, e1y := v1[0]-v0[0], v1[1]-v0[1]
	e2x, e2y := v2[0]-v0[0], v2[1]-v0[1]
	return e2x*e1y - e2y*e1x
}

// shouldCull reports whether the screen-space triangle should be discarded
// for the given cull side and winding convention. A zero-area (degenerate)
// triangle is never culled here; the fill rasterizer produces no fragments
// for it, while the line rasterizer still draws its edges.
func shouldCull(side CullSide, order CullOrder, v0, v1, v2 Vec4) bool {
	if side == CullNone {
		return false
	}

	area := signedScreenArea(v0, v1, v2)
	if area == 0 {
		return false
	}

	isFrontCCW := order == CounterClockwise
	isCCW := area > 0

	isFront := isCCW == isFrontCCW
	switch side {
	case CullBack:
		return !isFront
	case CullFront:
		return isFront
	default:
		return false
	}
}
