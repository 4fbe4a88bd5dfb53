package raster

import "testing"

// triangleA and triangleB are screen-space triangles of opposite winding in
// the Y-down pixel convention. triangleA has negative signedScreenArea;
// triangleB is the same triangle with v1/v2 swapped, giving positive
// signedScreenArea. Per the reference culling_evaluation formula, a
// CullBack+CounterClockwise state treats positive-area triangles as front
// (kept) and negative-area triangles as back (culled).
func triangleA() (Vec4, Vec4, Vec4) {
	return Vec4{0, 0, 0, 1}, Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}
}

func triangleB() (Vec4, Vec4, Vec4) {
	v0, v1, v2 := triangleA()
	return v0, v2, v1
}

func TestSignedScreenAreaSign(t *testing.T) {
	v0, v1, v2 := triangleA()
	if got := signedScreenArea(v0, v1, v2); got >= 0 {
		t.Errorf("signedScreenArea(triangleA) = %v, want negative (spec.md formula convention)", got)
	}

	v0, v1, v2 = triangleB()
	if got := signedScreenArea(v0, v1, v2); got <= 0 {
		t.Errorf("signedScreenArea(triangleB) = %v, want positive", got)
	}
}

func TestShouldCullCullNoneNeverCulls(t *testing.T) {
	v0, v1, v2 := triangleA()
	if shouldCull(CullNone, CounterClockwise, v0, v1, v2) {
		t.Error("CullNone must never cull")
	}
	if shouldCull(CullNone, ClockWise, v0, v1, v2) {
		t.Error("CullNone must never cull")
	}
}

func TestShouldCullBackDiscardsOppositeWinding(t *testing.T) {
	a0, a1, a2 := triangleA()
	b0, b1, b2 := triangleB()

	// With order=CounterClockwise, positive-area (triangleB) is front and
	// survives CullBack; negative-area (triangleA) is back and is culled.
	if shouldCull(CullBack, CounterClockwise, b0, b1, b2) {
		t.Error("front-facing (positive-area) triangle should not be culled by CullBack with order=CounterClockwise")
	}
	if !shouldCull(CullBack, CounterClockwise, a0, a1, a2) {
		t.Error("back-facing (negative-area) triangle should be culled by CullBack with order=CounterClockwise")
	}
}

func TestShouldCullFrontDiscardsSameWinding(t *testing.T) {
	a0, a1, a2 := triangleA()
	b0, b1, b2 := triangleB()

	if !shouldCull(CullFront, CounterClockwise, b0, b1, b2) {
		t.Error("front-facing (positive-area) triangle should be culled by CullFront with order=CounterClockwise")
	}
	if shouldCull(CullFront, CounterClockwise, a0, a1, a2) {
		t.Error("back-facing (negative-area) triangle should not be culled by CullFront with order=CounterClockwise")
	}
}

// TestCullOrderFlipInvariant: flipping CullOrder toggles which winding is
// culled for a fixed triangle and CullSide, unless CullSide is CullNone or
// the triangle has zero signed area.
func TestCullOrderFlipInvariant(t *testing.T) {
	v0, v1, v2 := triangleA()

	culledOrderCCW := shouldCull(CullBack, CounterClockwise, v0, v1, v2)
	culledOrderCW := shouldCull(CullBack, ClockWise, v0, v1, v2)
	if culledOrderCCW == culledOrderCW {
		t.Error("flipping CullOrder must flip the CullBack decision for a non-degenerate triangle")
	}
}

func TestShouldCullDegenerateTriangleNeverCulled(t *testing.T) {
	v0 := Vec4{0, 0, 0, 1}
	v1 := Vec4{1, 0, 0, 1}
	v2 := Vec4{2, 0, 0, 1} // collinear with v0, v1: zero signed area
	if shouldCull(CullBack, CounterClockwise, v0, v1, v2) {
		t.Error("degenerate (zero-area) triangle must never be culled here")
	}
	if shouldCull(CullFront, CounterClockwise, v0, v1, v2) {
		t.Error("degenerate (zero-area) triangle must never be culled here")
	}
}
