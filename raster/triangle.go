package raster

import "math"

// Fragment is a candidate pixel produced by rasterizing a clipped triangle.
type Fragment struct {
	X, Y       int
	Depth      float32
	Bary       [3]float32
	Attributes []float32
}

// EdgeFunction is the linear equation Ax + By + C = 0 of a directed
// triangle edge. Points left of the directed edge evaluate positive.
type EdgeFunction struct {
	A, B, C float32
}

// NewEdgeFunction builds the edge function for the directed edge from
// (x0, y0) to (x1, y1).
func NewEdgeFunction(x0, y0, x1, y1 float32) EdgeFunction {
	return EdgeFunction{A: y0 - y1, B: x1 - x0, C: x0*y1 - x1*y0}
}

// Evaluate returns the signed value of (x, y) with respect to the edge.
func (e EdgeFunction) Evaluate(x, y float32) float32 {
	return e.A*x + e.B*y + e.C
}

// IsTopLeft reports whether the edge qualifies as "top" or "left" under the
// top-left fill rule, used to break ties on shared edges so adjacent
// triangles never double-draw or leave gaps along a shared edge.
func (e EdgeFunction) IsTopLeft() bool {
	if e.A > 0 {
		return true
	}
	return e.A == 0 && e.B < 0
}

// FragmentCallback is invoked once per generated fragment.
type FragmentCallback func(Fragment)

// RasterizeFill walks every pixel center covered by the screen-space
// triangle v0, v1, v2 (each Position is (x, y, depth, inv_w) and Attributes
// already perspective-divided, per the perspective-divide stage) and
// invokes callback with the perspective-correct interpolated fragment. It
// implements the edge-function / barycentric algorithm with the top-left
// fill rule, bounded by viewport.
func RasterizeFill(v0, v1, v2 Vertex, viewport Viewport, callback FragmentCallback) {
	x0, y0 := v0.Position[0], v0.Position[1]
	x1, y1 := v1.Position[0], v1.Position[1]
	x2, y2 := v2.Position[0], v2.Position[1]

	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	startX := maxInt(int(math.Floor(float64(minX))), viewport.X)
	endX := minInt(int(math.Ceil(float64(maxX))), viewport.X+viewport.Width)
	startY := maxInt(int(math.Floor(float64(minY))), viewport.Y)
	endY := minInt(int(math.Ceil(float64(maxY))), viewport.Y+viewport.Height)

	if startX >= endX || startY >= endY {
		return
	}

	e12 := NewEdgeFunction(x1, y1, x2, y2)
	e20 := NewEdgeFunction(x2, y2, x0, y0)
	e01 := NewEdgeFunction(x0, y0, x1, y1)

	area := e01.Evaluate(x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / area

	bias0, bias1, bias2 := float32(0), float32(0), float32(0)
	if !e12.IsTopLeft() {
		bias0 = -1e-6
	}
	if !e20.IsTopLeft() {
		bias1 = -1e-6
	}
	if !e01.IsTopLeft() {
		bias2 = -1e-6
	}

	attrCount := len(v0.Attributes)
	w0inv, w1inv, w2inv := v0.Position[3], v1.Position[3], v2.Position[3]
	z0, z1, z2 := v0.Position[2], v1.Position[2], v2.Position[2]

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			w0 := e12.Evaluate(px, py)
			w1 := e20.Evaluate(px, py)
			w2 := e01.Evaluate(px, py)

			if area > 0 {
				if w0 < bias0 || w1 < bias1 || w2 < bias2 {
					continue
				}
			} else {
				if w0 > -bias0 || w1 > -bias1 || w2 > -bias2 {
					continue
				}
				w0, w1, w2 = -w0, -w1, -w2
			}

			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea
			if area < 0 {
				b0, b1, b2 = -b0, -b1, -b2
			}

			depth := InterpolateDepth(z0, z1, z2, b0, b1, b2)

			var attrs []float32
			if attrCount > 0 {
				attrs = InterpolateAttributes(v0.Attributes, v1.Attributes, v2.Attributes, b0, b1, b2, w0inv, w1inv, w2inv, nil)
			}

			callback(Fragment{
				X:          x,
				Y:          y,
				Depth:      depth,
				Bary:       [3]float32{b0, b1, b2},
				Attributes: attrs,
			})
		}
	}
}
