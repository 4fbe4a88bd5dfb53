package raster

// Vec2 is a two-component float32 vector, ordered X, Y.
type Vec2 [2]float32

// Vec3 is a three-component float32 vector, ordered X, Y, Z.
type Vec3 [3]float32

// Vec4 is a four-component float32 vector, ordered X, Y, Z, W. Clip space
// positions and colors are represented as Vec4.
type Vec4 [4]float32

// IVec2 is a two-component int vector used for rasterizer pixel positions.
type IVec2 [2]int

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns the component-wise difference of v and o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Add returns the component-wise sum of v and o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns the component-wise difference of v and o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Scale returns v with every component multiplied by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Lerp returns a + (b-a)*t.
func (v Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{
		v[0] + (b[0]-v[0])*t,
		v[1] + (b[1]-v[1])*t,
		v[2] + (b[2]-v[2])*t,
		v[3] + (b[3]-v[3])*t,
	}
}

// CompareFunc specifies the comparison function used by the depth test.
type CompareFunc uint8

const (
	// CompareNever always fails the test.
	CompareNever CompareFunc = iota

	// CompareLess passes if source < destination.
	CompareLess

	// CompareEqual passes if source == destination.
	CompareEqual

	// CompareLessEqual passes if source <= destination.
	CompareLessEqual

	// CompareGreater passes if source > destination.
	CompareGreater

	// CompareNotEqual passes if source != destination.
	CompareNotEqual

	// CompareGreaterEqual passes if destination >= source, so it passes in
	// the same cases as CompareLessEqual. This is the pipeline's default: a
	// fragment passes when the reference depth already stored in the
	// attachment is farther from the viewer than (or equal to) its own depth.
	CompareGreaterEqual

	// CompareAlways always passes the test.
	CompareAlways
)

// CullSide specifies which triangle winding to discard.
type CullSide uint8

const (
	// CullNone disables face culling; every triangle is rasterized.
	CullNone CullSide = iota

	// CullBack discards back-facing triangles.
	CullBack

	// CullFront discards front-facing triangles.
	CullFront
)

// CullOrder specifies which screen-space winding order is considered front.
type CullOrder uint8

const (
	// CounterClockwise treats counter-clockwise winding as front-facing.
	CounterClockwise CullOrder = iota

	// ClockWise treats clockwise winding as front-facing.
	ClockWise
)

func min2(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min3(a, b, c float32) float32 {
	return min2(min2(a, b), c)
}

func max3(a, b, c float32) float32 {
	return max2(max2(a, b), c)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
