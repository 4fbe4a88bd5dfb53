package raster

import "math/bits"

// clipEpsilon is the single-precision machine epsilon used by the +W plane
// test, keeping the perspective divide finite instead of dividing by zero.
const clipEpsilon = float32(1.1920929e-7)

// ClipPlane identifies one of the seven half-spaces of homogeneous clip
// space a triangle is clipped against, in the fixed order +W, +X, -X, +Y,
// -Y, +Z, -Z.
type ClipPlane uint8

const (
	PlanePositiveW ClipPlane = iota
	PlanePositiveX
	PlaneNegativeX
	PlanePositiveY
	PlaneNegativeY
	PlanePositiveZ
	PlaneNegativeZ

	planeCount
)

// ClipPlanes lists every plane in the fixed processing order mandated by
// the clipping algorithm.
var ClipPlanes = [planeCount]ClipPlane{
	PlanePositiveW, PlanePositiveX, PlaneNegativeX,
	PlanePositiveY, PlaneNegativeY, PlanePositiveZ, PlaneNegativeZ,
}

// IsOutside reports whether vertex (in homogeneous clip space) lies outside
// plane.
func (p ClipPlane) IsOutside(vertex Vec4) bool {
	x, y, z, w := vertex[0], vertex[1], vertex[2], vertex[3]
	switch p {
	case PlanePositiveW:
		return w < clipEpsilon
	case PlanePositiveX:
		return x > w
	case PlaneNegativeX:
		return x < -w
	case PlanePositiveY:
		return y > w
	case PlaneNegativeY:
		return y < -w
	case PlanePositiveZ:
		return z > w
	case PlaneNegativeZ:
		return z < -w
	default:
		return true
	}
}

// lerpFactor computes the closed-form intersection parameter t such that
// Lerp(start, end, t) lies exactly on plane.
func (p ClipPlane) lerpFactor(start, end Vec4) float32 {
	sx, sy, sz, sw := start[0], start[1], start[2], start[3]
	ex, ey, ez, ew := end[0], end[1], end[2], end[3]
	switch p {
	case PlanePositiveW:
		return (clipEpsilon - sw) / (ew - sw)
	case PlanePositiveX:
		return (sx - sw) / ((ew - sw) - (ex - sx))
	case PlaneNegativeX:
		return -(sw + sx) / ((ex - sx) + (ew - sw))
	case PlanePositiveY:
		return (sy - sw) / ((ew - sw) - (ey - sy))
	case PlaneNegativeY:
		return -(sw + sy) / ((ey - sy) + (ew - sw))
	case PlanePositiveZ:
		return (sz - sw) / ((ew - sw) - (ez - sz))
	case PlaneNegativeZ:
		return -(sw + sz) / ((ez - sz) + (ew - sw))
	default:
		return 0
	}
}

// Vertex pairs a homogeneous clip-space position with an interpolatable
// attribute record. Attributes must all be the same length within a single
// Polygon.
type Vertex struct {
	Position   Vec4
	Attributes []float32
}

func lerpAttributes(a, b []float32, t float32) []float32 {
	if len(a) == 0 {
		return nil
	}
	out := make([]float32, len(a))
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

// LerpVertex returns the vertex at parameter t along the segment a -> b,
// linearly interpolating both position and attributes.
func LerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Position:   a.Position.Lerp(b.Position, t),
		Attributes: lerpAttributes(a.Attributes, b.Attributes, t),
	}
}

// ClipResult classifies the outcome of clipping a Polygon against a single
// plane.
type ClipResult uint8

const (
	// ClipInside means every vertex is inside the plane; the polygon is
	// unchanged.
	ClipInside ClipResult = iota

	// ClipOutside means every vertex is outside the plane; the polygon is
	// entirely discarded.
	ClipOutside

	// ClipOne means the plane cut off two vertices, leaving a single
	// triangle in Output[0].
	ClipOne

	// ClipTwo means the plane cut off one vertex, leaving a quadrilateral
	// split into two triangles, Output[0] and Output[1].
	ClipTwo
)

// Polygon is a 3-vertex triangle carried through the clipping recursion.
type Polygon struct {
	Vertices [3]Vertex
}

// ClipAgainstPlane clips p against plane using the Sutherland-Hodgman
// variant described for triangles: the 3-bit outside mask selects one of
// four cases (all-in, all-out, one-out, two-out) and the surviving
// triangle(s) are written into out[0] (and out[1] for the two-triangle
// case).
func (p Polygon) ClipAgainstPlane(plane ClipPlane, out *[2]Polygon) ClipResult {
	var outsideMask uint8
	for i := 0; i < 3; i++ {
		if plane.IsOutside(p.Vertices[i].Position) {
			outsideMask |= 1 << uint(i)
		}
	}

	switch bits.OnesCount8(outsideMask) {
	case 0:
		return ClipInside
	case 3:
		return ClipOutside
	case 2:
		var targetIdx, prevIdx, postIdx int
		switch {
		case outsideMask&(1<<0) == 0:
			targetIdx, prevIdx, postIdx = 0, 2, 1
		case outsideMask&(1<<1) == 0:
			targetIdx, prevIdx, postIdx = 1, 0, 2
		default:
			targetIdx, prevIdx, postIdx = 2, 1, 0
		}

		target := p.Vertices[targetIdx]
		prevT := plane.lerpFactor(p.Vertices[prevIdx].Position, target.Position)
		postT := plane.lerpFactor(p.Vertices[postIdx].Position, target.Position)

		out[0].Vertices[0] = LerpVertex(p.Vertices[prevIdx], target, prevT)
		out[0].Vertices[1] = target
		out[0].Vertices[2] = LerpVertex(p.Vertices[postIdx], target, postT)

		return ClipOne
	default:
		var targetIdx, prevIdx, postIdx int
		switch {
		case outsideMask&(1<<0) != 0:
			targetIdx, prevIdx, postIdx = 0, 2, 1
		case outsideMask&(1<<1) != 0:
			targetIdx, prevIdx, postIdx = 1, 0, 2
		default:
			targetIdx, prevIdx, postIdx = 2, 1, 0
		}

		target := p.Vertices[targetIdx]
		prev := p.Vertices[prevIdx]
		post := p.Vertices[postIdx]

		prevT := plane.lerpFactor(target.Position, prev.Position)
		postT := plane.lerpFactor(target.Position, post.Position)

		out[0].Vertices[0] = prev
		out[0].Vertices[1] = LerpVertex(target, prev, prevT)
		out[0].Vertices[2] = post

		out[1].Vertices[0] = post
		out[1].Vertices[1] = out[0].Vertices[1]
		out[1].Vertices[2] = LerpVertex(target, post, postT)

		return ClipTwo
	}
}

// ClipTriangle recursively clips p against every plane in ClipPlanes and
// appends every surviving triangle to dst. Each recursive call carries the
// index of the next plane to process, so no branch re-clips against a plane
// it already survived.
func ClipTriangle(p Polygon, dst []Polygon) []Polygon {
	return clipRecursive(p, 0, dst)
}

func clipRecursive(p Polygon, planeIdx int, dst []Polygon) []Polygon {
	if planeIdx >= int(planeCount) {
		return append(dst, p)
	}

	plane := ClipPlanes[planeIdx]
	var out [2]Polygon
	switch p.ClipAgainstPlane(plane, &out) {
	case ClipOutside:
		return dst
	case ClipInside:
		return clipRecursive(p, planeIdx+1, dst)
	case ClipOne:
		return clipRecursive(out[0], planeIdx+1, dst)
	case ClipTwo:
		dst = clipRecursive(out[0], planeIdx+1, dst)
		dst = clipRecursive(out[1], planeIdx+1, dst)
		return dst
	default:
		return dst
	}
}
