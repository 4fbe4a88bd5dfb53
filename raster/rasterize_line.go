package raster

// edgeIndices lists the three directed edges of a triangle in the fixed
// order the line rasterizer walks them: (0,1), (1,2), (2,0).
var edgeIndices = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// RasterizeLine draws the three edges of the screen-space triangle
// v0, v1, v2 using a Bresenham-style major/minor-axis walk. Each step's
// depth, inv_w, and attributes are computed as base + step*i (never
// incremented in place, to avoid floating-point drift), and the
// depth-test/attachment write cycle is identical to RasterizeFill's.
func RasterizeLine(v0, v1, v2 Vertex, viewport Viewport, callback FragmentCallback) {
	verts := [3]Vertex{v0, v1, v2}
	for _, edge := range edgeIndices {
		rasterizeEdge(verts[edge[0]], verts[edge[1]], viewport, callback)
	}
}

func rasterizeEdge(a, b Vertex, viewport Viewport, callback FragmentCallback) {
	startX, startY := int(a.Position[0]), int(a.Position[1])
	endX, endY := int(b.Position[0]), int(b.Position[1])

	dx := endX - startX
	if dx < 0 {
		dx = -dx
	}
	dy := endY - startY
	if dy < 0 {
		dy = -dy
	}

	major := maxInt(dx, dy)
	if major == 0 {
		emitLinePixel(startX, startY, a, a, 0, viewport, callback)
		return
	}

	for i := 0; i <= major; i++ {
		t := float32(i) / float32(major)
		x := startX + int(float32(endX-startX)*t)
		y := startY + int(float32(endY-startY)*t)
		emitLinePixel(x, y, a, b, t, viewport, callback)
	}
}

func emitLinePixel(x, y int, a, b Vertex, t float32, viewport Viewport, callback FragmentCallback) {
	if x < viewport.X || x >= viewport.X+viewport.Width || y < viewport.Y || y >= viewport.Y+viewport.Height {
		return
	}

	depth := a.Position[2] + (b.Position[2]-a.Position[2])*t
	invW := a.Position[3] + (b.Position[3]-a.Position[3])*t

	var attrs []float32
	if n := len(a.Attributes); n > 0 {
		attrs = make([]float32, n)
		trueW := float32(0)
		if invW != 0 {
			trueW = 1 / invW
		}
		for i := range attrs {
			stepped := a.Attributes[i] + (b.Attributes[i]-a.Attributes[i])*t
			attrs[i] = stepped * trueW
		}
	}

	callback(Fragment{
		X:          x,
		Y:          y,
		Depth:      depth,
		Bary:       [3]float32{1 - t, t, 0},
		Attributes: attrs,
	})
}
