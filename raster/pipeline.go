package raster

// Topology selects between the two rasterization modes a Pipeline can
// drive a draw call through.
type Topology uint8

const (
	// TopologyFill rasterizes each triangle's interior with the
	// edge-function / barycentric algorithm.
	TopologyFill Topology = iota

	// TopologyLine rasterizes only each triangle's three edges, using a
	// Bresenham-style line walk.
	TopologyLine
)

// State is the caller-supplied, read-only-during-a-draw configuration of a
// single draw call.
type State struct {
	Topology        Topology
	DepthTestEnable bool
	Viewport        Viewport
	CullSide        CullSide
	CullOrder       CullOrder
}

// VertexShaderFunc decodes the vertex at index from the raw vertex buffer
// (vertexData is only that vertex's bytes: the Pipeline slices the buffer
// at index*stride for the configured stride) and returns its clip-space
// position and an attribute record to be carried through clipping and
// interpolation.
// shaderData is the same value passed into Draw/DrawIndexed, forwarded
// unexamined.
type VertexShaderFunc func(index uint32, vertexData []byte, shaderData any) (position Vec4, attributes []float32)

// FragmentShaderFunc computes the outputs for one fragment. attrs is the
// perspective-correct interpolated attribute record, pixel is the
// fragment's integer screen position, depth is its interpolated depth, and
// output is pre-sized to the framebuffer's color attachment count — the
// shader's only product is writing into it. shaderData is forwarded
// unexamined from Draw/DrawIndexed.
type FragmentShaderFunc func(attrs []float32, pixel IVec2, depth float32, output []Vec4, shaderData any)

// Pipeline orchestrates every fixed-function stage of a draw call: vertex
// shading, clipping, perspective divide, viewport transform, back-face
// culling, rasterization, fragment shading, depth testing, and attachment
// writes. A Pipeline owns the vertex stride and the two shader callables
// for its lifetime and is reused across many draw calls.
type Pipeline struct {
	vertexStride   int
	vertexShader   VertexShaderFunc
	fragmentShader FragmentShaderFunc
}

// NewPipeline creates a Pipeline reading vertexStride bytes per input
// vertex and dispatching to vs and fs for vertex and fragment shading.
func NewPipeline(vertexStride int, vs VertexShaderFunc, fs FragmentShaderFunc) *Pipeline {
	return &Pipeline{vertexStride: vertexStride, vertexShader: vs, fragmentShader: fs}
}

// Draw rasterizes count/3 triangles built from vertices i, i+1, i+2 for
// i = 0, 3, 6, ... < count, reading each vertex directly by index.
func (p *Pipeline) Draw(fb *Framebuffer, vertexData []byte, count int, state State, shaderData any) error {
	return p.draw(fb, vertexData, nil, count, state, shaderData)
}

// DrawIndexed is like Draw but reads vertex index i of the triangle from
// indexData[i] instead of using the triangle's position in the stream
// directly.
func (p *Pipeline) DrawIndexed(fb *Framebuffer, vertexData []byte, indexData []uint32, count int, state State, shaderData any) error {
	return p.draw(fb, vertexData, indexData, count, state, shaderData)
}

func (p *Pipeline) draw(fb *Framebuffer, vertexData []byte, indexData []uint32, count int, state State, shaderData any) error {
	if count%3 != 0 {
		Logger().Warn("raster: draw call count is not a multiple of three", "count", count)
		return ErrVertexCountNotMultipleOfThree
	}

	colorCount := fb.ColorAttachmentCount()
	output := make([]Vec4, colorCount)

	for base := 0; base < count; base += 3 {
		var idx [3]uint32
		if indexData != nil {
			idx[0], idx[1], idx[2] = indexData[base], indexData[base+1], indexData[base+2]
		} else {
			idx[0], idx[1], idx[2] = uint32(base), uint32(base+1), uint32(base+2)
		}

		var poly Polygon
		for i := 0; i < 3; i++ {
			offset := int(idx[i]) * p.vertexStride
			pos, attrs := p.vertexShader(idx[i], vertexData[offset:offset+p.vertexStride], shaderData)
			poly.Vertices[i] = Vertex{Position: pos, Attributes: attrs}
		}

		clipped := ClipTriangle(poly, nil)
		for _, tri := range clipped {
			p.drawClippedTriangle(fb, tri, state, output, shaderData)
		}
	}
	return nil
}

func perspectiveDivide(v Vertex) Vertex {
	invW := 1.0 / v.Position[3]
	out := Vertex{
		Position: Vec4{v.Position[0] * invW, v.Position[1] * invW, v.Position[2] * invW, invW},
	}
	if len(v.Attributes) > 0 {
		out.Attributes = make([]float32, len(v.Attributes))
		for i, a := range v.Attributes {
			out.Attributes[i] = a * invW
		}
	}
	return out
}

func viewportTransform(v Vertex, vp Viewport) Vertex {
	halfW := float32(vp.Width) / 2
	halfH := float32(vp.Height) / 2
	x := (v.Position[0]+1)*halfW + float32(vp.X)
	y := (1-v.Position[1])*halfH + float32(vp.Y)
	z := v.Position[2]*(vp.MaxDepth-vp.MinDepth) + vp.MinDepth
	return Vertex{Position: Vec4{x, y, z, v.Position[3]}, Attributes: v.Attributes}
}

func (p *Pipeline) drawClippedTriangle(fb *Framebuffer, tri Polygon, state State, output []Vec4, shaderData any) {
	v0 := viewportTransform(perspectiveDivide(tri.Vertices[0]), state.Viewport)
	v1 := viewportTransform(perspectiveDivide(tri.Vertices[1]), state.Viewport)
	v2 := viewportTransform(perspectiveDivide(tri.Vertices[2]), state.Viewport)

	if shouldCull(state.CullSide, state.CullOrder, v0.Position, v1.Position, v2.Position) {
		return
	}

	depthImg := fb.Depth()
	depthTestEnable := state.DepthTestEnable && depthImg != nil

	emit := func(frag Fragment) {
		testZ := frag.Depth
		if depthTestEnable {
			refZ := depthImg.GetDepth(frag.X, frag.Y)
			if !depthTestPasses(CompareGreaterEqual, refZ, testZ) {
				return
			}
		}

		attrs := frag.Attributes

		for i := range output {
			output[i] = Vec4{}
		}
		p.fragmentShader(attrs, IVec2{frag.X, frag.Y}, frag.Depth, output, shaderData)

		for i := 0; i < fb.ColorAttachmentCount(); i++ {
			if img := fb.Color(i); img != nil {
				img.SetColor(frag.X, frag.Y, output[i])
			}
		}
		if depthImg != nil {
			depthImg.SetDepth(frag.X, frag.Y, testZ)
		}
	}

	switch state.Topology {
	case TopologyLine:
		RasterizeLine(v0, v1, v2, state.Viewport, emit)
	default:
		RasterizeFill(v0, v1, v2, state.Viewport, emit)
	}
}
