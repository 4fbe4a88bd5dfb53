package raster

import (
	"encoding/binary"
	"math"
	"testing"
)

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
}

// colorVertexShader reads (x, y, z, r, g, b) per vertex and outputs a
// clip-space position with w=1 and the color as the interpolated
// attribute.
func colorVertexShader(_ uint32, data []byte, _ any) (Vec4, []float32) {
	x := math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))
	z := math.Float32frombits(binary.LittleEndian.Uint32(data[8:12]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(data[12:16]))
	g := math.Float32frombits(binary.LittleEndian.Uint32(data[16:20]))
	b := math.Float32frombits(binary.LittleEndian.Uint32(data[20:24]))
	return Vec4{x, y, z, 1}, []float32{r, g, b}
}

func colorFragmentShader(attrs []float32, _ IVec2, _ float32, output []Vec4, _ any) {
	for i := range output {
		output[i] = Vec4{attrs[0], attrs[1], attrs[2], 1}
	}
}

func buildTriangleVertexData() []byte {
	verts := [][6]float32{
		{-0.5, -0.5, 0.5, 1, 0, 0},
		{0.5, -0.5, 0.5, 1, 0, 0},
		{0, 0.5, 0.5, 1, 0, 0},
	}
	buf := make([]byte, 0, len(verts)*24)
	for _, v := range verts {
		for _, f := range v {
			tmp := make([]byte, 4)
			putFloat32(tmp, 0, f)
			buf = append(buf, tmp...)
		}
	}
	return buf
}

func TestDrawRejectsNonMultipleOfThree(t *testing.T) {
	pipe := NewPipeline(24, colorVertexShader, colorFragmentShader)
	color := NewImage(4, 4, RGBA32Packed)
	fb := NewFramebuffer([]*Image{color}, nil)

	err := pipe.Draw(fb, buildTriangleVertexData(), 4, State{Viewport: Viewport{Width: 4, Height: 4}}, nil)
	if err == nil {
		t.Fatal("expected error for count not a multiple of three")
	}
}

func TestDrawLineScenario(t *testing.T) {
	pipe := NewPipeline(24, colorVertexShader, colorFragmentShader)
	color := NewImage(8, 8, RGBA32Packed)
	fb := NewFramebuffer([]*Image{color}, nil)
	fb.ClearColor(ClearValue{Color: Vec4{0, 0, 0, 1}}, 0)

	state := State{
		Topology: TopologyLine,
		Viewport: Viewport{Width: 8, Height: 8, MinDepth: 0, MaxDepth: 1},
	}
	if err := pipe.Draw(fb, buildTriangleVertexData(), 3, state, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	sawRed := false
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.GetColor(x, y)
			if c[0] > 0.5 && c[1] < 0.5 {
				sawRed = true
			}
		}
	}
	if !sawRed {
		t.Error("expected at least one red edge pixel")
	}
}

func TestDrawFillScenario(t *testing.T) {
	pipe := NewPipeline(24, colorVertexShader, colorFragmentShader)
	color := NewImage(8, 8, RGBA32Packed)
	fb := NewFramebuffer([]*Image{color}, nil)

	state := State{
		Topology: TopologyFill,
		Viewport: Viewport{Width: 8, Height: 8, MinDepth: 0, MaxDepth: 1},
	}
	if err := pipe.Draw(fb, buildTriangleVertexData(), 3, state, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	center := color.GetColor(4, 4)
	if center[0] < 0.5 {
		t.Errorf("expected red fill at center, got %v", center)
	}
}

func TestDepthTestRejectsFartherFragment(t *testing.T) {
	near := [][6]float32{
		{-1, -1, 0.3, 1, 0, 0},
		{1, -1, 0.3, 1, 0, 0},
		{-1, 1, 0.3, 1, 0, 0},
	}
	far := [][6]float32{
		{-1, -1, 0.7, 0, 1, 0},
		{1, -1, 0.7, 0, 1, 0},
		{-1, 1, 0.7, 0, 1, 0},
	}

	encode := func(verts [][6]float32) []byte {
		buf := make([]byte, 0, len(verts)*24)
		for _, v := range verts {
			for _, f := range v {
				tmp := make([]byte, 4)
				putFloat32(tmp, 0, f)
				buf = append(buf, tmp...)
			}
		}
		return buf
	}

	pipe := NewPipeline(24, colorVertexShader, colorFragmentShader)
	color := NewImage(4, 4, RGBA32Packed)
	depth := NewImage(4, 4, DepthFormat)
	fb := NewFramebuffer([]*Image{color}, depth)
	fb.ClearDepth(1)

	state := State{
		Topology:        TopologyFill,
		DepthTestEnable: true,
		Viewport:        Viewport{Width: 4, Height: 4, MinDepth: 0, MaxDepth: 1},
	}

	if err := pipe.Draw(fb, encode(near), 3, state, nil); err != nil {
		t.Fatalf("Draw near: %v", err)
	}
	if err := pipe.Draw(fb, encode(far), 3, state, nil); err != nil {
		t.Fatalf("Draw far: %v", err)
	}

	gotDepth := depth.GetDepth(2, 2)
	if gotDepth != 0.3 {
		t.Errorf("depth at overlap = %v, want 0.3 (nearer triangle should win)", gotDepth)
	}
	gotColor := color.GetColor(2, 2)
	if gotColor[0] < 0.5 {
		t.Errorf("color at overlap = %v, want from the first (red) triangle", gotColor)
	}
}

func TestFormatVariance(t *testing.T) {
	run := func(format Format) Vec4 {
		pipe := NewPipeline(24, colorVertexShader, colorFragmentShader)
		color := NewImage(4, 4, format)
		fb := NewFramebuffer([]*Image{color}, nil)
		state := State{Topology: TopologyFill, Viewport: Viewport{Width: 4, Height: 4, MinDepth: 0, MaxDepth: 1}}
		_ = pipe.Draw(fb, buildTriangleVertexData(), 3, state, nil)
		return color.GetColor(2, 2)
	}

	rgba := run(RGBA32Packed)
	bgra := run(BGRA32Packed)
	for i := 0; i < 4; i++ {
		if math.Abs(float64(rgba[i]-bgra[i])) > 1e-6 {
			t.Errorf("channel %d differs between formats: rgba=%v bgra=%v", i, rgba[i], bgra[i])
		}
	}
}
