//go:build !tinygo && cgo

// Command demo loads a Wavefront OBJ mesh and renders it with the software
// rasterizer, presenting each frame through a GLFW window. It exists to
// exercise wavefront, raster, shader, gltex, and display together; none of
// the core packages depend on it.
package main

import (
	"encoding/binary"
	"flag"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/softraster/display"
	"github.com/gogpu/softraster/raster"
	"github.com/gogpu/softraster/shader"
	"github.com/gogpu/softraster/wavefront"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	objPath := flag.String("obj", "", "path to a Wavefront .obj file")
	flag.Parse()
	if *objPath == "" {
		log.Fatal("usage: demo -obj path/to/mesh.obj")
	}

	mesh, err := wavefront.ParseOBJ(*objPath)
	if err != nil {
		log.Fatalf("parse obj: %v", err)
	}
	data := mesh.CreateData()
	if len(data.Indices) == 0 {
		log.Fatal("mesh has no triangles")
	}

	vertexData := encodeVertices(data.Vertices)

	win, err := display.New(display.Config{Title: "softraster demo", Width: windowWidth, Height: windowHeight})
	if err != nil {
		log.Fatalf("open window: %v", err)
	}
	defer win.Close()

	color := raster.NewImage(windowWidth, windowHeight, raster.RGBA32Packed)
	depth := raster.NewImage(windowWidth, windowHeight, raster.DepthFormat)
	fb := raster.NewFramebuffer([]*raster.Image{color}, depth)

	pipe := raster.NewPipeline(wavefront.VertexLayout*4, shader.NormalShadingVertexShader, shader.NormalShadingFragmentShader)

	uniforms := &shader.NormalShadingUniforms{
		LightDir:   normalize(raster.Vec3{-0.4, -0.6, -0.7}),
		BaseColor:  raster.Vec4{0.8, 0.8, 0.85, 1},
		AmbientMin: 0.15,
	}

	view := shader.Mat4LookAt(raster.Vec3{0, 1.5, 4}, raster.Vec3{0, 0, 0}, raster.Vec3{0, 1, 0})
	proj := shader.Mat4Perspective(float32(math.Pi)/4, float32(windowWidth)/float32(windowHeight), 0.1, 100)

	state := raster.State{
		Topology:        raster.TopologyFill,
		DepthTestEnable: true,
		Viewport:        raster.Viewport{Width: windowWidth, Height: windowHeight, MinDepth: 0, MaxDepth: 1},
		CullSide:        raster.CullBack,
		CullOrder:       raster.CounterClockwise,
	}

	angle := float32(0)
	for !win.ShouldClose() {
		if win.KeyPressed(glfw.KeyEscape) {
			win.RequestClose()
		}

		angle += 0.01
		model := shader.Mat4Mul(shader.Mat4Translate(0, 0, 0), rotateY(angle))
		uniforms.MVP = shader.Mat4Mul(proj, shader.Mat4Mul(view, model))

		fb.ClearColor(raster.ClearValue{Color: raster.Vec4{0.05, 0.05, 0.08, 1}}, 0)
		fb.ClearDepth(1)

		if err := pipe.DrawIndexed(fb, vertexData, data.Indices, len(data.Indices), state, uniforms); err != nil {
			log.Fatalf("draw: %v", err)
		}

		if err := win.PresentFrame(color); err != nil {
			log.Fatalf("present: %v", err)
		}
	}
}

func encodeVertices(floats []float32) []byte {
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	return buf
}

func normalize(v raster.Vec3) raster.Vec3 {
	mag := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if mag == 0 {
		return v
	}
	inv := float32(1 / sqrt32(mag))
	return v.Scale(inv)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func rotateY(theta float32) [16]float32 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	return [16]float32{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}
