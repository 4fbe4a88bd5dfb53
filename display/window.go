//go:build !tinygo && cgo

// Package display owns a GLFW window surface and blits a raster.Image to
// it every frame via gltex. It exists purely as the external caller the
// rasterization core expects; nothing in raster or shader depends on it.
package display

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/softraster/gltex"
	"github.com/gogpu/softraster/raster"
)

// Config configures window creation.
type Config struct {
	Title         string
	Width, Height int
}

// Window owns a GLFW window, its GL context, and the texture used to blit
// rendered frames to it.
type Window struct {
	win *glfw.Window
	tex *gltex.Texture
	b   *blitter
}

// New creates and shows a window with an OpenGL 4.6 core-profile context
// current on the calling goroutine. Callers must call runtime.LockOSThread
// in their main function before calling New, matching GLFW's single-thread
// requirement.
func New(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: gl init: %w", err)
	}

	b, err := newBlitter()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	return &Window{win: win, tex: gltex.NewTexture(), b: b}, nil
}

// Close destroys the window and terminates GLFW. The Window must not be
// used afterward.
func (w *Window) Close() {
	w.b.delete()
	w.tex.Delete()
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose reports whether the user has requested the window close
// (e.g. clicked its close button).
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PresentFrame uploads frame to the window's texture, draws it full-screen,
// swaps buffers, and pumps the event queue.
func (w *Window) PresentFrame(frame *raster.Image) error {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := w.tex.Upload(frame); err != nil {
		return err
	}
	w.tex.Bind(0)
	w.b.draw(0)

	w.win.SwapBuffers()
	glfw.PollEvents()
	return nil
}

// KeyPressed reports whether key is currently held down.
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// RequestClose marks the window for closing on the next ShouldClose check.
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}
