// Package glhost shows a software framebuffer in a GLFW window. Every
// primitive is rasterised on the CPU; OpenGL only uploads the finished frame
// as a texture and draws it over the whole window.
package glhost

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"wirecube/internal/canvas"
	"wirecube/internal/config"
	"wirecube/internal/host"
)

// Host implements host.Host. The calling goroutine must be locked to the
// main OS thread.
type Host struct {
	*canvas.Framebuffer

	window *glfw.Window
	title  string
	width  int32
	height int32

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	frameCount  int
	lastFpsTime float64

	rel releaser
}

var _ host.Host = (*Host)(nil)

// Open initialises GLFW, opens a fixed size window and sets up the blit
// pipeline. On failure everything acquired so far is released and the
// error wraps host.ErrInit, host.ErrWindow or host.ErrRenderer.
func Open(cfg config.Config) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %v", host.ErrInit, err)
	}
	var rel releaser
	rel.push(glfw.Terminate)

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		rel.release()
		return nil, fmt.Errorf("%w: %v", host.ErrWindow, err)
	}
	rel.push(window.Destroy)
	window.MakeContextCurrent()
	// the render loop paces frames itself
	glfw.SwapInterval(0)

	h := &Host{
		Framebuffer: canvas.NewFramebuffer(cfg.Width, cfg.Height),
		window:      window,
		title:       cfg.Title,
		width:       int32(cfg.Width),
		height:      int32(cfg.Height),
		rel:         rel,
	}
	if err := h.initRenderer(); err != nil {
		h.rel.release()
		return nil, fmt.Errorf("%w: %v", host.ErrRenderer, err)
	}
	h.lastFpsTime = glfw.GetTime()
	return h, nil
}

func (h *Host) initRenderer() error {
	if err := gl.Init(); err != nil {
		return err
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	h.program = program
	h.rel.push(func() { gl.DeleteProgram(h.program) })
	gl.UseProgram(program)

	// pixel coordinates, origin top-left, matching the framebuffer rows
	proj := mgl32.Ortho2D(0, float32(h.width), float32(h.height), 0)
	projUniform := gl.GetUniformLocation(program, gl.Str("proj\x00"))
	gl.UniformMatrix4fv(projUniform, 1, false, &proj[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	w, ht := float32(h.width), float32(h.height)
	quad := []float32{
		// x, y, u, v
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, ht, 1, 1,
		0, 0, 0, 0,
		w, ht, 1, 1,
		0, ht, 0, 1,
	}

	gl.GenVertexArrays(1, &h.vao)
	h.rel.push(func() { gl.DeleteVertexArrays(1, &h.vao) })
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	h.rel.push(func() { gl.DeleteBuffers(1, &h.vbo) })
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointerWithOffset(posAttrib, 2, gl.FLOAT, false, 4*4, 0)

	uvAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vt\x00")))
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointerWithOffset(uvAttrib, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &h.tex)
	h.rel.push(func() { gl.DeleteTextures(1, &h.tex) })
	gl.BindTexture(gl.TEXTURE_2D, h.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, h.width, h.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Present uploads the framebuffer and swaps. Once a second the window
// title is updated with the measured frame rate.
func (h *Host) Present() {
	fbw, fbh := h.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	gl.UseProgram(h.program)
	gl.BindTexture(gl.TEXTURE_2D, h.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, h.width, h.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.Image().Pix))
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	h.window.SwapBuffers()

	h.frameCount++
	if now := glfw.GetTime(); now-h.lastFpsTime >= 1.0 {
		h.window.SetTitle(fmt.Sprintf("%s | FPS: %d", h.title, h.frameCount))
		h.frameCount = 0
		h.lastFpsTime = now
	}
}

// PollQuit processes pending events and reports whether the window was
// asked to close.
func (h *Host) PollQuit() bool {
	glfw.PollEvents()
	return h.window.ShouldClose()
}

// Now is GLFW's timer at millisecond resolution.
func (h *Host) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second)).Truncate(time.Millisecond)
}

func (h *Host) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Close deletes the GL objects, destroys the window and terminates GLFW,
// in reverse order of creation.
func (h *Host) Close() {
	h.rel.release()
}
