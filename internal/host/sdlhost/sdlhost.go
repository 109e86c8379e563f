//go:build sdl

// Package sdlhost draws directly through an SDL2 accelerated renderer.
// Build with -tags sdl to use it instead of the GLFW host.
package sdlhost

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"wirecube/internal/config"
	"wirecube/internal/host"
)

type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// drawErr is the first error a primitive returned; later ones are
	// dropped so a broken renderer does not flood the log.
	drawErr error
}

var _ host.Host = (*Host)(nil)

// Open initialises SDL video, creates the window and its renderer. On
// failure everything acquired so far is released and the error wraps
// host.ErrInit, host.ErrWindow or host.ErrRenderer.
func Open(cfg config.Config) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: sdl: %v", host.ErrInit, err)
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", host.ErrWindow, err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", host.ErrRenderer, err)
	}

	return &Host{window: window, renderer: renderer}, nil
}

func (h *Host) check(op string, err error) {
	if err != nil && h.drawErr == nil {
		h.drawErr = fmt.Errorf("%s: %w", op, err)
		log.Println("sdl:", h.drawErr)
	}
}

func (h *Host) SetDrawColor(c color.RGBA) {
	h.check("set draw color", h.renderer.SetDrawColor(c.R, c.G, c.B, c.A))
}

func (h *Host) Clear() {
	h.check("clear", h.renderer.Clear())
}

func (h *Host) FillRect(x, y, w, ht float64) {
	h.check("fill rect", h.renderer.FillRectF(&sdl.FRect{
		X: float32(x), Y: float32(y), W: float32(w), H: float32(ht),
	}))
}

func (h *Host) Line(x1, y1, x2, y2 float64) {
	h.check("line", h.renderer.DrawLineF(float32(x1), float32(y1), float32(x2), float32(y2)))
}

func (h *Host) Present() {
	h.renderer.Present()
}

// PollQuit drains the event queue.
func (h *Host) PollQuit() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			quit = true
		}
	}
	return quit
}

func (h *Host) Now() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

// Sleep blocks in whole milliseconds, rounding down.
func (h *Host) Sleep(d time.Duration) {
	sdl.Delay(uint32(d / time.Millisecond))
}

func (h *Host) Close() {
	h.renderer.Destroy()
	h.window.Destroy()
	sdl.Quit()
}
