// Package config carries the compiled-in parameters of a demo program.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"wirecube/internal/geom"
)

var (
	ErrBadViewport = errors.New("viewport must have positive size")
	ErrBadRate     = errors.New("frame rate must be in (0, 1000]")
	ErrBehindEye   = errors.New("z offset does not keep the model in front of the eye")
)

// Config is built once at startup and passed by value to everything that
// needs it.
type Config struct {
	Title  string
	Width  int
	Height int
	FPS    int

	HalfExtent      float64 // cube half-extent
	AngularVelocity float64 // rad/s around Y
	ZOffset         float64 // depth added after rotation
	PointSize       float64 // side of a drawn point in pixels

	Background color.RGBA
	Foreground color.RGBA
}

// Default returns the reference parameters.
func Default() Config {
	return Config{
		Title:           "Demo x'=x/z",
		Width:           800,
		Height:          600,
		FPS:             60,
		HalfExtent:      0.25,
		AngularVelocity: math.Pi / 2,
		ZOffset:         1.0,
		PointSize:       20,
		Background:      color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		Foreground:      color.RGBA{R: 0x50, G: 0xff, B: 0x50, A: 0xff},
	}
}

// FrameBudget is the wall-clock time one frame may take, truncated to whole
// milliseconds (16ms at 60 FPS).
func (c Config) FrameBudget() time.Duration {
	return time.Duration(1000/c.FPS) * time.Millisecond
}

// Timestep is the simulated time a single frame advances, in seconds.
func (c Config) Timestep() float64 {
	return 1 / float64(c.FPS)
}

func (c Config) Viewport() geom.Viewport {
	return geom.Viewport{Width: float64(c.Width), Height: float64(c.Height)}
}

// Validate rejects parameters the pipeline cannot draw. The cube's corners
// reach HalfExtent*√2 from the Y axis while rotating, so ZOffset has to
// exceed that for every projected depth to stay positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadViewport, c.Width, c.Height)
	}
	if c.FPS <= 0 || c.FPS > 1000 {
		return fmt.Errorf("%w: %d", ErrBadRate, c.FPS)
	}
	if c.ZOffset <= c.HalfExtent*math.Sqrt2 {
		return fmt.Errorf("%w: offset %g, half-extent %g", ErrBehindEye, c.ZOffset, c.HalfExtent)
	}
	return nil
}
