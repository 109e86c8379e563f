// Package frame runs the fixed-rate render loop.
package frame

import (
	"image/color"
	"time"

	"wirecube/internal/canvas"
	"wirecube/internal/config"
)

// EventSource drains pending window events without blocking.
type EventSource interface {
	// PollQuit consumes every pending event and reports whether any of
	// them asked to quit.
	PollQuit() bool
}

// Clock is a monotonic clock with a blocking sleep.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// Scene is what a demo draws. Update advances it by a fixed dt in seconds;
// Draw renders it onto an already cleared frame.
type Scene interface {
	Update(dt float64)
	Draw(c canvas.Canvas)
}

type State int

const (
	Running State = iota
	QuitRequested
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case QuitRequested:
		return "quit requested"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Loop paces a scene at the configured frame rate. It borrows the event
// source, clock and canvas from the host and never releases them.
type Loop struct {
	events EventSource
	clock  Clock
	canvas canvas.Canvas

	budget     time.Duration
	dt         float64
	background color.RGBA

	state  State
	frames uint64
}

func New(cfg config.Config, events EventSource, clock Clock, c canvas.Canvas) *Loop {
	return &Loop{
		events:     events,
		clock:      clock,
		canvas:     c,
		budget:     cfg.FrameBudget(),
		dt:         cfg.Timestep(),
		background: cfg.Background,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run renders frames until a quit event has been seen, then returns the
// number of frames presented. The frame during which quit is observed is
// still drawn and paced.
//
// Every frame advances the scene by exactly 1/FPS seconds whatever the real
// frame time was; slow frames are not caught up and fast ones sleep out the
// rest of the budget.
func (l *Loop) Run(scene Scene) uint64 {
	for l.state != Stopped {
		start := l.clock.Now()

		if l.events.PollQuit() {
			l.state = QuitRequested
		}

		scene.Update(l.dt)

		l.canvas.SetDrawColor(l.background)
		l.canvas.Clear()
		scene.Draw(l.canvas)
		l.canvas.Present()
		l.frames++

		if elapsed := l.clock.Now() - start; elapsed < l.budget {
			l.clock.Sleep(l.budget - elapsed)
		}

		if l.state == QuitRequested {
			l.state = Stopped
		}
	}
	return l.frames
}
