// Package canvastest provides a Canvas that records the calls made on it.
package canvastest

import (
	"image/color"
)

// Op names a recorded call.
type Op int

const (
	OpSetDrawColor Op = iota
	OpClear
	OpFillRect
	OpLine
	OpPresent
)

func (o Op) String() string {
	switch o {
	case OpSetDrawColor:
		return "SetDrawColor"
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpLine:
		return "Line"
	case OpPresent:
		return "Present"
	}
	return "Op(?)"
}

// Call is one recorded call. Args holds the float arguments in order; Color
// is the colour current when the call was made.
type Call struct {
	Op    Op
	Args  []float64
	Color color.RGBA
}

// Recorder implements canvas.Canvas. OnPresent, when set, runs after each
// Present is recorded.
type Recorder struct {
	Calls     []Call
	OnPresent func()

	color color.RGBA
}

func (r *Recorder) SetDrawColor(c color.RGBA) {
	r.color = c
	r.Calls = append(r.Calls, Call{Op: OpSetDrawColor, Color: c})
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: r.color})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Args: []float64{x, y, w, h}, Color: r.color})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Args: []float64{x1, y1, x2, y2}, Color: r.color})
}

func (r *Recorder) Present() {
	r.Calls = append(r.Calls, Call{Op: OpPresent, Color: r.color})
	if r.OnPresent != nil {
		r.OnPresent()
	}
}

// Filter returns the recorded calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	return len(r.Filter(op))
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
