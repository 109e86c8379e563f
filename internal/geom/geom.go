// Package geom holds the coordinate pipeline of the renderer: model space
// points, the rigid transforms applied to them, the perspective divide and the
// mapping from projection space to viewport pixels.
package geom

import "math"

// Point3 is a point in model/world space.
type Point3 struct {
	X, Y, Z float64
}

// ProjPoint is a point in projection space, after the perspective divide.
// It is nominally in [-1, 1] on each axis before aspect correction.
type ProjPoint struct {
	X, Y float64
}

// ScreenPoint is a point in pixel coordinates, origin top-left, +Y down.
type ScreenPoint struct {
	X, Y float64
}

// RotateY rotates p around the Y axis by angle radians.
func RotateY(p Point3, angle float64) Point3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3{
		X: p.X*cos - p.Z*sin,
		Y: p.Y,
		Z: p.X*sin + p.Z*cos,
	}
}

// TranslateZ moves p along the Z axis by dz.
func TranslateZ(p Point3, dz float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: p.Z + dz}
}

// Project divides x and y by z, with the eye at the origin looking down +Z
// and a focal length of 1.
//
// p.Z must not be zero. Callers keep geometry in front of the eye; a zero
// or negative depth yields Inf/NaN or mirrored coordinates which are drawn
// as-is.
func Project(p Point3) ProjPoint {
	return ProjPoint{X: p.X / p.Z, Y: p.Y / p.Z}
}

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width, Height float64
}

// Aspect returns Width/Height.
func (v Viewport) Aspect() float64 {
	return v.Width / v.Height
}

// ToScreen maps a projection space point to pixels. X maps [-1, 1] onto
// [0, Width]; Y is scaled by the aspect ratio and flipped so that +Y points
// up on screen. Points outside the unit square land outside the viewport.
func (v Viewport) ToScreen(p ProjPoint) ScreenPoint {
	return ScreenPoint{
		X: (p.X + 1) / 2 * v.Width,
		Y: (1 - (p.Y*v.Aspect()+1)/2) * v.Height,
	}
}
