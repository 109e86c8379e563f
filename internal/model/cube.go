// Package model defines the fixed wireframe geometry drawn by the demos.
package model

import (
	"fmt"

	"wirecube/internal/geom"
)

// Face is a closed loop of four vertex indices.
type Face [4]int

// Edge is a pair of vertex indices joined by a line.
type Edge [2]int

// Cube is an axis aligned cube centred at the origin.
type Cube struct {
	Vertices [8]geom.Point3
	Faces    [4]Face
}

// NewCube builds a cube with half-extent h.
//
// Vertices 0-3 lie on z=+h and 4-7 on z=-h, each quad wound the same way.
// The two remaining faces are the top (y=+h) and bottom (y=-h) bands, which
// supply the four edges joining the quads and repeat four edges already
// drawn by the quads.
func NewCube(h float64) Cube {
	return Cube{
		Vertices: [8]geom.Point3{
			{X: h, Y: h, Z: h},    // 0
			{X: -h, Y: h, Z: h},   // 1
			{X: -h, Y: -h, Z: h},  // 2
			{X: h, Y: -h, Z: h},   // 3
			{X: h, Y: h, Z: -h},   // 4
			{X: -h, Y: h, Z: -h},  // 5
			{X: -h, Y: -h, Z: -h}, // 6
			{X: h, Y: -h, Z: -h},  // 7
		},
		Faces: [4]Face{
			{0, 1, 2, 3}, // far
			{4, 5, 6, 7}, // near
			{0, 1, 5, 4}, // top
			{2, 3, 7, 6}, // bottom
		},
	}
}

// Edges lists the edges of every face in draw order, f[k] to f[(k+1)%4].
// Edges shared by two faces appear twice.
func (c Cube) Edges() []Edge {
	edges := make([]Edge, 0, len(c.Faces)*4)
	for _, f := range c.Faces {
		for k := range f {
			edges = append(edges, Edge{f[k], f[(k+1)%len(f)]})
		}
	}
	return edges
}

// Validate checks that every face index refers to a vertex.
func (c Cube) Validate() error {
	for i, f := range c.Faces {
		for _, v := range f {
			if v < 0 || v >= len(c.Vertices) {
				return fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, v, len(c.Vertices))
			}
		}
	}
	return nil
}
