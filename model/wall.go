package model

import (
	"fmt"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
)

// Wall is an immutable line-segment obstacle. Besides its endpoints it
// stores the unit-normalized implicit line equation a*x + b*y + c = 0,
// so (a, b) is the unit normal of the carrying line.
type Wall struct {
	P1, P2  geom.Vec
	A, B, C float64
	Normal  geom.Vec
}

// NewWall builds a wall from two endpoints. Coincident endpoints are a
// configuration error.
func NewWall(p1, p2 geom.Vec) (*Wall, error) {
	d := p2.Sub(p1)
	if d.Norm() < geom.Eps {
		return nil, fmt.Errorf("wall endpoints coincide at (%g, %g)", p1.X, p1.Y)
	}
	dir := d.Normalize()
	n := geom.Vec{X: -dir.Y, Y: dir.X}
	return &Wall{
		P1:     p1,
		P2:     p2,
		A:      n.X,
		B:      n.Y,
		C:      -n.Dot(p1),
		Normal: n,
	}, nil
}

// MustWall is NewWall for statically-known endpoints; it panics on a
// degenerate wall.
func MustWall(p1, p2 geom.Vec) *Wall {
	w, err := NewWall(p1, p2)
	if err != nil {
		panic(err)
	}
	return w
}

// SignedDistance returns the signed distance from p to the wall's carrying
// line. The sign tells which side of the wall p is on.
func (w *Wall) SignedDistance(p geom.Vec) float64 {
	return w.A*p.X + w.B*p.Y + w.C
}

// DistanceTo returns the distance from p to the wall segment and the
// closest point on the segment.
func (w *Wall) DistanceTo(p geom.Vec) (float64, geom.Vec) {
	return geom.DistToSegment(p, w.P1, w.P2)
}
