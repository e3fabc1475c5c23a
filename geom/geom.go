// Package geom provides the 2D vector and segment primitives used by the
// pedestrian model.
package geom

import "math"

// Eps is the threshold below which lengths, speeds and determinants are
// treated as zero.
const Eps = 1e-9

// Vec is a 2D vector (or point).
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// NormSq returns the squared length of v.
func (v Vec) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Norm returns the length of v.
func (v Vec) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the direction of v,
// or the zero vector if v is shorter than Eps.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n < Eps {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// Angle returns the direction of v in radians, in [-Pi, Pi].
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar returns the vector with the given direction and length.
func Polar(angle, length float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{X: length * cos, Y: length * sin}
}

// NormalizeAngle wraps an angle to [-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Gaussian evaluates a normalized Gaussian kernel of width sigma at x.
func Gaussian(x, sigma float64) float64 {
	if sigma < Eps {
		return 0
	}
	return math.Exp(-x*x/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

// MinimumImage maps a displacement onto the nearest torus image for a
// periodic domain of the given width and height. Each component of the
// result lies in [-w/2, w/2] resp. [-h/2, h/2].
func MinimumImage(d Vec, w, h float64) Vec {
	if w > 0 {
		for d.X > w/2 {
			d.X -= w
		}
		for d.X < -w/2 {
			d.X += w
		}
	}
	if h > 0 {
		for d.Y > h/2 {
			d.Y -= h
		}
		for d.Y < -h/2 {
			d.Y += h
		}
	}
	return d
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec
}

// NewRect returns the rectangle spanning (x0,y0)-(x1,y1).
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Vec{X: x0, Y: y0}, Max: Vec{X: x1, Y: y1}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Area returns the area of r.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Contains reports whether p lies inside r (inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Wrap maps p back into r component-wise, treating r as a torus.
func (r Rect) Wrap(p Vec) Vec {
	w, h := r.Width(), r.Height()
	if w > 0 {
		for p.X < r.Min.X {
			p.X += w
		}
		for p.X >= r.Max.X {
			p.X -= w
		}
	}
	if h > 0 {
		for p.Y < r.Min.Y {
			p.Y += h
		}
		for p.Y >= r.Max.Y {
			p.Y -= h
		}
	}
	return p
}

// DistToSegment returns the distance from p to the segment a-b and the
// closest point on the segment.
func DistToSegment(p, a, b Vec) (float64, Vec) {
	ab := b.Sub(a)
	lenSq := ab.NormSq()
	if lenSq < Eps*Eps {
		return p.Sub(a).Norm(), a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).Norm(), closest
}
