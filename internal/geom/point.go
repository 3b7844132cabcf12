// Package geom holds the 2D point and vector math used by the photon scene.
package geom

import "math"

// Point is a position or a displacement in canvas coordinates.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) LengthSquared() float64 { return p.Dot(p) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Angle returns the direction of p as a vector, in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Polar returns the unit vector pointing at angle a scaled by r.
func Polar(r, a float64) Point {
	return Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// Reflect mirrors v across the axis n: v - 2(v·n)n/|n|².
// n does not need to be unit length. A zero axis leaves v unchanged.
func Reflect(v, n Point) Point {
	l2 := n.LengthSquared()
	if l2 == 0 {
		return v
	}
	return v.Sub(n.Scale(2 * v.Dot(n) / l2))
}

// InRect reports whether p lies in [0,w]×[0,h].
func (p Point) InRect(w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
