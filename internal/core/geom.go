// Package core provides fundamental types and utilities for brickball.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or direction in world space. Z is carried through the
// simulation but the field is planar, so it stays zero in practice.
type Vec struct {
	X, Y, Z float64
}

// V returns a planar vector.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Reflect mirrors v about the plane with unit normal n: v - 2(v·n)n.
// n must already be unit length; the result keeps |v|.
func (v Vec) Reflect(n Vec) Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Box is an axis-aligned box in world space, stored by center and half extents.
type Box struct {
	Center Vec
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered at c with the given full width and height.
func NewBox(c Vec, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.Center.X - b.HalfW }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.Center.X + b.HalfW }

// MinY returns the bottom edge.
func (b Box) MinY() float64 { return b.Center.Y - b.HalfH }

// MaxY returns the top edge.
func (b Box) MaxY() float64 { return b.Center.Y + b.HalfH }

// CircleContact tests a circle against the box.
// On overlap it returns the unit normal pointing from the box toward the
// circle center. A center inside the box resolves to the nearest face.
func (b Box) CircleContact(center Vec, radius float64) (Vec, bool) {
	cx := ClampF(center.X, b.MinX(), b.MaxX())
	cy := ClampF(center.Y, b.MinY(), b.MaxY())
	d := V(center.X-cx, center.Y-cy)
	dist2 := d.X*d.X + d.Y*d.Y
	if dist2 > radius*radius {
		return Vec{}, false
	}
	if dist2 > 0 {
		return d.Normalize(), true
	}

	// Center is inside: push out through the closest face
	left := center.X - b.MinX()
	right := b.MaxX() - center.X
	bottom := center.Y - b.MinY()
	top := b.MaxY() - center.Y
	n := V(-1, 0)
	best := left
	if right < best {
		best, n = right, V(1, 0)
	}
	if bottom < best {
		best, n = bottom, V(0, -1)
	}
	if top < best {
		n = V(0, 1)
	}
	return n, true
}

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp moves from a toward b by t, with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*ClampF(t, 0, 1)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
