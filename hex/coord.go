// Package hex implements coordinates and geometry for hexagonal grids:
// cube, axial and offset coordinate families, hex arithmetic, distances,
// neighbor and range enumeration, line drawing, and hex<->pixel mapping.
//
// Cube coordinates are the canonical representation; axial and offset
// values are views converted to cube before any real work happens.
package hex

import "fmt"

// Cube represents cube coordinates (q, r, s) with the invariant q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// Axial represents axial coordinates (q, r); the third cube component is
// implicitly -q-r.
type Axial struct {
	Q int
	R int
}

// Set is a set of cube coordinates, used for obstacle and cell sets.
type Set map[Cube]bool

// NewSet builds a Set from the given coordinates.
func NewSet(cs ...Cube) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = true
	}
	return s
}

// Valid reports whether the components sum to zero.
func (c Cube) Valid() bool { return c.Q+c.R+c.S == 0 }

// Check returns an error describing the coordinate if it is invalid.
func (c Cube) Check() error {
	if !c.Valid() {
		return fmt.Errorf("hex: invalid cube coordinate (%d,%d,%d): components must sum to zero", c.Q, c.R, c.S)
	}
	return nil
}

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube { return Cube{Q: a.Q, R: a.R, S: -a.Q - a.R} }

// ToAxial converts cube to axial by dropping the redundant component.
func (c Cube) ToAxial() Axial { return Axial{Q: c.Q, R: c.R} }

// Add returns c+o componentwise.
func (c Cube) Add(o Cube) Cube { return Cube{c.Q + o.Q, c.R + o.R, c.S + o.S} }

// Sub returns c-o componentwise.
func (c Cube) Sub(o Cube) Cube { return Cube{c.Q - o.Q, c.R - o.R, c.S - o.S} }

// Scale returns c scaled by the integer factor k.
func (c Cube) Scale(k int) Cube { return Cube{c.Q * k, c.R * k, c.S * k} }

// RotateLeft rotates c 60 degrees counter-clockwise around the origin.
func (c Cube) RotateLeft() Cube { return Cube{-c.S, -c.Q, -c.R} }

// RotateRight rotates c 60 degrees clockwise around the origin. It is the
// exact inverse of RotateLeft.
func (c Cube) RotateRight() Cube { return Cube{-c.R, -c.S, -c.Q} }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Distance returns the hex distance between two cube coordinates.
func Distance(a, b Cube) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// Distance returns the hex distance between two axial coordinates.
func (a Axial) Distance(b Axial) int {
	return Distance(a.ToCube(), b.ToCube())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
