package hex

import (
	"fmt"
	"math"
)

// Point is a position in the rendering plane.
type Point struct {
	X float64
	Y float64
}

// Layout selects the hex orientation used for pixel conversion.
type Layout int

const (
	// Pointy is pointy-top orientation: hexes have a vertex at the top,
	// rows of constant r run horizontally.
	Pointy Layout = iota
	// Flat is flat-top orientation: hexes have an edge at the top,
	// columns of constant q run vertically.
	Flat
)

// orientation holds the forward (f) and inverse (b) basis matrices plus
// the first corner angle in multiples of 60 degrees.
type orientation struct {
	f0, f1, f2, f3 float64
	b0, b1, b2, b3 float64
	startAngle     float64
}

var orientations = [2]orientation{
	Pointy: {
		f0: math.Sqrt(3), f1: math.Sqrt(3) / 2, f2: 0, f3: 3.0 / 2,
		b0: math.Sqrt(3) / 3, b1: -1.0 / 3, b2: 0, b3: 2.0 / 3,
		startAngle: 0.5,
	},
	Flat: {
		f0: 3.0 / 2, f1: 0, f2: math.Sqrt(3) / 2, f3: math.Sqrt(3),
		b0: 2.0 / 3, b1: 0, b2: -1.0 / 3, b3: math.Sqrt(3) / 3,
		startAngle: 0,
	},
}

func (l Layout) orientation() orientation {
	if l != Pointy && l != Flat {
		panic(fmt.Sprintf("hex: unknown layout %d", l))
	}
	return orientations[l]
}

func mustBeSized(size float64) {
	if size <= 0 {
		panic(fmt.Sprintf("hex: non-positive hex size %v", size))
	}
}

// ToPixel returns the pixel center of a hex. size is the hex radius
// (center to corner); it must be positive, and the hex must be valid.
func ToPixel(c Cube, size float64, l Layout) Point {
	mustBeValid(c)
	mustBeSized(size)
	o := l.orientation()
	return Point{
		X: (o.f0*float64(c.Q) + o.f1*float64(c.R)) * size,
		Y: (o.f2*float64(c.Q) + o.f3*float64(c.R)) * size,
	}
}

// FromPixel returns the hex containing the given pixel point: the inverse
// basis transform followed by cube rounding.
func FromPixel(p Point, size float64, l Layout) Cube {
	mustBeSized(size)
	o := l.orientation()
	x := p.X / size
	y := p.Y / size
	q := o.b0*x + o.b1*y
	r := o.b2*x + o.b3*y
	return FracCube{Q: q, R: r, S: -q - r}.Round()
}

// Corners returns the six corner points of a hex in pixel space, starting
// at the layout's base angle and stepping 60 degrees per corner.
func Corners(c Cube, size float64, l Layout) [6]Point {
	center := ToPixel(c, size, l)
	o := l.orientation()
	var out [6]Point
	for i := 0; i < 6; i++ {
		angle := 2 * math.Pi * (o.startAngle + float64(i)) / 6
		out[i] = Point{
			X: center.X + size*math.Cos(angle),
			Y: center.Y + size*math.Sin(angle),
		}
	}
	return out
}
