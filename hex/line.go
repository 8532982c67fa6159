package hex

import "math"

// FracCube is a real-valued point in cube space, produced by interpolation
// and pixel conversion before rounding back onto the lattice.
type FracCube struct {
	Q float64
	R float64
	S float64
}

// Round snaps a fractional cube coordinate to the nearest hex: round each
// component, then recompute the one with the largest rounding error from
// the other two so the coordinates sum to zero again.
func (f FracCube) Round() Cube {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube{Q: int(q), R: int(r), S: int(s)}
}

// lerp interpolates between two fractional cubes at parameter t.
func lerp(a, b FracCube, t float64) FracCube {
	return FracCube{
		Q: a.Q + (b.Q-a.Q)*t,
		R: a.R + (b.R-a.R)*t,
		S: a.S + (b.S-a.S)*t,
	}
}

// nudge pushes a lattice point slightly off the cell boundary so that line
// samples never round ambiguously. Both endpoints of a line get the same
// nudge, which keeps Line(a,b) the exact reverse of Line(b,a).
func nudge(c Cube) FracCube {
	return FracCube{
		Q: float64(c.Q) + 1e-6,
		R: float64(c.R) + 1e-6,
		S: float64(c.S) - 2e-6,
	}
}

// Line returns the hexes on the discrete line from a to b inclusive:
// Distance(a,b)+1 hexes, sampled by interpolating in cube space and
// rounding each sample. Panics if either endpoint is invalid.
func Line(a, b Cube) []Cube {
	mustBeValid(a)
	mustBeValid(b)
	n := Distance(a, b)
	if n == 0 {
		return []Cube{a}
	}
	af := nudge(a)
	bf := nudge(b)
	out := make([]Cube, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, lerp(af, bf, float64(i)/float64(n)).Round())
	}
	return out
}

func mustBeValid(c Cube) {
	if err := c.Check(); err != nil {
		panic(err.Error())
	}
}
