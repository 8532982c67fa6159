package hex

// Scheme selects an offset coordinate parity scheme. Offset columns and
// rows only mean something relative to a scheme, so every Offset value
// carries one; mixing values from different schemes is a caller bug the
// type system cannot catch.
type Scheme int

const (
	OddR Scheme = iota
	EvenR
	OddQ
	EvenQ
)

func (s Scheme) String() string {
	switch s {
	case OddR:
		return "odd-r"
	case EvenR:
		return "even-r"
	case OddQ:
		return "odd-q"
	case EvenQ:
		return "even-q"
	}
	return "unknown"
}

// Offset represents rectangular col/row coordinates under a parity scheme.
type Offset struct {
	Col    int
	Row    int
	Scheme Scheme
}

// ToOffset converts cube coordinates to the given offset scheme.
func (c Cube) ToOffset(s Scheme) Offset {
	var col, row int
	switch s {
	case OddR:
		col = c.Q + (c.R-(c.R&1))/2
		row = c.R
	case EvenR:
		col = c.Q + (c.R+(c.R&1))/2
		row = c.R
	case OddQ:
		col = c.Q
		row = c.R + (c.Q-(c.Q&1))/2
	case EvenQ:
		col = c.Q
		row = c.R + (c.Q+(c.Q&1))/2
	}
	return Offset{Col: col, Row: row, Scheme: s}
}

// ToCube converts an offset coordinate back to cube. Exact inverse of
// Cube.ToOffset for every integer (col, row) under the same scheme.
func (o Offset) ToCube() Cube {
	var q, r int
	switch o.Scheme {
	case OddR:
		q = o.Col - (o.Row-(o.Row&1))/2
		r = o.Row
	case EvenR:
		q = o.Col - (o.Row+(o.Row&1))/2
		r = o.Row
	case OddQ:
		q = o.Col
		r = o.Row - (o.Col-(o.Col&1))/2
	case EvenQ:
		q = o.Col
		r = o.Row - (o.Col+(o.Col&1))/2
	}
	return Cube{Q: q, R: r, S: -q - r}
}

// Distance returns the hex distance between two offset coordinates.
// Both values must use the same scheme.
func (o Offset) Distance(b Offset) int {
	return Distance(o.ToCube(), b.ToCube())
}
