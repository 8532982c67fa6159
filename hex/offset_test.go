package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSchemes = []Scheme{OddR, EvenR, OddQ, EvenQ}

func TestOffsetRoundTrip(t *testing.T) {
	for _, scheme := range allSchemes {
		t.Run(scheme.String(), func(t *testing.T) {
			for q := -8; q <= 8; q++ {
				for r := -8; r <= 8; r++ {
					c := Axial{Q: q, R: r}.ToCube()
					o := c.ToOffset(scheme)
					require.Equal(t, scheme, o.Scheme)
					require.Equal(t, c, o.ToCube(), "round trip through %v for %v", scheme, c)
				}
			}
		})
	}
}

func TestOffsetKnownValues(t *testing.T) {
	// One row up from the origin shifts columns differently per scheme.
	c := Cube{Q: 0, R: 1, S: -1}
	assert.Equal(t, Offset{Col: 0, Row: 1, Scheme: OddR}, c.ToOffset(OddR))
	assert.Equal(t, Offset{Col: 1, Row: 1, Scheme: EvenR}, c.ToOffset(EvenR))
	assert.Equal(t, Offset{Col: 0, Row: 1, Scheme: OddQ}, c.ToOffset(OddQ))
	assert.Equal(t, Offset{Col: 0, Row: 1, Scheme: EvenQ}, c.ToOffset(EvenQ))

	d := Cube{Q: 1, R: 1, S: -2}
	assert.Equal(t, Offset{Col: 1, Row: 1, Scheme: OddR}, d.ToOffset(OddR))
	assert.Equal(t, Offset{Col: 2, Row: 1, Scheme: EvenR}, d.ToOffset(EvenR))
	assert.Equal(t, Offset{Col: 1, Row: 1, Scheme: OddQ}, d.ToOffset(OddQ))
	assert.Equal(t, Offset{Col: 1, Row: 2, Scheme: EvenQ}, d.ToOffset(EvenQ))
}

func TestOffsetDistanceDelegates(t *testing.T) {
	for _, scheme := range allSchemes {
		a := Offset{Col: -3, Row: 2, Scheme: scheme}
		b := Offset{Col: 1, Row: -4, Scheme: scheme}
		assert.Equal(t, Distance(a.ToCube(), b.ToCube()), a.Distance(b), "scheme %v", scheme)
	}
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "odd-r", OddR.String())
	assert.Equal(t, "even-r", EvenR.String())
	assert.Equal(t, "odd-q", OddQ.String())
	assert.Equal(t, "even-q", EvenQ.String())
}
