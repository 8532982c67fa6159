package hex

import "testing"

func TestLineEndpointsAndLength(t *testing.T) {
	region := Spiral(Cube{}, 4)
	for _, a := range region {
		for _, b := range region {
			line := Line(a, b)
			if want := Distance(a, b) + 1; len(line) != want {
				t.Fatalf("Line(%v,%v) has %d hexes, want %d", a, b, len(line), want)
			}
			if line[0] != a {
				t.Fatalf("Line(%v,%v) starts at %v", a, b, line[0])
			}
			if line[len(line)-1] != b {
				t.Fatalf("Line(%v,%v) ends at %v", a, b, line[len(line)-1])
			}
			for i, c := range line {
				if !c.Valid() {
					t.Fatalf("line hex %v is invalid", c)
				}
				if i > 0 && Distance(line[i-1], c) != 1 {
					t.Fatalf("line hexes %v and %v are not adjacent", line[i-1], c)
				}
			}
		}
	}
}

func TestLineReversal(t *testing.T) {
	region := Spiral(Cube{}, 4)
	for _, a := range region {
		for _, b := range region {
			fwd := Line(a, b)
			rev := Line(b, a)
			if len(fwd) != len(rev) {
				t.Fatalf("Line(%v,%v) and reverse differ in length", a, b)
			}
			for i := range fwd {
				if fwd[i] != rev[len(rev)-1-i] {
					t.Fatalf("Line(%v,%v) is not the reverse of Line(%v,%v): %v vs %v", a, b, b, a, fwd, rev)
				}
			}
		}
	}
}

func TestLineSingleHex(t *testing.T) {
	c := Cube{-3, 1, 2}
	line := Line(c, c)
	if len(line) != 1 || line[0] != c {
		t.Fatalf("Line(%v,%v) = %v", c, c, line)
	}
}

func TestLineInvalidEndpointPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid endpoint")
		}
	}()
	Line(Cube{1, 1, 1}, Cube{})
}

func TestFracRound(t *testing.T) {
	cases := []struct {
		in   FracCube
		want Cube
	}{
		{FracCube{0, 0, 0}, Cube{0, 0, 0}},
		{FracCube{1.9, -1.1, -0.8}, Cube{2, -1, -1}},
		{FracCube{-2.4, 1.1, 1.3}, Cube{-2, 1, 1}},
		{FracCube{0.4, 0.4, -0.8}, Cube{0, 1, -1}},
	}
	for _, tc := range cases {
		got := tc.in.Round()
		if got != tc.want {
			t.Fatalf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if !got.Valid() {
			t.Fatalf("Round(%v) produced invalid cube %v", tc.in, got)
		}
	}
}
