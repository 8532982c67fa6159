package hex

import "fmt"

// Hexagon returns the filled hexagonal region of the given radius around
// center as a set. Panics if radius is negative.
func Hexagon(center Cube, radius int) Set {
	if radius < 0 {
		panic(fmt.Sprintf("hex: negative hexagon radius %d", radius))
	}
	out := make(Set, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			out[center.Add(Cube{q, r, -q - r})] = true
		}
	}
	return out
}

// Rectangle returns a width x height block of offset coordinates under the
// given scheme, converted to cube. Panics if width or height is negative.
func Rectangle(width, height int, s Scheme) Set {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("hex: negative rectangle extent %dx%d", width, height))
	}
	out := make(Set, width*height)
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			out[Offset{Col: col, Row: row, Scheme: s}.ToCube()] = true
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
