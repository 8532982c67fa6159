package hex

import "fmt"

// Direction indexes one of the six unit cube vectors, 0..5.
type Direction int

// Directions holds the six unit vectors in a fixed order, starting east of
// the origin for pointy-top orientation and proceeding counter-clockwise.
// Direction d and d.Opposite() cancel.
var Directions = [6]Cube{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 3) % 6 }

// Neighbor returns the adjacent hex in the given direction.
func (c Cube) Neighbor(d Direction) Cube {
	return c.Add(Directions[((d%6)+6)%6])
}

// Neighbors returns all six adjacent hexes in direction order 0..5.
func (c Cube) Neighbors() [6]Cube {
	var out [6]Cube
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// Ring returns the hexes at exact distance radius from center, starting at
// center+Directions[4]*radius and walking the six sides in direction
// order. Radius 0 returns [center]; radius k>=1 returns exactly 6k hexes.
// Panics if radius is negative or center is invalid.
func Ring(center Cube, radius int) []Cube {
	mustBeValid(center)
	if radius < 0 {
		panic(fmt.Sprintf("hex: negative ring radius %d", radius))
	}
	if radius == 0 {
		return []Cube{center}
	}
	out := make([]Cube, 0, 6*radius)
	cur := center.Add(Directions[4].Scale(radius))
	for side := Direction(0); side < 6; side++ {
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = cur.Neighbor(side)
		}
	}
	return out
}

// Spiral returns all hexes within the given radius of center, as the
// concatenation of rings 0..radius: 3*radius*(radius+1)+1 hexes with no
// duplicates. Panics if radius is negative or center is invalid.
func Spiral(center Cube, radius int) []Cube {
	mustBeValid(center)
	if radius < 0 {
		panic(fmt.Sprintf("hex: negative spiral radius %d", radius))
	}
	out := make([]Cube, 0, 3*radius*(radius+1)+1)
	out = append(out, center)
	for k := 1; k <= radius; k++ {
		out = append(out, Ring(center, k)...)
	}
	return out
}
