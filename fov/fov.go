// Package fov computes field of view on a hex grid by discrete ray
// sampling: a cell is visible when the drawn line back to the viewer
// passes through no blocking cell.
package fov

import (
	"fmt"

	"github.com/RH2/hexnav/hex"
)

// Visible returns the hexes within radius of center that have line of
// sight to it. A candidate is occluded when any hex strictly between
// center and the candidate is blocked; a blocked candidate is itself
// visible but occludes cells behind it. The center is always visible.
//
// Sight lines are sampled on the discrete hex lattice, so results near
// grid-aligned obstacle edges approximate true geometric visibility.
// Panics if center is invalid or radius is negative.
func Visible(center hex.Cube, radius int, blocked hex.Set) hex.Set {
	if err := center.Check(); err != nil {
		panic(err.Error())
	}
	if radius < 0 {
		panic(fmt.Sprintf("fov: negative radius %d", radius))
	}
	out := make(hex.Set)
	out[center] = true
	for k := 1; k <= radius; k++ {
		for _, candidate := range hex.Ring(center, k) {
			line := hex.Line(center, candidate)
			occluded := false
			for _, h := range line[1 : len(line)-1] {
				if blocked[h] {
					occluded = true
					break
				}
			}
			if !occluded {
				out[candidate] = true
			}
		}
	}
	return out
}
