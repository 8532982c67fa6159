package path

import "github.com/RH2/hexnav/hex"

// DistanceField runs a breadth-first expansion from start and returns the
// first-reached distance of every visited cell, start included at 0.
// Expansion stops as soon as every goal has been reached, or when the
// frontier is exhausted. Blocked cells are never entered, including goals.
//
// limit caps the expansion depth: cells farther than limit steps from
// start are not entered. A negative limit means unlimited, in which case
// the caller must ensure the reachable region is finite (all goals
// reachable, or start enclosed). Panics if start is not a valid cube
// coordinate.
func DistanceField(start hex.Cube, goals, blocked hex.Set, limit int) map[hex.Cube]int {
	mustBeValid(start)

	dist := map[hex.Cube]int{start: 0}
	if blocked[start] {
		return dist
	}

	remaining := 0
	for g := range goals {
		if goals[g] && !blocked[g] {
			remaining++
		}
	}
	if goals[start] {
		remaining--
	}

	frontier := []hex.Cube{start}
	for len(frontier) > 0 && (len(goals) == 0 || remaining > 0) {
		cur := frontier[0]
		frontier = frontier[1:]
		if limit >= 0 && dist[cur] >= limit {
			continue
		}
		for _, nb := range cur.Neighbors() {
			if blocked[nb] {
				continue
			}
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			if goals[nb] {
				remaining--
			}
			frontier = append(frontier, nb)
		}
	}
	return dist
}
