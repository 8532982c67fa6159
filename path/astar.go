// Package path implements obstacle-aware searching over the hex adjacency
// graph: A* shortest paths and multi-goal breadth-first distance fields.
// Edge cost is uniform; blocked cells are never expanded and never appear
// in results.
package path

import (
	"container/heap"

	"github.com/RH2/hexnav/hex"
)

// Find returns a shortest path from start to goal inclusive, avoiding
// blocked cells, using A* with the hex distance heuristic. It returns nil
// when no path exists, which is distinct from the single-element path
// returned when start == goal. A blocked start or goal has no path.
//
// When goal is unreachable the search exhausts start's connected
// component; on an unbounded grid that component must be finite for the
// call to return. Use FindWithin to bound the search explicitly.
// Panics if start or goal is not a valid cube coordinate.
func Find(start, goal hex.Cube, blocked hex.Set) []hex.Cube {
	return find(start, goal, blocked, func(hex.Cube) bool { return true })
}

// FindWithin is Find restricted to cells within the given distance of
// start. Panics if limit is negative.
func FindWithin(start, goal hex.Cube, blocked hex.Set, limit int) []hex.Cube {
	if limit < 0 {
		panic("path: negative search limit")
	}
	return find(start, goal, blocked, func(c hex.Cube) bool {
		return hex.Distance(start, c) <= limit
	})
}

func find(start, goal hex.Cube, blocked hex.Set, inBounds func(hex.Cube) bool) []hex.Cube {
	mustBeValid(start)
	mustBeValid(goal)
	if blocked[start] || blocked[goal] {
		return nil
	}
	if start == goal {
		return []hex.Cube{start}
	}

	open := &nodePQ{}
	heap.Init(open)
	heap.Push(open, &pqNode{c: start, f: hex.Distance(start, goal)})

	g := map[hex.Cube]int{start: 0}
	came := map[hex.Cube]hex.Cube{}
	closed := map[hex.Cube]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).c
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			return reconstruct(came, start, goal)
		}
		for _, nb := range cur.Neighbors() {
			if closed[nb] || blocked[nb] || !inBounds(nb) {
				continue
			}
			tentative := g[cur] + 1
			if old, ok := g[nb]; ok && tentative >= old {
				continue
			}
			g[nb] = tentative
			came[nb] = cur
			heap.Push(open, &pqNode{c: nb, f: tentative + hex.Distance(nb, goal), g: tentative})
		}
	}
	return nil
}

func reconstruct(came map[hex.Cube]hex.Cube, start, goal hex.Cube) []hex.Cube {
	out := []hex.Cube{goal}
	for cur := goal; cur != start; {
		cur = came[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func mustBeValid(c hex.Cube) {
	if err := c.Check(); err != nil {
		panic(err.Error())
	}
}

// pqNode orders the frontier by f score with ties broken by lower cost so
// far, which keeps expansion deterministic on equal-cost alternatives.
type pqNode struct {
	c hex.Cube
	f int
	g int
}

type nodePQ []*pqNode

func (p nodePQ) Len() int { return len(p) }
func (p nodePQ) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	return p[i].g < p[j].g
}
func (p nodePQ) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x any)   { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}
