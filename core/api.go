// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph for diagnostics and logging.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	TimePoints int // registered time points
	Arcs       int // arcs including self-loops
	SelfLoops  int // arcs with From == To
	Negative   int // arcs with a negative weight (lower bounds)
}

// Stats computes a summary of the graph.
// Complexity: O(A).
func (g *Graph) Stats() Stats {
	s := Stats{TimePoints: len(g.vertices), Arcs: len(g.arcs)}
	for k, a := range g.arcs {
		if k.from == k.to {
			s.SelfLoops++
		}
		if a.Weight < 0 {
			s.Negative++
		}
	}

	return s
}
