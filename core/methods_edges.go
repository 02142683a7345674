// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Arc lifecycle & queries: SetArc/Arc/Weight/HasArc/Arcs/ArcCount.
// Determinism:
//   - Arcs() returns arcs sorted by (from index, to index).
// Policy:
//   - One arc per ordered pair; SetArc on an existing pair replaces it.

package core

import (
	"fmt"
	"sort"
)

// SetArc inserts or replaces the arc from → to with weight w.
//
// Both endpoints must already be registered (AddVertex); otherwise
// ErrVertexNotFound is returned and the graph is unchanged.
// Setting from == to overwrites that vertex's self-loop.
//
// Complexity: O(1).
func (g *Graph) SetArc(from, to TimePoint, w float64, opts ...ArcOption) error {
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("SetArc(%d→%d): source: %w", from, to, ErrVertexNotFound)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("SetArc(%d→%d): target: %w", from, to, ErrVertexNotFound)
	}

	a := &Arc{From: from, To: to, Weight: w}
	for _, opt := range opts {
		opt(a)
	}
	g.arcs[arcKey{from: fi, to: ti}] = a

	return nil
}

// Arc returns the arc from → to if present.
// The returned pointer must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Arc(from, to TimePoint) (*Arc, bool) {
	fi, ok := g.index[from]
	if !ok {
		return nil, false
	}
	ti, ok := g.index[to]
	if !ok {
		return nil, false
	}
	a, ok := g.arcs[arcKey{from: fi, to: ti}]

	return a, ok
}

// Weight returns the weight of from → to if the arc exists.
func (g *Graph) Weight(from, to TimePoint) (float64, bool) {
	a, ok := g.Arc(from, to)
	if !ok {
		return 0, false
	}

	return a.Weight, true
}

// HasArc reports whether the arc from → to exists.
func (g *Graph) HasArc(from, to TimePoint) bool {
	_, ok := g.Arc(from, to)

	return ok
}

// Arcs returns every arc (self-loops included) sorted by (from index, to index).
// Complexity: O(A log A).
func (g *Graph) Arcs() []*Arc {
	keys := make([]arcKey, 0, len(g.arcs))
	for k := range g.arcs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	out := make([]*Arc, len(keys))
	for i, k := range keys {
		out[i] = g.arcs[k]
	}

	return out
}

// EachArc calls fn with the dense endpoint indices and weight of every arc,
// in unspecified order. It is the allocation-free path used to seed matrices.
func (g *Graph) EachArc(fn func(from, to int, w float64)) {
	for k, a := range g.arcs {
		fn(k.from, k.to, a.Weight)
	}
}

// ArcCount returns the number of arcs, self-loops included.
func (g *Graph) ArcCount() int { return len(g.arcs) }
