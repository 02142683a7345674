// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Time-point lifecycle & queries.
//
// Determinism:
//   - Vertices() and IDs() return time points in dense index order.
//   - Indices are assigned in insertion order and never reused.

package core

import "fmt"

// AddVertex registers id if missing and returns its dense index.
//
// Steps:
//  1. If id is known, return its index (idempotent, created=false).
//  2. Otherwise append a Vertex with the next dense index.
//  3. Insert the zero-weight self-loop id → id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id TimePoint) (index int, created bool) {
	if idx, ok := g.index[id]; ok {
		return idx, false
	}

	index = len(g.vertices)
	g.index[id] = index
	g.vertices = append(g.vertices, &Vertex{ID: id, Index: index})
	// Zero-duration path from an event to itself.
	g.arcs[arcKey{from: index, to: index}] = &Arc{From: id, To: id, Weight: 0}

	return index, true
}

// HasVertex reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id TimePoint) bool {
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the dense index of id.
// Complexity: O(1).
func (g *Graph) IndexOf(id TimePoint) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// At returns the time point stored at dense index idx.
// Returns ErrVertexNotFound when idx is out of range.
func (g *Graph) At(idx int) (TimePoint, error) {
	if idx < 0 || idx >= len(g.vertices) {
		return 0, fmt.Errorf("At(%d): %w", idx, ErrVertexNotFound)
	}

	return g.vertices[idx].ID, nil
}

// Vertex returns the vertex record for id.
// The returned pointer must be treated as read-only.
func (g *Graph) Vertex(id TimePoint) (*Vertex, error) {
	idx, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[idx], nil
}

// SetLabel attaches display text to a registered time point.
func (g *Graph) SetLabel(id TimePoint, label string) error {
	idx, ok := g.index[id]
	if !ok {
		return fmt.Errorf("SetLabel(%d): %w", id, ErrVertexNotFound)
	}
	g.vertices[idx].Label = label

	return nil
}

// Vertices returns all vertices in dense index order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// IDs returns all time points in dense index order.
// Complexity: O(V).
func (g *Graph) IDs() []TimePoint {
	out := make([]TimePoint, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.ID
	}

	return out
}

// VertexCount returns the number of registered time points.
func (g *Graph) VertexCount() int { return len(g.vertices) }
