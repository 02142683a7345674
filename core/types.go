// SPDX-License-Identifier: MIT

// Package core defines TimePoint, Vertex, Arc and Graph together with the
// sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a time point that is not in the graph.
	ErrVertexNotFound = errors.New("core: time point not found")
)

// TimePoint identifies an instantaneous event (activity boundary) in the network.
type TimePoint int64

// String renders the id in decimal.
func (p TimePoint) String() string { return strconv.FormatInt(int64(p), 10) }

// Vertex is a time point registered in the graph.
//
// Index is the dense position assigned at insertion; Label is optional
// human-readable text ("Start PET", "EV1 egress complete", ...).
type Vertex struct {
	// ID is the external time-point identifier.
	ID TimePoint

	// Index is the dense storage index, 0..VertexCount()-1.
	Index int

	// Label is free-form display text; empty when unknown.
	Label string
}

// Arc is a directed weighted edge of the distance graph.
type Arc struct {
	// From is the source time point.
	From TimePoint

	// To is the destination time point.
	To TimePoint

	// Weight is the upper bound on t(To) - t(From).
	Weight float64

	// Action names the activity that produced the arc (e.g. the actor); may be empty.
	Action string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n time points.
// Panics on negative n.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}

	return func(g *Graph) {
		g.index = make(map[TimePoint]int, n)
		g.vertices = make([]*Vertex, 0, n)
	}
}

// ArcOption configures an arc when it is set.
type ArcOption func(*Arc)

// WithAction records the activity name on the arc.
func WithAction(action string) ArcOption {
	return func(a *Arc) { a.Action = action }
}

// arcKey addresses an arc by the dense indices of its endpoints.
type arcKey struct {
	from, to int
}

// Graph is the distance graph of a temporal network.
//
// index maps TimePoint → dense index; vertices is the inverse (index → *Vertex).
// arcs holds at most one arc per ordered (from, to) index pair.
type Graph struct {
	index    map[TimePoint]int
	vertices []*Vertex
	arcs     map[arcKey]*Arc
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[TimePoint]int),
		arcs:  make(map[arcKey]*Arc),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
