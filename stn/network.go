// SPDX-License-Identifier: MIT

package stn

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/katalvlaran/tempus/builder"
	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/interval"
	"github.com/katalvlaran/tempus/matrix"
)

// Network owns one distance graph and its constraint table.
type Network struct {
	graph      *core.Graph
	table      Table
	registered bool
	propagated bool
	elapsed    time.Duration

	logger   *slog.Logger
	observer Observer
	now      func() time.Time
}

// New creates an empty handle.
func New(opts ...Option) *Network {
	n := &Network{
		graph:    core.NewGraph(),
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Register builds the distance graph from edges (see package builder) and
// returns the node and arc counts. A handle is built once: a second call
// returns ErrAlreadyRegistered and leaves the graph untouched.
func (n *Network) Register(edges []builder.Edge, opts ...builder.Option) (nodes, arcs uint, err error) {
	if n.registered {
		return 0, 0, ErrAlreadyRegistered
	}

	all := make([]builder.Option, 0, len(opts)+1)
	all = append(all, builder.WithLogger(n.logger))
	all = append(all, opts...)
	vn, an, err := builder.Register(n.graph, edges, all...)
	if err != nil {
		return 0, 0, err
	}
	n.registered = true
	n.observer.ObserveRegister(vn, an)

	return uint(vn), uint(an), nil
}

// Propagate runs Floyd–Warshall over the current graph and replaces the
// constraint table with the result.
//
// On a negative cycle the table is cleared and *NegativeCycleError is
// returned; detection stops at the first negative diagonal.
// Complexity: O(V³) time, O(V²) memory.
func (n *Network) Propagate() error {
	start := n.now()
	d, err := matrix.FromGraph(n.graph)
	if err == nil {
		err = matrix.FloydWarshall(d)
	}
	n.elapsed = n.now().Sub(start)

	if err != nil {
		n.table = nil
		n.propagated = false
		err = n.translate(err)
		n.observer.ObservePropagate(n.elapsed, err)
		n.logger.Warn("propagation failed", "error", err, "elapsed", n.elapsed)

		return err
	}

	ids := n.graph.IDs()
	table := make(Table, len(ids)*len(ids))
	d.Each(func(i, j int, v float64) {
		table[Pair{From: ids[i], To: ids[j]}] = v
	})
	n.table = table
	n.propagated = true
	n.observer.ObservePropagate(n.elapsed, nil)
	n.logger.LogAttrs(context.Background(), slog.LevelDebug, "constraint table propagated",
		slog.Int("time_points", len(ids)),
		slog.Int("entries", len(table)),
		slog.Duration("elapsed", n.elapsed),
	)

	return nil
}

// translate maps engine indices back to time points.
func (n *Network) translate(err error) error {
	var nc *matrix.NegativeCycleError
	if !errors.As(err, &nc) {
		return err
	}
	id, lookupErr := n.graph.At(nc.Index)
	if lookupErr != nil {
		return errors.Join(err, lookupErr)
	}

	return &NegativeCycleError{TimePoint: id, cause: nc}
}

// Distance returns table[(from, to)], reporting false when no path is known
// or the network has not been propagated successfully.
func (n *Network) Distance(from, to core.TimePoint) (float64, bool) {
	v, ok := n.table[Pair{From: from, To: to}]

	return v, ok
}

// Bounds returns the feasible window of t(to) - t(from): [-d(to,from), d(from,to)].
// A missing direction yields an infinite bound. ok is false when either time
// point is unknown or no successful propagation happened.
func (n *Network) Bounds(from, to core.TimePoint) (interval.Interval, bool) {
	if !n.propagated || !n.graph.HasVertex(from) || !n.graph.HasVertex(to) {
		return interval.Interval{}, false
	}
	upper, ok := n.table[Pair{From: from, To: to}]
	if !ok {
		upper = math.Inf(1)
	}
	lower := math.Inf(-1)
	if back, ok := n.table[Pair{From: to, To: from}]; ok {
		lower = -back
	}

	return interval.New(lower, upper), true
}

// Table returns a copy of the constraint table (nil before a successful Propagate).
func (n *Network) Table() Table {
	if n.table == nil {
		return nil
	}
	out := make(Table, len(n.table))
	for k, v := range n.table {
		out[k] = v
	}

	return out
}

// TimePoints returns the registered time points in dense index order.
func (n *Network) TimePoints() []core.TimePoint { return n.graph.IDs() }

// Graph exposes the distance graph for inspection. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.graph }

// Registered reports whether Register succeeded.
func (n *Network) Registered() bool { return n.registered }

// Propagated reports whether the last Propagate succeeded.
func (n *Network) Propagated() bool { return n.propagated }

// Elapsed returns the duration of the last Propagate.
func (n *Network) Elapsed() time.Duration { return n.elapsed }

// String renders "<elapsed seconds> elapsed time".
func (n *Network) String() string {
	return strconv.FormatFloat(n.elapsed.Seconds(), 'g', -1, 64) + " elapsed time"
}
