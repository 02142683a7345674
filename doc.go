// SPDX-License-Identifier: MIT

// Package tempus solves Simple Temporal Networks: sets of time points linked
// by duration constraints "t(j) - t(i) ∈ [l, u]".
//
// A network is checked for consistency and tightened in one pass. Every
// constraint becomes two arcs of a distance graph, Floyd–Warshall computes
// all-pairs shortest paths, and the result is either the constraint table
// (the tightest upper bound on every pair) or a negative cycle proving the
// constraints infeasible.
//
// Packages:
//
//	interval/   closed duration intervals and their algebra
//	core/       the distance graph: time points, dense indices, weighted arcs
//	builder/    constraint list → distance graph (Register)
//	matrix/     dense distance matrix and the Floyd–Warshall engine
//	stn/        the Network handle: Register, Propagate, Distance, Bounds
//	metrics/    Prometheus collectors for registrations and propagations
//	payload/    JSON / YAML / HCL request files, validation, result rows
//	cmd/tempus  command-line front end (solve, check, bounds)
//
// Quick start:
//
//	n := stn.New()
//	n.Register([]builder.Edge{
//		builder.Between(1, 2, 10, 20),
//		builder.Between(2, 3, 30, 40),
//	})
//	if err := n.Propagate(); err != nil {
//		// *stn.NegativeCycleError names a time point on the cycle
//	}
//	b, _ := n.Bounds(1, 3) // [40, 60]
package tempus
