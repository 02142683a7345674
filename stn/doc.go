// SPDX-License-Identifier: MIT

// Package stn is the Simple Temporal Network handle: it owns the distance
// graph of one constraint set, the time-point index, and the constraint table
// produced by propagation.
//
// Lifecycle:
//
//	n := stn.New()
//	n.Register(edges)   // once per handle; ErrAlreadyRegistered afterwards
//	n.Propagate()       // Floyd–Warshall over the graph; may be repeated
//	n.Distance(i, j)    // tightest known upper bound on t(j) - t(i)
//	n.Bounds(i, j)      // feasible window [-d(j,i), d(i,j)]
//
// Propagate works on a scratch matrix and commits the table only on success.
// On a negative cycle it clears any previous table and returns
// *NegativeCycleError naming a time point on the cycle; the caller must fix
// the constraints and start over on a fresh handle.
//
// A Network is exclusively owned by its caller and is NOT safe for concurrent
// use. Run one handle per concurrent solve.
package stn
