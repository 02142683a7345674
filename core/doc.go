// SPDX-License-Identifier: MIT

// Package core provides the in-memory distance graph of a Simple Temporal
// Network: a catalog of time points plus at most one weighted arc per ordered
// pair of time points.
//
// The graph G = (V, A) follows the STN distance-graph encoding:
//
//   - every vertex is a TimePoint (an opaque int64 event id);
//   - an arc i → j with weight w reads "t(j) - t(i) ≤ w";
//   - every vertex owns a zero-weight self-loop created by AddVertex, which
//     seeds the diagonal of the propagation table.
//
// Dense indexing:
//
//	Each vertex receives a dense index 0..V-1 in order of first insertion.
//	The index never changes and is never reused, so matrices built from the
//	graph stay aligned with it (see package matrix).
//
// Determinism:
//
//	Vertices() returns vertices in index order; Arcs() returns arcs ordered by
//	(from index, to index). Map iteration order never leaks out of the package.
//
// Arc policy:
//
//	SetArc stores one arc per ordered pair. Setting an existing pair replaces
//	its weight (last write wins); combining policies live in package builder.
//
// Concurrency:
//
//	A Graph is owned by a single solve and is NOT safe for concurrent use.
//	Clone gives an independent copy when one is needed.
//
// Errors:
//
//	ErrVertexNotFound - an arc or label references an unknown time point.
package core
