// SPDX-License-Identifier: MIT

// Package builder turns a declarative list of duration constraints into the
// distance graph of a Simple Temporal Network (package core).
//
// Encoding:
//
//	A constraint "t(target) - t(source) ∈ [l, u]" becomes two arcs:
//
//	    source → target  weight  u
//	    target → source  weight -l
//
// Time points are never declared separately: the node set is the closure of
// all ids mentioned by edges, registered (with their zero self-loops) before
// any arc is written. An edge can therefore never reference a missing node.
//
// Effective interval:
//
//	Edge.Interval is used as-is unless it is nil or WithImplicitIntervals()
//	is set; then the interval is derived from Edge.Minutes as
//	[m·(1-ε), m·(1+ε)] with ε = WithUncertainty (default 0.1).
//
// Duplicates:
//
//	DuplicateOverwrite (default): a later edge on the same ordered pair
//	replaces the earlier arc weight (last write wins).
//	DuplicateIntersect: constraints on the same pair of time points are
//	combined with interval.Union (the tighter window) before writing.
//
// Option constructors validate their argument and PANIC on programmer error;
// Register itself never panics.
package builder
