// SPDX-License-Identifier: MIT

// Package interval provides the closed real range used to express duration
// bounds between time points of a Simple Temporal Network.
//
// An Interval [l, u] reads "the difference between two events lies between
// l and u". The package offers the small algebra the solver needs:
//
//	[a, b] + [c, d] = [a+c, b+d]        Add
//	-[a, b]         = [-b, -a]          Negate
//	[a, b] - [c, d] = [a-d, b-c]        Sub (Add of the negation)
//	[a, b] ∪ [c, d] = [max(a,c), min(b,d)]  Union
//
// Union is named after the operator used by the scheduling tools this package
// grew out of, but in range terms it is an INTERSECTION: it combines two bound
// estimates into the tighter one.
//
// Construction never validates lower ≤ upper; use Valid at the input boundary.
// NaN and ±Inf propagate per IEEE-754 and are not guarded.
//
// Intervals marshal to and from the two-element array form [lower, upper]
// in JSON and YAML.
package interval
