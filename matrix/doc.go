// SPDX-License-Identifier: MIT

// Package matrix is the All-Pairs-Shortest-Paths engine of the solver: a dense
// square distance matrix and an in-place Floyd–Warshall closure with
// negative-cycle detection.
//
// Distance policy:
//
//   - +Inf (math.Inf(1)) means "no known path"; such cells are never used as
//     operands and are never materialized by callers;
//   - the diagonal is seeded from the graph's self-loops (0 unless a
//     self-constraint overwrote it);
//   - relaxation is strict: a candidate replaces a cell only when it is
//     smaller (ties keep the existing value);
//   - loop order is fixed (k → i → j) so results and the reported cycle index
//     are deterministic for a given dense index order.
//
// Infeasibility:
//
//	When a relaxation would store a negative value on the diagonal, the run
//	aborts with *NegativeCycleError (errors.Is(err, ErrNegativeCycle)). The
//	matrix is then partially updated and must be discarded.
//
// Complexity: Time O(n³), extra space O(1); FromGraph allocates O(n²).
package matrix
