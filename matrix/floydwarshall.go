// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order and
//     negative-cycle detection on the diagonal.
//
// Contract:
//   - +Inf means “no path”; +Inf operands are skipped, never summed.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes the all-pairs minimal distances of d in place.
//
// For every intermediate k, source i and destination j (in that order) the
// candidate d[i,k] + d[k,j] replaces d[i,j] when both operands are known and
// the candidate is strictly smaller. If such a replacement targets a diagonal
// cell with a negative value, FloydWarshall stops and returns
// *NegativeCycleError{Index: i}; d is left partially updated.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}

	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = data[baseI+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict: ties keep the existing value
					data[baseI+j] = cand
					if i == j && cand < 0 {
						return &NegativeCycleError{Index: i}
					}
				}
			}
		}
	}

	return nil
}
