// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempus/matrix"
)

// distances builds an n×n matrix with 0 on the diagonal, +Inf elsewhere,
// then applies the given arcs {i, j, w}.
func distances(t *testing.T, n int, arcs ...[3]float64) *matrix.Dense {
	t.Helper()

	d, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, d.Set(i, i, 0))
	}
	for _, a := range arcs {
		require.NoError(t, d.Set(int(a[0]), int(a[1]), a[2]))
	}

	return d
}

// mustAt reads (i, j) or fails the test.
func mustAt(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()

	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}
