// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Dense is a square row-major matrix of float64 distances.
// n is the order; data holds n*n elements in row-major order.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n distance matrix with every cell set to +Inf.
// n == 0 is allowed (empty network). Negative n returns ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}
	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := range data {
		data[i] = inf
	}

	return &Dense{n: n, data: data}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.n }

// Cols returns the number of columns (equal to Rows).
func (d *Dense) Cols() int { return d.n }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if err := d.check(i, j); err != nil {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, err)
	}

	return d.data[i*d.n+j], nil
}

// Set stores v at (i, j).
func (d *Dense) Set(i, j int, v float64) error {
	if err := d.check(i, j); err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, err)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Known reports whether a path from i to j is materialized (finite or -Inf,
// anything but +Inf). Out-of-range indices report false.
func (d *Dense) Known(i, j int) bool {
	if d.check(i, j) != nil {
		return false
	}

	return !math.IsInf(d.data[i*d.n+j], 1)
}

// Each calls fn for every materialized cell in row-major order.
func (d *Dense) Each(fn func(i, j int, v float64)) {
	var i, j int
	var v float64
	for i = 0; i < d.n; i++ {
		base := i * d.n
		for j = 0; j < d.n; j++ {
			v = d.data[base+j]
			if math.IsInf(v, 1) {
				continue
			}
			fn(i, j, v)
		}
	}
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{n: d.n, data: data}
}

func (d *Dense) check(i, j int) error {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return ErrOutOfRange
	}

	return nil
}
