// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/tempus/core"

// FromGraph seeds a distance matrix from the direct arcs of g.
//
// Cell (i, j) holds the weight of the arc between the time points with dense
// indices i and j; pairs without an arc stay +Inf. Self-loops seed the diagonal.
// Rows and columns follow g's dense index order.
// Complexity: O(V² + A).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGraph", ErrGraphNil)
	}
	d, err := NewDense(g.VertexCount())
	if err != nil {
		return nil, matrixErrorf("FromGraph", err)
	}
	n := d.n
	g.EachArc(func(from, to int, w float64) {
		d.data[from*n+to] = w
	})

	return d, nil
}
