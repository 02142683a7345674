// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Deep copy of a distance graph.

package core

// Clone returns an independent deep copy: same time points, same dense
// indices, same arcs.
// Complexity: O(V + A).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithCapacity(len(g.vertices)))
	for _, v := range g.vertices {
		cp := *v
		clone.index[v.ID] = v.Index
		clone.vertices = append(clone.vertices, &cp)
	}
	for k, a := range g.arcs {
		cp := *a
		clone.arcs[k] = &cp
	}

	return clone
}
