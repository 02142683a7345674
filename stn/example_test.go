package stn_test

import (
	"fmt"

	"github.com/katalvlaran/tempus/builder"
	"github.com/katalvlaran/tempus/stn"
)

// ExampleNetwork derives the implied window between two crew milestones.
func ExampleNetwork() {
	n := stn.New()
	if _, _, err := n.Register([]builder.Edge{
		builder.Between(1, 2, 10, 20),
		builder.Between(2, 3, 30, 40),
	}); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := n.Propagate(); err != nil {
		fmt.Println("error:", err)
		return
	}
	window, _ := n.Bounds(1, 3)
	fmt.Println(window)
	// Output: [40, 60]
}

// ExampleNetwork_Propagate shows the error reported for an infeasible plan.
func ExampleNetwork_Propagate() {
	n := stn.New()
	_, _, _ = n.Register([]builder.Edge{
		builder.Between(1, 2, 30, 40),
		builder.Between(1, 2, 50, 60),
	}, builder.WithDuplicatePolicy(builder.DuplicateIntersect))
	fmt.Println(n.Propagate())
	// Output: stn: negative cycle found on time point 2
}
