// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

// ExampleGraph demonstrates construction and sink detection.
func ExampleGraph() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	fmt.Println("Order:", g.Order(), "Size:", g.Size())
	fmt.Println("Neighbors(1):", g.Neighbors(1))

	o := core.NewOrientation(g)
	fmt.Println("Sinks:", o.Sinks())

	// Output:
	// Order: 3 Size: 2
	// Neighbors(1): [0 2]
	// Sinks: [2]
}
