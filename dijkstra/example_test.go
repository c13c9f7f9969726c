package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// ExampleSingle_Between finds the cheapest route in a small directed network.
// Complexity: O((V+E) log V).
func ExampleSingle_Between() {
	g, _ := core.New([]core.Vertex{
		core.Node("A", core.To("B", 3), core.To("C", 1)),
		core.Node("B", core.To("D", 3)),
		core.Node("C", core.To("B", 1), core.To("D", 5)),
		core.Node("D"),
	})

	path, err := dijkstra.NewSingle(g).Between("A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [A C B D]
}

// ExampleMulti_From lists the cheapest route to every reachable node.
func ExampleMulti_From() {
	g, _ := core.New([]core.Vertex{
		core.Node("A", core.To("B", 3), core.To("C", 1)),
		core.Node("B", core.To("D", 3)),
		core.Node("C", core.To("B", 1), core.To("D", 5)),
		core.Node("D"),
		core.Node("E", core.To("A", 1)),
	})

	paths, _ := dijkstra.NewMulti(g).From("A")
	for _, goal := range []string{"B", "C", "D", "E"} {
		fmt.Println(goal, paths[goal])
	}
	// Output:
	// B [A C B]
	// C [A C]
	// D [A C B D]
	// E []
}
