package astar_test

import (
	"fmt"

	"github.com/katalvlaran/geowalk/astar"
	"github.com/katalvlaran/geowalk/gridworld"
)

// ExampleEngine_Run finds the shortest path across a 3x3 orthogonal grid.
func ExampleEngine_Run() {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	agent := gridworld.NewUniformAgent(g, 1, false)

	var engine astar.Engine
	result, ok, err := engine.Run(g, agent, gridworld.SquareID(0, 0), gridworld.SquareID(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !ok {
		fmt.Println("no path")
		return
	}

	fmt.Printf("steps=%d cost=%.0f\n", len(result.Path), result.TotalCost)
	// Output: steps=5 cost=4
}
