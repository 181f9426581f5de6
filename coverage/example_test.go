package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/geowalk/coverage"
	"github.com/katalvlaran/geowalk/gridworld"
)

// ExampleEngine_Run enumerates every cell reachable within a cost budget.
func ExampleEngine_Run() {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	agent := gridworld.NewUniformAgent(g, 1, false)

	var engine coverage.Engine
	result, ok, err := engine.Run(g, agent, gridworld.SquareID(1, 1), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !ok {
		fmt.Println("no result")
		return
	}

	fmt.Println(len(result.Nodes))
	// Output: 4
}
