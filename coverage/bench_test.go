package coverage_test

import (
	"testing"

	"github.com/katalvlaran/geowalk/coverage"
	"github.com/katalvlaran/geowalk/gridworld"
)

// BenchmarkEngine_Run measures the recursive budgeted expansion on a 100x100
// 8-connected grid from its centre, with a budget large enough to reach
// every cell.
// Complexity: one expansion per cheaper route found to a node (so possibly
// several per node), each bounded by the grid's connectivity.
func BenchmarkEngine_Run(b *testing.B) {
	const n = 100
	g, err := gridworld.NewSquareGrid(n, n, true, nil)
	if err != nil {
		b.Fatalf("setup NewSquareGrid failed: %v", err)
	}
	agent := gridworld.NewUniformAgent(g, 1, false)
	source := gridworld.SquareID(n/2, n/2)

	var engine coverage.Engine

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = engine.Run(g, agent, source, float64(n))
	}
}
