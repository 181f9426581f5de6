package gridworld

import "github.com/katalvlaran/geowalk/geograph"

// blocker is satisfied by both SquareGrid and HexGrid.
type blocker interface {
	IsBlocked(n geograph.NodeID) bool
}

// UniformAgent is a geograph.Agent whose every step costs the same amount
// and which refuses to move onto or through blocked cells. It pairs with
// SquareGrid/HexGrid for tests, examples, and the demo CLI.
type UniformAgent struct {
	grid         blocker
	stepCost     float64
	relaxedRange bool
}

// NewUniformAgent builds a UniformAgent over grid (a SquareGrid or
// HexGrid). stepCost <= 0 defaults to 1. relaxedRange controls whether
// coverage/A* budget queries may end on a node whose entry cost overshoots
// the budget (spec §4.3.2, §4.4).
func NewUniformAgent(grid blocker, stepCost float64, relaxedRange bool) UniformAgent {
	if stepCost <= 0 {
		stepCost = 1
	}

	return UniformAgent{grid: grid, stepCost: stepCost, relaxedRange: relaxedRange}
}

// RelaxedRange returns the value fixed at construction.
func (a UniformAgent) RelaxedRange() bool { return a.relaxedRange }

// CanMakeStep refuses to move onto a blocked cell. The source cell's own
// occupancy is checked separately via CanOccupy.
func (a UniformAgent) CanMakeStep(_, b geograph.NodeID) bool {
	return !a.grid.IsBlocked(b)
}

// CanOccupy refuses to end movement on a blocked cell.
func (a UniformAgent) CanOccupy(n geograph.NodeID) bool {
	return !a.grid.IsBlocked(n)
}

// StepCost is constant regardless of the pair of neighbouring cells.
func (a UniformAgent) StepCost(_, _ geograph.NodeID) float64 {
	return a.stepCost
}

// IsNearTarget delegates to the default "exact match" contract.
func (a UniformAgent) IsNearTarget(_, _ geograph.NodeID, distance float64) bool {
	return geograph.DefaultIsNearTarget(distance)
}
