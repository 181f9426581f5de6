package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/gridworld"
)

func TestUniformAgent_DefaultStepCost(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	agent := gridworld.NewUniformAgent(g, 0, false)
	assert.Equal(t, 1.0, agent.StepCost(gridworld.SquareID(0, 0), gridworld.SquareID(0, 1)))
}

func TestUniformAgent_BlocksMovementIntoBlockedCell(t *testing.T) {
	blocked := map[geograph.NodeID]bool{gridworld.SquareID(1, 1): true}
	g, err := gridworld.NewSquareGrid(3, 3, false, blocked)
	require.NoError(t, err)
	agent := gridworld.NewUniformAgent(g, 1, false)

	assert.False(t, agent.CanMakeStep(gridworld.SquareID(0, 1), gridworld.SquareID(1, 1)))
	assert.False(t, agent.CanOccupy(gridworld.SquareID(1, 1)))
	assert.True(t, agent.CanOccupy(gridworld.SquareID(0, 1)))
}

func TestUniformAgent_IsNearTargetDefaultContract(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	agent := gridworld.NewUniformAgent(g, 1, false)
	assert.True(t, agent.IsNearTarget("0,0", "0,0", 0))
	assert.False(t, agent.IsNearTarget("0,0", "1,1", 2))
}
