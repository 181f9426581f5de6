package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geowalk/astar"
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/gridworld"
)

func TestRun_NilGraph(t *testing.T) {
	var engine astar.Engine
	agent := gridworld.NewUniformAgent(mustGrid(t, 2, 2), 1, false)
	_, ok, err := engine.Run(nil, agent, "0,0", "1,1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, astar.ErrNilGraph)
}

func TestRun_NilAgent(t *testing.T) {
	var engine astar.Engine
	g := mustGrid(t, 2, 2)
	_, ok, err := engine.Run(g, nil, "0,0", "1,1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, astar.ErrNilAgent)
}

func TestRun_UnknownSource(t *testing.T) {
	var engine astar.Engine
	g := mustGrid(t, 3, 3)
	agent := gridworld.NewUniformAgent(g, 1, false)
	result, ok, err := engine.Run(g, agent, "9,9", "0,0")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, result.Path)
}

func TestRun_SourceEqualsTarget(t *testing.T) {
	var engine astar.Engine
	g := mustGrid(t, 3, 3)
	agent := gridworld.NewUniformAgent(g, 1, false)
	result, ok, err := engine.Run(g, agent, "1,1", "1,1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []geograph.NodeID{"1,1"}, result.Path)
	assert.Equal(t, 0.0, result.TotalCost)
}

func TestRun_StraightLine(t *testing.T) {
	var engine astar.Engine
	g := mustGrid(t, 1, 5)
	agent := gridworld.NewUniformAgent(g, 1, false)
	result, ok, err := engine.Run(g, agent, "0,0", "0,4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, result.Path, 5)
	assert.Equal(t, 4.0, result.TotalCost)
}

func TestRun_DetourAroundWall(t *testing.T) {
	blocked := map[geograph.NodeID]bool{
		gridworld.SquareID(1, 0): true,
		gridworld.SquareID(1, 1): true,
	}
	g, err := gridworld.NewSquareGrid(3, 3, false, blocked)
	require.NoError(t, err)
	agent := gridworld.NewUniformAgent(g, 1, false)

	var engine astar.Engine
	result, ok, err := engine.Run(g, agent, "0,0", "2,0")
	require.NoError(t, err)
	require.True(t, ok)
	for _, n := range result.Path {
		assert.False(t, blocked[n], "path must not cross the wall, got %s", n)
	}
}

func TestRun_RelativeLimitExcludesDistantDetour(t *testing.T) {
	blocked := map[geograph.NodeID]bool{
		gridworld.SquareID(1, 0): true,
		gridworld.SquareID(1, 1): true,
	}
	g, err := gridworld.NewSquareGrid(3, 3, false, blocked)
	require.NoError(t, err)
	agent := gridworld.NewUniformAgent(g, 1, false)

	var engine astar.Engine
	_, ok, err := engine.Run(g, agent, "0,0", "2,0", astar.WithRelativeLimit(1))
	require.NoError(t, err)
	assert.False(t, ok, "a tight ellipse must exclude the only available detour")
}

func TestRun_InvalidRelativeLimit(t *testing.T) {
	var engine astar.Engine
	g := mustGrid(t, 2, 2)
	agent := gridworld.NewUniformAgent(g, 1, false)
	_, ok, err := engine.Run(g, agent, "0,0", "1,1", astar.WithRelativeLimit(0.5))
	assert.False(t, ok)
	assert.ErrorIs(t, err, astar.ErrBadRelativeLimit)
}

func TestGetLastNode_BudgetCutoff(t *testing.T) {
	g := mustGrid(t, 1, 5)
	agent := gridworld.NewUniformAgent(g, 1, false)

	var engine astar.Engine
	result, ok, err := engine.Run(g, agent, "0,0", "0,4")
	require.NoError(t, err)
	require.True(t, ok)

	last, err := result.GetLastNode(agent, 2)
	require.NoError(t, err)
	assert.Equal(t, geograph.NodeID("0,2"), last)
}

func TestGetLastNode_BadMaxCost(t *testing.T) {
	g := mustGrid(t, 1, 2)
	agent := gridworld.NewUniformAgent(g, 1, false)
	var engine astar.Engine
	result, _, err := engine.Run(g, agent, "0,0", "0,1")
	require.NoError(t, err)

	_, err = result.GetLastNode(agent, 0)
	assert.ErrorIs(t, err, astar.ErrBadMaxCost)
}

func mustGrid(t *testing.T, rows, cols int) *gridworld.SquareGrid {
	t.Helper()
	g, err := gridworld.NewSquareGrid(rows, cols, false, nil)
	require.NoError(t, err)

	return g
}
