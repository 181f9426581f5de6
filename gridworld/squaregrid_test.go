package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/gridworld"
)

func TestNewSquareGrid_InvalidDimensions(t *testing.T) {
	_, err := gridworld.NewSquareGrid(0, 3, false, nil)
	assert.ErrorIs(t, err, gridworld.ErrBadDimensions)
}

func TestSquareGrid_NodeCountAndNodes(t *testing.T) {
	g, err := gridworld.NewSquareGrid(2, 3, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Len(t, g.Nodes(), 6)
}

func TestSquareGrid_Connectivity(t *testing.T) {
	g4, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g4.Connectivity())

	g8, err := gridworld.NewSquareGrid(3, 3, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, g8.Connectivity())
}

func TestSquareGrid_NeighboursOrthogonal(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	nbs := g.Neighbours(gridworld.SquareID(1, 1))
	assert.Len(t, nbs, 4)
	assert.ElementsMatch(t, []geograph.NodeID{
		gridworld.SquareID(0, 1), gridworld.SquareID(2, 1),
		gridworld.SquareID(1, 0), gridworld.SquareID(1, 2),
	}, nbs)
}

func TestSquareGrid_NeighboursCornerDiagonal(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, true, nil)
	require.NoError(t, err)
	nbs := g.Neighbours(gridworld.SquareID(0, 0))
	assert.Len(t, nbs, 3) // E, S, SE only; corner cell has no N/W/NE/NW/SW
}

func TestSquareGrid_ContainsOutOfBounds(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	assert.True(t, g.Contains(gridworld.SquareID(0, 0)))
	assert.False(t, g.Contains(gridworld.SquareID(3, 0)))
	assert.False(t, g.Contains("garbage"))
}

func TestSquareGrid_Distance(t *testing.T) {
	g4, err := gridworld.NewSquareGrid(5, 5, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, g4.Distance(gridworld.SquareID(0, 0), gridworld.SquareID(2, 2)))

	g8, err := gridworld.NewSquareGrid(5, 5, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, g8.Distance(gridworld.SquareID(0, 0), gridworld.SquareID(2, 2)))
}

func TestSquareGrid_WorldRegionIsUnitSquare(t *testing.T) {
	g, err := gridworld.NewSquareGrid(3, 3, false, nil)
	require.NoError(t, err)
	region, ok := g.WorldRegion(gridworld.SquareID(1, 1))
	require.True(t, ok)
	assert.Len(t, region, 4)
}

func TestSquareGrid_NearestNode(t *testing.T) {
	g, err := gridworld.NewSquareGrid(5, 5, false, nil)
	require.NoError(t, err)
	n, ok := g.NearestNode(geograph.Point{X: 2.4, Y: 2.6})
	require.True(t, ok)
	assert.Equal(t, gridworld.SquareID(3, 2), n)
}

func TestSquareGrid_BlockedCellsStillTopologicallyPresent(t *testing.T) {
	blocked := map[geograph.NodeID]bool{gridworld.SquareID(1, 1): true}
	g, err := gridworld.NewSquareGrid(3, 3, false, blocked)
	require.NoError(t, err)
	assert.True(t, g.Contains(gridworld.SquareID(1, 1)))
	assert.Contains(t, g.Neighbours(gridworld.SquareID(0, 1)), gridworld.SquareID(1, 1))
	assert.True(t, g.IsBlocked(gridworld.SquareID(1, 1)))
}
