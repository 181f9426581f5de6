package arc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geowalk/arc"
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/gridworld"
)

func TestNormalizeAngle_Wraps(t *testing.T) {
	assert.InDelta(t, 0, arc.NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, math.Pi, arc.NormalizeAngle(math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi+0.1, arc.NormalizeAngle(math.Pi+0.1), 1e-9)
}

func TestAngleBetween_Cardinal(t *testing.T) {
	origin := geograph.Point{X: 0, Y: 0}
	east := geograph.Point{X: 1, Y: 0}
	assert.InDelta(t, 0, arc.AngleBetween(origin, east), 1e-9)

	south := geograph.Point{X: 0, Y: 1}
	assert.InDelta(t, math.Pi/2, arc.AngleBetween(origin, south), 1e-9)
}

func TestCreateNodeArc_HexNeighbourHasPositiveSweep(t *testing.T) {
	g, err := gridworld.NewHexGrid(1, 1, nil)
	require.NoError(t, err)
	// Every hex cell has a region, so this covers the region-walking path of
	// CreateNodeArc, not the point-surrogate fallback: the arc of a real hex
	// neighbour has a positive sweep and starts fully visible.
	a := arc.CreateNodeArc(g, gridworld.HexID(0, 0), gridworld.HexID(1, 0))
	assert.Greater(t, a.Sweep, 0.0)
	assert.Equal(t, 1.0, a.VisibleFraction)
}

func TestObscure_TotallyObscured(t *testing.T) {
	near := arc.NodeArc{Start: -0.2, Sweep: 0.4, Distance: 1}
	far := arc.NodeArc{Start: -0.1, Sweep: 0.2, Distance: 2}
	arc.Obscure(&far, near)
	assert.Equal(t, 0.0, far.Sweep)
}

func TestObscure_Disjoint(t *testing.T) {
	near := arc.NodeArc{Start: 1, Sweep: 0.2, Distance: 1}
	far := arc.NodeArc{Start: -1, Sweep: 0.2, Distance: 2}
	original := far
	arc.Obscure(&far, near)
	assert.Equal(t, original, far)
}

func TestObscure_Idempotent(t *testing.T) {
	a := arc.NodeArc{Start: 0, Sweep: 0.5, Distance: 1}
	self := a
	arc.Obscure(&a, self)
	assert.InDelta(t, 0, a.Sweep, 1e-9)
}

func TestIsObscured_CloserCoveringWins(t *testing.T) {
	outer := arc.NodeArc{Start: -0.5, Sweep: 1.0, Distance: 1}
	inner := arc.NodeArc{Start: -0.1, Sweep: 0.2, Distance: 2}
	assert.Equal(t, -1, arc.IsObscured(inner, outer))
	assert.Equal(t, 1, arc.IsObscured(outer, inner))
}

func TestIsObscured_Unrelated(t *testing.T) {
	a := arc.NodeArc{Start: 0, Sweep: 0.1, Distance: 1}
	b := arc.NodeArc{Start: 2, Sweep: 0.1, Distance: 2}
	assert.Equal(t, 0, arc.IsObscured(a, b))
}
