// Package gridworld provides concrete geograph.Graph/geograph.Agent
// realizations over regular tilings: SquareGrid (4- or 8-connected, the
// "r,c" row-major vertex scheme) and HexGrid (axial-coordinate hexagons).
// Both embed occupancy (blocked cells) directly, since spec Non-goals rule
// out dynamic graph mutation mid-query. A blocked cell stays topologically
// present: Neighbours still reports it, since adjacency is fixed grid shape,
// but it is never occupiable or steppable into (see UniformAgent).
package gridworld

import "errors"

// Sentinel errors for grid construction.
var (
	ErrBadDimensions = errors.New("gridworld: rows and cols must each be >= 1")
	ErrBadRadius     = errors.New("gridworld: radius must be >= 0")
)
