package gridworld

import (
	"fmt"

	"github.com/katalvlaran/geowalk/geograph"
)

// squareIDFmt mirrors the teacher's grid builder: a fixed, documented "r,c"
// row-major vertex ID scheme, deliberately bypassing any pluggable ID
// function to keep coordinates explicit and parseable.
const squareIDFmt = "%d,%d"

// conn4Offsets and conn8Offsets are the orthogonal and diagonal neighbour
// steps as (dr, dc) pairs, in a stable emission order (W, S, E, N, then the
// diagonals SW, SE, NE, NW).
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// SquareGrid is a rows x cols orthogonal grid with unit cell size, 4- or
// 8-connected, with a fixed set of blocked cells. It implements
// geograph.Graph.
type SquareGrid struct {
	rows, cols int
	diagonal   bool
	blocked    map[geograph.NodeID]bool
	offsets    [][2]int
}

// NewSquareGrid builds a rows x cols grid. diagonal selects 8-connectivity;
// false gives the orthogonal 4-connected scheme. blocked lists "r,c" node
// IDs excluded from traversal and occupancy; a nil or empty set blocks
// nothing.
func NewSquareGrid(rows, cols int, diagonal bool, blocked map[geograph.NodeID]bool) (*SquareGrid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}

	offsets := conn4Offsets
	if diagonal {
		offsets = conn8Offsets
	}

	b := make(map[geograph.NodeID]bool, len(blocked))
	for k, v := range blocked {
		if v {
			b[k] = true
		}
	}

	return &SquareGrid{rows: rows, cols: cols, diagonal: diagonal, blocked: b, offsets: offsets}, nil
}

// SquareID formats the "r,c" vertex ID for cell (r, c).
func SquareID(r, c int) geograph.NodeID {
	return geograph.NodeID(fmt.Sprintf(squareIDFmt, r, c))
}

func (g *SquareGrid) parse(n geograph.NodeID) (r, c int, ok bool) {
	if _, err := fmt.Sscanf(string(n), squareIDFmt, &r, &c); err != nil {
		return 0, 0, false
	}

	return r, c, true
}

func (g *SquareGrid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Connectivity returns 4 or 8 depending on how the grid was constructed.
func (g *SquareGrid) Connectivity() int {
	if g.diagonal {
		return 8
	}

	return 4
}

// NodeCount returns rows*cols, including blocked cells (blocked cells are
// still structurally valid nodes; they are simply never occupiable or
// traversed into).
func (g *SquareGrid) NodeCount() int {
	return g.rows * g.cols
}

// Nodes returns every cell ID in row-major order.
func (g *SquareGrid) Nodes() []geograph.NodeID {
	nodes := make([]geograph.NodeID, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			nodes = append(nodes, SquareID(r, c))
		}
	}

	return nodes
}

// Contains reports whether n parses to an in-bounds cell.
func (g *SquareGrid) Contains(n geograph.NodeID) bool {
	r, c, ok := g.parse(n)

	return ok && g.inBounds(r, c)
}

// Distance is Chebyshev distance for 8-connected grids (diagonal moves cost
// the same as orthogonal ones) and Manhattan distance for 4-connected grids,
// both admissible heuristics for unit step costs.
func (g *SquareGrid) Distance(a, b geograph.NodeID) float64 {
	if !g.Contains(a) || !g.Contains(b) {
		return -1
	}

	pa, pb := g.WorldLocation(a), g.WorldLocation(b)
	if g.diagonal {
		return geograph.ChebyshevDistance(pa, pb)
	}

	return geograph.ManhattanDistance(pa, pb)
}

// Neighbours returns the in-bounds adjacent cells of n. Blocked cells are
// still returned as neighbours (occupancy, not adjacency, is where an Agent
// rejects them via CanOccupy); a grid's topology does not change because a
// cell happens to be blocked.
func (g *SquareGrid) Neighbours(n geograph.NodeID) []geograph.NodeID {
	r, c, ok := g.parse(n)
	if !ok {
		return nil
	}

	nbs := make([]geograph.NodeID, 0, len(g.offsets))
	for _, d := range g.offsets {
		nr, nc := r+d[0], c+d[1]
		if g.inBounds(nr, nc) {
			nbs = append(nbs, SquareID(nr, nc))
		}
	}

	return nbs
}

// WorldLocation places cell (r, c) at world point (c, r): unit spacing,
// column as x, row as y.
func (g *SquareGrid) WorldLocation(n geograph.NodeID) geograph.Point {
	r, c, ok := g.parse(n)
	if !ok {
		return geograph.Point{}
	}

	return geograph.Point{X: float64(c), Y: float64(r)}
}

// WorldRegion returns the unit square centred on the cell, its four corners
// in clockwise order starting from the top-left (consistent with the
// package's y-down screen convention).
func (g *SquareGrid) WorldRegion(n geograph.NodeID) (geograph.Region, bool) {
	loc, ok := g.WorldLocation(n), g.Contains(n)
	if !ok {
		return nil, false
	}

	const half = 0.5

	return geograph.Region{
		{X: loc.X - half, Y: loc.Y - half},
		{X: loc.X + half, Y: loc.Y - half},
		{X: loc.X + half, Y: loc.Y + half},
		{X: loc.X - half, Y: loc.Y + half},
	}, true
}

// NearestNode rounds p to the closest in-bounds cell.
func (g *SquareGrid) NearestNode(p geograph.Point) (geograph.NodeID, bool) {
	r := clampRound(p.Y, g.rows)
	c := clampRound(p.X, g.cols)
	if !g.inBounds(r, c) {
		return geograph.NilNode, false
	}

	return SquareID(r, c), true
}

// IsBlocked reports whether n is in the grid's blocked set.
func (g *SquareGrid) IsBlocked(n geograph.NodeID) bool {
	return g.blocked[n]
}

func clampRound(v float64, limit int) int {
	i := int(v + 0.5)
	if i < 0 {
		return 0
	}
	if i >= limit {
		return limit - 1
	}

	return i
}
