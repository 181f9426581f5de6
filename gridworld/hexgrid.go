package gridworld

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geowalk/geograph"
)

// hexIDFmt is the axial-coordinate analogue of the square grid's "r,c"
// scheme: a fixed "q,r" vertex ID, bypassing any pluggable ID function.
const hexIDFmt = "%d,%d"

// axialOffsets are the six axial-coordinate neighbour steps of a
// pointy-top hexagon, in a stable emission order: E, NE, NW, W, SW, SE,
// i.e. counter-clockwise on screen (y down).
var axialOffsets = [][2]int{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}

// HexGrid is a hexagonal tiling addressed by axial coordinates (q, r) within
// radius hops of the origin, with a fixed set of blocked cells. It
// implements geograph.Graph.
type HexGrid struct {
	radius  int
	size    float64 // world-space hexagon circumradius
	blocked map[geograph.NodeID]bool
}

// NewHexGrid builds a hexagonal grid of all axial cells within radius hops
// of the origin (q=0, r=0), inclusive. size is the world-space circumradius
// of one hexagon, used for WorldLocation/WorldRegion; size <= 0 defaults
// to 1.
func NewHexGrid(radius int, size float64, blocked map[geograph.NodeID]bool) (*HexGrid, error) {
	if radius < 0 {
		return nil, ErrBadRadius
	}
	if size <= 0 {
		size = 1
	}

	b := make(map[geograph.NodeID]bool, len(blocked))
	for k, v := range blocked {
		if v {
			b[k] = true
		}
	}

	return &HexGrid{radius: radius, size: size, blocked: b}, nil
}

// HexID formats the "q,r" vertex ID for axial cell (q, r).
func HexID(q, r int) geograph.NodeID {
	return geograph.NodeID(fmt.Sprintf(hexIDFmt, q, r))
}

func (g *HexGrid) parse(n geograph.NodeID) (q, r int, ok bool) {
	if _, err := fmt.Sscanf(string(n), hexIDFmt, &q, &r); err != nil {
		return 0, 0, false
	}

	return q, r, true
}

// axialDistance is the standard hex-grid metric: the number of single-step
// hops between two axial cells.
func axialDistance(q1, r1, q2, r2 int) int {
	dq, dr := q1-q2, r1-r2
	ds := -dq - dr
	maxAbs := func(a, b, c int) int {
		if a < 0 {
			a = -a
		}
		if b < 0 {
			b = -b
		}
		if c < 0 {
			c = -c
		}
		m := a
		if b > m {
			m = b
		}
		if c > m {
			m = c
		}

		return m
	}

	return maxAbs(dq, dr, ds)
}

func (g *HexGrid) inRange(q, r int) bool {
	return axialDistance(q, r, 0, 0) <= g.radius
}

// Connectivity is always 6: every hexagon has six neighbours, in range or
// not (out-of-range ones are simply excluded by Neighbours/Contains).
func (g *HexGrid) Connectivity() int { return 6 }

// NodeCount returns the number of axial cells within radius, 3*radius^2 +
// 3*radius + 1 (the closed-form size of a hexagonal region of that radius).
func (g *HexGrid) NodeCount() int {
	return 3*g.radius*g.radius + 3*g.radius + 1
}

// Nodes enumerates every in-range axial cell, q ascending then r ascending.
func (g *HexGrid) Nodes() []geograph.NodeID {
	nodes := make([]geograph.NodeID, 0, g.NodeCount())
	for q := -g.radius; q <= g.radius; q++ {
		for r := -g.radius; r <= g.radius; r++ {
			if g.inRange(q, r) {
				nodes = append(nodes, HexID(q, r))
			}
		}
	}

	return nodes
}

// Contains reports whether n parses to an axial cell within radius.
func (g *HexGrid) Contains(n geograph.NodeID) bool {
	q, r, ok := g.parse(n)

	return ok && g.inRange(q, r)
}

// Distance is the axial hex-grid step distance scaled by the hexagon's
// world size, admissible for unit-weighted single-hop moves.
func (g *HexGrid) Distance(a, b geograph.NodeID) float64 {
	qa, ra, ok := g.parse(a)
	if !ok || !g.inRange(qa, ra) {
		return -1
	}
	qb, rb, ok := g.parse(b)
	if !ok || !g.inRange(qb, rb) {
		return -1
	}

	return float64(axialDistance(qa, ra, qb, rb)) * g.size
}

// Neighbours returns the in-range adjacent hexagons of n. As with
// SquareGrid, blocked cells remain topological neighbours; an Agent's
// CanOccupy/CanMakeStep is where occupancy is enforced.
func (g *HexGrid) Neighbours(n geograph.NodeID) []geograph.NodeID {
	q, r, ok := g.parse(n)
	if !ok {
		return nil
	}

	nbs := make([]geograph.NodeID, 0, 6)
	for _, d := range axialOffsets {
		nq, nr := q+d[0], r+d[1]
		if g.inRange(nq, nr) {
			nbs = append(nbs, HexID(nq, nr))
		}
	}

	return nbs
}

// WorldLocation converts axial (q, r) to pointy-top pixel coordinates
// scaled by the hexagon's circumradius.
func (g *HexGrid) WorldLocation(n geograph.NodeID) geograph.Point {
	q, r, ok := g.parse(n)
	if !ok {
		return geograph.Point{}
	}

	x := g.size * (math.Sqrt(3)*float64(q) + math.Sqrt(3)/2*float64(r))
	y := g.size * (1.5 * float64(r))

	return geograph.Point{X: x, Y: y}
}

// WorldRegion returns the six corners of the pointy-top hexagon centred on
// the cell, in clockwise order starting from the top vertex.
func (g *HexGrid) WorldRegion(n geograph.NodeID) (geograph.Region, bool) {
	if !g.Contains(n) {
		return nil, false
	}

	center := g.WorldLocation(n)
	region := make(geograph.Region, 0, 6)
	for i := 0; i < 6; i++ {
		angle := math.Pi/180*60*float64(i) - math.Pi/2
		region = append(region, geograph.Point{
			X: center.X + g.size*math.Cos(angle),
			Y: center.Y + g.size*math.Sin(angle),
		})
	}

	return region, true
}

// NearestNode does a linear scan over in-range cells for the closest
// world-location match; adequate for the small demo-sized grids this
// package targets.
func (g *HexGrid) NearestNode(p geograph.Point) (geograph.NodeID, bool) {
	var (
		best     geograph.NodeID
		bestDist = math.Inf(1)
		found    bool
	)
	for q := -g.radius; q <= g.radius; q++ {
		for r := -g.radius; r <= g.radius; r++ {
			if !g.inRange(q, r) {
				continue
			}
			n := HexID(q, r)
			if d := geograph.EuclideanDistance(g.WorldLocation(n), p); d < bestDist {
				bestDist, best, found = d, n, true
			}
		}
	}

	return best, found
}

// IsBlocked reports whether n is in the grid's blocked set.
func (g *HexGrid) IsBlocked(n geograph.NodeID) bool {
	return g.blocked[n]
}
