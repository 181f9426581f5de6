package geograph

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NodeID is an opaque handle into a Graph. Two handles that denote the same
// node compare equal with ==. NilNode is the sentinel for "no node" (an
// absent parent, a failed lookup); a Graph never considers NilNode to
// satisfy Contains.
type NodeID string

// NilNode is the zero value of NodeID, reserved to mean "no node".
const NilNode NodeID = ""

// Point is a pair of finite real world coordinates. It is a direct alias of
// gonum's r2.Vec, so Point arithmetic (Add, Sub, Scale, Dot, Cross) and the
// r2.Norm/r2.Unit free functions are available without conversion.
type Point = r2.Vec

// Region is an ordered sequence of world points enclosing a node. A nil or
// empty Region means the node has no polygonal region; visibility falls back
// to a point surrogate for such nodes (see arc.CreateNodeArc).
type Region []Point

// EuclideanDistance is the default Graph.Distance implementation: ordinary
// straight-line distance between two points.
func EuclideanDistance(a, b Point) float64 {
	return r2.Norm(a.Sub(b))
}

// ChebyshevDistance is a common heuristic for 4/8-connected square grids:
// max(|dx|, |dy|). It is admissible whenever the cheapest single step costs
// at least 1 world unit.
func ChebyshevDistance(a, b Point) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

// ManhattanDistance sums axis-aligned displacement; admissible for
// 4-connected grids whose diagonal moves are disallowed.
func ManhattanDistance(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
