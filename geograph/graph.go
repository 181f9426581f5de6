package geograph

// Graph is the abstract 2D graph façade every engine in geowalk is
// parameterised over. Implementations may be a regular polygon grid
// (gridworld.SquareGrid, gridworld.HexGrid) or an irregular planar
// subdivision (Delaunay/Voronoi). Graph is treated as pure: engines may call
// any method any number of times per query with no observable side effects,
// and a single Graph may be shared read-only across concurrently running
// engine instances.
//
// Invariants (see spec §3):
//   - Neighbours(n) returns at most Connectivity() nodes; Connectivity() ≥ 1.
//   - Distance(a, b) == 0 iff a == b; positive for distinct valid nodes;
//     symmetric; triangle-inequality-respecting.
//   - Distance is negative only when one argument is invalid per Contains.
type Graph interface {
	// Connectivity is the maximum neighbour count of any node.
	Connectivity() int

	// NodeCount is the total number of nodes in the graph.
	NodeCount() int

	// Nodes returns every node handle. Order is implementation-defined but
	// stable across calls on an unmutated graph.
	Nodes() []NodeID

	// Contains reports whether n is a structurally valid handle into this
	// graph. It is the sole authority on node validity.
	Contains(n NodeID) bool

	// Distance returns the graph's notion of distance between a and b, used
	// by engines as an admissible heuristic. It must never exceed
	// Agent.StepCost(a, b) for neighbouring a, b.
	Distance(a, b NodeID) float64

	// Neighbours returns the nodes directly reachable from n, length at most
	// Connectivity().
	Neighbours(n NodeID) []NodeID

	// WorldLocation returns the world-space centre of node n.
	WorldLocation(n NodeID) Point

	// WorldRegion returns the polygonal region enclosing n, and false if n
	// has no region (visibility then falls back to a point surrogate).
	WorldRegion(n NodeID) (Region, bool)

	// NearestNode returns the node whose world region (or location, absent a
	// region) is closest to p. None of the four search engines calls it.
	NearestNode(p Point) (NodeID, bool)
}
