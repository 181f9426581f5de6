// Package geograph defines the abstract 2D graph and agent façades shared by
// every search engine in geowalk: astar, coverage, floodfill, and visibility.
//
// A Graph is an opaque collection of nodes that occupy polygonal regions in a
// planar world. It may be realised by a regular grid (see gridworld) or by an
// irregular planar subdivision; the engines never assume which. An Agent
// layers movement rules — step cost, occupancy, step legality — on top of a
// Graph without mutating it.
//
// Both façades are treated as pure: the engines may call their methods any
// number of times per query with no observable side effects, and an engine
// instance may be reused across queries against different Graph/Agent pairs
// provided each query clears its own internal state (see astar.Engine,
// coverage.Engine, floodfill.Walk, visibility.Engine).
package geograph
