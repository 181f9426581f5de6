// Package floodfill implements contiguous predicate-matching traversal over
// a geograph.Graph: starting from a source node, it visits every node
// reachable through an unbroken chain of match-satisfying neighbours and
// returns them, excluding the source itself.
//
// Complexity:
//
//   - Time:  O(V + E), standard DFS with a visited set.
//   - Space: O(V) for the visited set and recursion stack.
package floodfill

import "errors"

// ErrNilGraph indicates a nil Graph was passed to Run.
var ErrNilGraph = errors.New("floodfill: graph is nil")
