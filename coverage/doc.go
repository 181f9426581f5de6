// Package coverage enumerates the nodes reachable from a source node within
// a cost budget, with an optional relaxed final-step rule that lets a node
// whose own step cost would overshoot the budget still count as a leaf,
// provided its predecessor was strictly under budget.
//
// Complexity:
//
//   - Time:  bounded by the reachable subgraph within budget; the recursive
//     expansion revisits a neighbour only when a strictly cheaper route to
//     it has been found, so a node may be expanded more than once.
//   - Space: O(V) for the best-known-cost map.
//
// Errors (sentinel):
//
//   - ErrNilGraph   if the graph is nil.
//   - ErrNilAgent   if the agent is nil.
//   - ErrBadMaxCost if maxCost <= 0.
package coverage

import "errors"

// Sentinel errors for coverage preconditions.
var (
	ErrNilGraph   = errors.New("coverage: graph is nil")
	ErrNilAgent   = errors.New("coverage: agent is nil")
	ErrBadMaxCost = errors.New("coverage: max cost must be positive")
)
