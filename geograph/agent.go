package geograph

// Agent layers an individual mover's traversal rules on top of a Graph. An
// Agent must be stateless with respect to the mover's current position: every
// method depends only on the arguments it is given (spec §3, Agent
// invariants).
//
// Invariants:
//   - StepCost(a, b) > 0 for every neighbour pair.
//   - StepCost(a, b) >= the Graph's Distance(a, b) (admissibility).
//   - RelaxedRange is constant for the lifetime of the Agent value.
type Agent interface {
	// RelaxedRange reports whether this agent may end a coverage/A* query on
	// a node whose entry cost overshoots the budget, provided the
	// predecessor was strictly under budget (spec §4.3.2, §4.4).
	RelaxedRange() bool

	// CanMakeStep reports whether the agent is allowed to move from a to its
	// neighbour b.
	CanMakeStep(a, b NodeID) bool

	// CanOccupy reports whether the agent may end its movement on n.
	CanOccupy(n NodeID) bool

	// StepCost is the cost of moving from a to neighbour b. Must be
	// strictly positive and at least the Graph's Distance(a, b).
	StepCost(a, b NodeID) float64

	// IsNearTarget reports whether candidate is an acceptable stand-in for
	// target. distance carries the graph distance between candidate and
	// target as already computed by the caller; an agent may use it, ignore
	// it, or — if it is negative — recompute its own notion of distance.
	// The default contract (see DefaultIsNearTarget) is distance == 0.
	IsNearTarget(candidate, target NodeID, distance float64) bool
}

// DefaultIsNearTarget implements the contract's default: candidate is near
// target only when the supplied distance is exactly zero, i.e. candidate and
// target are the same node. Agent implementations that have no special
// "close enough" rule can delegate to this helper from their IsNearTarget
// method.
func DefaultIsNearTarget(distance float64) bool {
	return distance == 0
}
