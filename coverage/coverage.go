package coverage

import "github.com/katalvlaran/geowalk/geograph"

// sourceCost is the sentinel path_costs entry for the source node itself:
// "reached with cost -1, do not visit" (spec §4.4).
const sourceCost = -1

// Result is the outcome of a Run: every node reachable from the source
// within budget, mapped to the minimum cost that proved its reachability.
type Result struct {
	Nodes map[geograph.NodeID]float64
}

// Engine runs cost-bounded coverage exploration. An Engine instance reuses
// its best-known-cost map across calls to Run and is not re-entrant;
// concurrent queries require separate instances (spec §5).
type Engine struct {
	pathCosts map[geograph.NodeID]float64
	result    map[geograph.NodeID]float64
}

func (e *Engine) reset() {
	if e.pathCosts == nil {
		e.pathCosts = make(map[geograph.NodeID]float64)
		e.result = make(map[geograph.NodeID]float64)
	}
	for k := range e.pathCosts {
		delete(e.pathCosts, k)
	}
	for k := range e.result {
		delete(e.result, k)
	}
}

// Run enumerates the nodes reachable from source within maxCost, per
// agent's step costs and occupancy rule. It returns (Result{}, false,
// ErrBadMaxCost) for maxCost <= 0 and (Result{}, false, nil) for an
// unrecognised source; otherwise (Result, true, nil), Result.Nodes possibly
// empty.
func (e *Engine) Run(g geograph.Graph, agent geograph.Agent, source geograph.NodeID, maxCost float64) (Result, bool, error) {
	e.reset()
	defer e.reset()

	if g == nil {
		return Result{}, false, ErrNilGraph
	}
	if agent == nil {
		return Result{}, false, ErrNilAgent
	}
	if maxCost <= 0 {
		return Result{}, false, ErrBadMaxCost
	}
	if !g.Contains(source) {
		return Result{}, false, nil
	}

	e.pathCosts[source] = sourceCost
	e.expand(g, agent, source, 0, maxCost)

	nodes := make(map[geograph.NodeID]float64, len(e.result))
	for n, c := range e.result {
		nodes[n] = c
	}

	return Result{Nodes: nodes}, true, nil
}

// expand is the recursive exploration step of spec §4.4.
func (e *Engine) expand(g geograph.Graph, agent geograph.Agent, node geograph.NodeID, cumulativeCost, maxCost float64) {
	relaxed := agent.RelaxedRange()

	for _, neighbour := range g.Neighbours(node) {
		// Fast-path: a strictly better route to neighbour is already known
		// even before accounting for this step's cost.
		if prev, seen := e.pathCosts[neighbour]; seen && prev <= cumulativeCost {
			continue
		}

		if !agent.CanMakeStep(node, neighbour) {
			continue
		}

		step := agent.StepCost(node, neighbour)
		if !relaxed && cumulativeCost+step > maxCost {
			continue
		}

		newCost := cumulativeCost + step
		if prev, seen := e.pathCosts[neighbour]; seen && prev <= newCost {
			continue
		}

		_, seenBefore := e.pathCosts[neighbour]
		_, inResult := e.result[neighbour]
		if inResult || (!seenBefore && agent.CanOccupy(neighbour)) {
			e.result[neighbour] = newCost
		}

		e.pathCosts[neighbour] = newCost

		if newCost < maxCost {
			e.expand(g, agent, neighbour, newCost, maxCost)
		}
	}
}
