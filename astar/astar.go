package astar

import (
	"github.com/katalvlaran/geowalk/geograph"
	"github.com/katalvlaran/geowalk/pathnode"
)

// Result is the outcome of a successful Run: the ordered path from source to
// the accepted end node, its total cost, and the per-step g cost used by
// GetLastNode/GetLastPathNode.
type Result struct {
	Path      []geograph.NodeID // source ... end, inclusive
	GCosts    []float64         // GCosts[i] is the cost of reaching Path[i] from source
	TotalCost float64
}

// BestNode returns the final node of the path, or geograph.NilNode if the
// result is empty.
func (r Result) BestNode() geograph.NodeID {
	if len(r.Path) == 0 {
		return geograph.NilNode
	}

	return r.Path[len(r.Path)-1]
}

// GetLastNode walks backwards from the end of the path toward the source and
// returns the last node satisfying both node.G <= maxCost (or, if
// agent.RelaxedRange() holds, the predecessor's G < maxCost) and
// agent.CanOccupy(node). If none qualifies, it returns the source node.
// maxCost must be positive.
//
// GetLastPathNode is an alias kept for parity with spec §6, which names
// get_last_node and get_last_path_node as distinct external entry points;
// here both resolve to the same flattened Result data.
func (r Result) GetLastNode(agent geograph.Agent, maxCost float64) (geograph.NodeID, error) {
	if maxCost <= 0 {
		return geograph.NilNode, ErrBadMaxCost
	}

	if len(r.Path) == 0 {
		return geograph.NilNode, nil
	}

	relaxed := agent.RelaxedRange()
	for i := len(r.Path) - 1; i >= 1; i-- {
		node := r.Path[i]
		ok := r.GCosts[i] <= maxCost
		if relaxed {
			ok = r.GCosts[i-1] < maxCost
		}
		if ok && agent.CanOccupy(node) {
			return node, nil
		}
	}

	return r.Path[0], nil
}

// GetLastPathNode is an alias for GetLastNode (see its doc comment).
func (r Result) GetLastPathNode(agent geograph.Agent, maxCost float64) (geograph.NodeID, error) {
	return r.GetLastNode(agent, maxCost)
}

// Engine runs A* searches. An Engine instance is stateful: it reuses its
// internal open/closed maps and PathNode arena across calls to Run, so it is
// not re-entrant. Concurrent searches require separate Engine instances,
// though they may safely share a read-only Graph (spec §5).
type Engine struct {
	arena     pathnode.Arena
	open      pathnode.OpenList
	openMap   map[geograph.NodeID]*pathnode.PathNode
	closedMap map[geograph.NodeID]*pathnode.PathNode
	stack     []*pathnode.PathNode // reused propagation work-stack, §4.3.1
}

// reset clears every container so a new Run starts from a clean slate. It is
// called both before and after Run (even on failure paths), per spec §5's
// "state reset discipline". Every node still tracked in openMap/closedMap is
// returned to the arena first: Result copies out the data it needs
// (reconstruct), so the PathNodes themselves are free to recycle.
func (e *Engine) reset() {
	if e.openMap == nil {
		e.openMap = make(map[geograph.NodeID]*pathnode.PathNode)
		e.closedMap = make(map[geograph.NodeID]*pathnode.PathNode)
	}
	for k, p := range e.openMap {
		e.arena.Release(p)
		delete(e.openMap, k)
	}
	for k, p := range e.closedMap {
		e.arena.Release(p)
		delete(e.closedMap, k)
	}
	e.open.Clear()
	e.stack = e.stack[:0]
}

// Run searches graph g for a path from source to target under agent's
// traversal rules. It returns the result, whether a path was found, and an
// error only for precondition violations (spec §7): a nil graph/agent, a
// nil-node source/target, or an out-of-range RelativeLimit option. An
// unrecognised source or target (per g.Contains) is a clean "no path",
// returned as (Result{}, false, nil).
func (e *Engine) Run(g geograph.Graph, agent geograph.Agent, source, target geograph.NodeID, opts ...Option) (Result, bool, error) {
	e.reset()
	defer e.reset()

	if g == nil {
		return Result{}, false, ErrNilGraph
	}
	if agent == nil {
		return Result{}, false, ErrNilAgent
	}
	if source == geograph.NilNode || target == geograph.NilNode {
		return Result{}, false, ErrNilNode
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, false, cfg.err
	}

	if !g.Contains(source) || !g.Contains(target) {
		return Result{}, false, nil
	}

	var absoluteLimit float64
	if cfg.RelativeLimit > 0 {
		absoluteLimit = cfg.RelativeLimit * g.Distance(source, target)
	}

	start := e.arena.Get(source, 0, g.Distance(source, target), nil)
	e.open.Push(start)
	e.openMap[source] = start

	less := pathnode.DefaultLess
	if cfg.UseWorldDistance {
		less = e.worldDistanceLess(g, target)
	}

	for e.open.Len() > 0 {
		best := e.open.PopBest(less)
		delete(e.openMap, best.Node)
		e.closedMap[best.Node] = best

		if agent.IsNearTarget(best.Node, target, best.H) && (best.Node == source || agent.CanOccupy(best.Node)) {
			return e.reconstruct(best), true, nil
		}

		e.expand(g, agent, best, absoluteLimit, source, target)
	}

	return Result{}, false, nil
}

// worldDistanceLess breaks f ties by preferring the candidate closer to
// target in squared world distance (cheaper than a square root, and order
// preserving for the comparison).
func (e *Engine) worldDistanceLess(g geograph.Graph, target geograph.NodeID) pathnode.Less {
	targetLoc := g.WorldLocation(target)

	return func(a, b *pathnode.PathNode) bool {
		fa, fb := a.F(), b.F()
		if fa != fb {
			return fa < fb
		}
		da := squaredDistance(g.WorldLocation(a.Node), targetLoc)
		db := squaredDistance(g.WorldLocation(b.Node), targetLoc)

		return da < db
	}
}

func squaredDistance(a, b geograph.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// expand is link_child from spec §4.3: for each neighbour c of best with
// CanMakeStep(best, c), improve or create c's PathNode.
func (e *Engine) expand(g geograph.Graph, agent geograph.Agent, best *pathnode.PathNode, absoluteLimit float64, source, target geograph.NodeID) {
	for _, c := range g.Neighbours(best.Node) {
		if !agent.CanMakeStep(best.Node, c) {
			continue
		}

		tentativeG := best.G + agent.StepCost(best.Node, c)

		if existing, ok := e.openMap[c]; ok {
			if existing.G > tentativeG {
				existing.G = tentativeG
				existing.Parent = best
				best.LinkChild(existing)
			}
			continue
		}

		if existing, ok := e.closedMap[c]; ok {
			if existing.G > tentativeG {
				existing.G = tentativeG
				existing.Parent = best
				best.LinkChild(existing)
				e.propagate(agent, existing)
			}
			continue
		}

		if absoluteLimit > 0 {
			if g.Distance(source, c)+g.Distance(c, target) > absoluteLimit {
				continue
			}
		}

		child := e.arena.Get(c, tentativeG, g.Distance(c, target), best)
		best.LinkChild(child)
		e.open.Push(child)
		e.openMap[c] = child
	}
}

// propagate is the parent-update propagation of spec §4.3.1: a LIFO
// work-stack seeded with the improved (already closed) node, lowering every
// descendant whose recorded g now exceeds a cheaper route through it.
func (e *Engine) propagate(agent geograph.Agent, improved *pathnode.PathNode) {
	e.stack = append(e.stack, improved)
	for len(e.stack) > 0 {
		n := len(e.stack) - 1
		parent := e.stack[n]
		e.stack = e.stack[:n]

		for _, child := range parent.Children {
			candidate := parent.G + agent.StepCost(parent.Node, child.Node)
			if child.G > candidate {
				child.G = candidate
				child.Parent = parent
				e.stack = append(e.stack, child)
			}
		}
	}
}

// reconstruct follows parent links from best back to the source and reverses
// them into a source-to-best ordered Result.
func (e *Engine) reconstruct(best *pathnode.PathNode) Result {
	var path []geograph.NodeID
	var gcosts []float64
	for n := best; n != nil; n = n.Parent {
		path = append(path, n.Node)
		gcosts = append(gcosts, n.G)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
		gcosts[i], gcosts[j] = gcosts[j], gcosts[i]
	}

	return Result{Path: path, GCosts: gcosts, TotalCost: best.G}
}
