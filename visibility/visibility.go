package visibility

import (
	"github.com/katalvlaran/geowalk/arc"
	"github.com/katalvlaran/geowalk/geograph"
)

// Opaque reports whether n blocks line of sight.
type Opaque func(n geograph.NodeID) bool

// Result is the outcome of a Run.
type Result struct {
	Visible []geograph.NodeID
	Arcs    map[geograph.NodeID]arc.NodeArc
}

// Engine runs visibility queries. An Engine instance reuses its visited and
// obscurer maps across calls to Run and is not re-entrant (spec §5).
type Engine struct {
	visited   map[geograph.NodeID]*arc.NodeArc
	obscurers map[geograph.NodeID]*arc.NodeArc
}

func (e *Engine) reset() {
	if e.visited == nil {
		e.visited = make(map[geograph.NodeID]*arc.NodeArc)
		e.obscurers = make(map[geograph.NodeID]*arc.NodeArc)
	}
	for k := range e.visited {
		delete(e.visited, k)
	}
	for k := range e.obscurers {
		delete(e.obscurers, k)
	}
}

// Run finds every node visible from source, subject to isOpaque and the
// configured threshold/max distance. An unrecognised source is a clean
// "no result": (Result{}, false, nil).
func (e *Engine) Run(g geograph.Graph, source geograph.NodeID, isOpaque Opaque, opts ...Option) (Result, bool, error) {
	e.reset()
	defer e.reset()

	if g == nil {
		return Result{}, false, ErrNilGraph
	}
	if isOpaque == nil {
		return Result{}, false, ErrNilPredicate
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, false, cfg.err
	}

	if !g.Contains(source) {
		return Result{}, false, nil
	}

	e.findObscuringNodes(g, source, source, isOpaque, cfg.MaxDistance)
	visible := e.findVisibleNodes(cfg.Threshold)

	arcs := make(map[geograph.NodeID]arc.NodeArc, len(e.visited))
	for n, a := range e.visited {
		arcs[n] = *a
	}

	return Result{Visible: visible, Arcs: arcs}, true, nil
}

// findObscuringNodes is spec §4.8 phase 1: a DFS that builds the node-arc
// dictionary and the set of opaque nodes currently acting as obscurers.
// source is the fixed viewpoint every arc is measured from; node is the
// current DFS frontier used only to walk the graph's adjacency. It recurses
// into every in-range neighbour regardless of opacity (spec §9, open
// question 1).
func (e *Engine) findObscuringNodes(g geograph.Graph, source, node geograph.NodeID, isOpaque Opaque, maxDistance float64) {
	for _, nb := range g.Neighbours(node) {
		if nb == source {
			continue
		}
		if _, seen := e.visited[nb]; seen {
			continue
		}

		a := arc.CreateNodeArc(g, source, nb)
		if maxDistance > 0 && a.Distance > maxDistance {
			continue
		}

		e.visited[nb] = &a

		if isOpaque(nb) {
			coveredByExisting := false
			keys := make([]geograph.NodeID, 0, len(e.obscurers))
			for k := range e.obscurers {
				keys = append(keys, k)
			}
			for _, k := range keys {
				o := e.obscurers[k]
				switch arc.IsObscured(a, *o) {
				case -1:
					e.visited[nb].VisibleFraction = 0
					coveredByExisting = true
				case 1:
					o.VisibleFraction = 0
					delete(e.obscurers, k)
				}
			}
			if !coveredByExisting {
				e.obscurers[nb] = e.visited[nb]
			}
		}

		e.findObscuringNodes(g, source, nb, isOpaque, maxDistance)
	}
}

// findVisibleNodes is spec §4.8 phase 2: for every visited node not already
// fully obscured, shrink a working copy of its arc by every obscurer at
// least as close as it, and keep it if the remaining fraction clears
// threshold.
func (e *Engine) findVisibleNodes(threshold float64) []geograph.NodeID {
	var visible []geograph.NodeID

	for node, a := range e.visited {
		if a.VisibleFraction == 0 {
			continue
		}

		originalSweep := a.Sweep
		working := arc.NodeArc{Start: a.Start, Sweep: a.Sweep, Distance: a.Distance}
		for other, o := range e.obscurers {
			if other == node || o.Distance > a.Distance {
				continue
			}
			arc.Obscure(&working, *o)
			if originalSweep > 0 && working.Sweep/originalSweep < threshold {
				break
			}
		}

		fraction := 0.0
		if originalSweep > 0 {
			fraction = working.Sweep / originalSweep
		}
		a.VisibleFraction = fraction

		if fraction >= threshold {
			visible = append(visible, node)
		}
	}

	return visible
}
