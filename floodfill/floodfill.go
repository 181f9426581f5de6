package floodfill

import "github.com/katalvlaran/geowalk/geograph"

// Match is the predicate flood-fill spreads through: true means a node
// belongs to the contiguous region being filled.
type Match func(n geograph.NodeID) bool

// Walk runs a flood-fill DFS. An instance reuses its visited set across
// calls to Run and is not re-entrant (spec §5).
type Walk struct {
	visited map[geograph.NodeID]bool
	result  []geograph.NodeID
}

func (w *Walk) reset() {
	if w.visited == nil {
		w.visited = make(map[geograph.NodeID]bool)
	}
	for k := range w.visited {
		delete(w.visited, k)
	}
	w.result = w.result[:0]
}

// Run returns every node reachable from source through a connected chain of
// match-satisfying neighbours, excluding source. source itself is not
// tested against match: the spec leaves match(source) irrelevant to the
// result.
func (w *Walk) Run(g geograph.Graph, source geograph.NodeID, match Match) ([]geograph.NodeID, error) {
	w.reset()
	defer w.reset()

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(source) {
		return nil, nil
	}

	w.visited[source] = true
	w.visit(g, source, match)

	out := make([]geograph.NodeID, len(w.result))
	copy(out, w.result)

	return out, nil
}

func (w *Walk) visit(g geograph.Graph, node geograph.NodeID, match Match) {
	for _, n := range g.Neighbours(node) {
		if w.visited[n] {
			continue
		}
		w.visited[n] = true

		if !match(n) {
			continue
		}

		w.result = append(w.result, n)
		w.visit(g, n, match)
	}
}
