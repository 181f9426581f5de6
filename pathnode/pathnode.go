package pathnode

import "github.com/katalvlaran/geowalk/geograph"

// PathNode is one visited-node record in an A* search tree. Created the
// first time a node is encountered, discarded when the owning engine clears
// its open/closed maps at the end of a query.
type PathNode struct {
	Node     geograph.NodeID // the node this record describes
	G        float64         // known cost from source
	H        float64         // heuristic estimate to target
	Parent   *PathNode       // nil for the source node
	Children []*PathNode     // every neighbour linked from this node; non-owning

	next *PathNode // intrusive open-list link; nil when not (or no longer) in the open list
}

// F returns g + h.
func (p *PathNode) F() float64 {
	return p.G + p.H
}

// Reset reinitialises p for reuse from a pool, clearing every field
// including the intrusive link and the children slice (retaining its
// backing array).
func (p *PathNode) Reset(node geograph.NodeID, g, h float64, parent *PathNode) {
	p.Node = node
	p.G = g
	p.H = h
	p.Parent = parent
	p.Children = p.Children[:0]
	p.next = nil
}

// LinkChild records child as having been linked from p. It does not take
// ownership of child: the owning open/closed maps do.
func (p *PathNode) LinkChild(child *PathNode) {
	p.Children = append(p.Children, child)
}

// View is a read-only snapshot of a PathNode, the only form in which callers
// outside this package and astar ever observe search-tree state. Parent is
// geograph.NilNode when the node has no parent (the source).
type View struct {
	Node   geograph.NodeID
	G      float64
	H      float64
	F      float64
	Parent geograph.NodeID
}

// View snapshots p into a caller-safe, read-only value.
func (p *PathNode) View() View {
	parent := geograph.NilNode
	if p.Parent != nil {
		parent = p.Parent.Node
	}

	return View{
		Node:   p.Node,
		G:      p.G,
		H:      p.H,
		F:      p.F(),
		Parent: parent,
	}
}

// Arena allocates and recycles PathNodes for a single engine instance. Pooled
// nodes are fully re-initialised by Get before being handed out, so stale
// state never leaks across queries (spec §5, "Resource policy").
type Arena struct {
	free []*PathNode
}

// Get returns a PathNode initialised with the given fields, reusing a pooled
// node when one is available.
func (a *Arena) Get(node geograph.NodeID, g, h float64, parent *PathNode) *PathNode {
	var p *PathNode
	if n := len(a.free); n > 0 {
		p = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		p = &PathNode{}
	}
	p.Reset(node, g, h, parent)

	return p
}

// Release returns every node in nodes to the pool for reuse, clearing
// cross-references so the search tree does not keep otherwise-dead nodes
// reachable.
func (a *Arena) Release(nodes ...*PathNode) {
	for _, p := range nodes {
		p.Parent = nil
		p.Children = nil
		p.next = nil
		a.free = append(a.free, p)
	}
}
