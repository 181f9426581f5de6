package pathnode

// OpenList is the intrusive singly-linked list A* threads its open set
// through (spec §4.6). Selecting the best node is an O(n) linear scan that
// tracks the previous pointer so the winner can be unlinked in place; for
// typical map sizes this beats a heap on locality, and tie-break semantics
// (spec §4.3) are easier to keep exact with a linear scan than with
// container/heap's sift comparisons. Callers needing larger maps may swap in
// a heap-backed open set so long as Less below is preserved.
type OpenList struct {
	head *PathNode
	n    int
}

// Less reports whether a strictly precedes b in open-list priority order:
// smaller f wins; on an f tie, smaller tiebreak wins (typically squared
// world-distance-to-target, enabled by astar's use_world_distance option);
// ties in both fall back to insertion order (Push inserts at the head and the
// list is scanned head-first, so the most recently inserted candidate of
// equal priority is kept).
type Less func(a, b *PathNode) bool

// DefaultLess orders purely by f = g + h.
func DefaultLess(a, b *PathNode) bool {
	return a.F() < b.F()
}

// Push inserts p at the head of the open list. O(1).
func (l *OpenList) Push(p *PathNode) {
	p.next = l.head
	l.head = p
	l.n++
}

// Len returns the number of nodes currently linked into the list.
func (l *OpenList) Len() int {
	return l.n
}

// PopBest scans the whole list, removes the node judged smallest by less,
// and returns it. It returns nil if the list is empty.
func (l *OpenList) PopBest(less Less) *PathNode {
	if l.head == nil {
		return nil
	}

	var prevOfBest *PathNode
	best := l.head

	prev := l.head
	cur := l.head.next
	for cur != nil {
		if less(cur, best) {
			best = cur
			prevOfBest = prev
		}
		prev = cur
		cur = cur.next
	}

	if prevOfBest == nil {
		// best is still the head.
		l.head = best.next
	} else {
		prevOfBest.next = best.next
	}
	best.next = nil
	l.n--

	return best
}

// Clear drops every reference from the list without touching the nodes
// themselves (callers are expected to release them to an Arena separately).
func (l *OpenList) Clear() {
	l.head = nil
	l.n = 0
}
