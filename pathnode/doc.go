// Package pathnode implements the search-tree record A* builds while it
// explores a geograph.Graph: one PathNode per visited node, carrying g
// (known cost from source), h (heuristic to target), a parent link, the
// children that have been linked from it, and an intrusive next pointer used
// to thread the A* open list.
//
// PathNodes are non-owning: the closed/open node maps an astar.Engine
// maintains are the sole owners for the duration of a query. Children slices
// hold references into that same arena, never separately-owned copies, so
// the whole search tree is reclaimed the instant the owning maps are
// cleared (spec §3, §9).
package pathnode
