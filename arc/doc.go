// Package arc implements NodeArc, the angular-arc-plus-distance descriptor
// visibility queries clip against each other, and the angle arithmetic it is
// built from.
//
// start is measured clockwise from the positive x-axis assuming a
// screen-style coordinate system where y grows downward (spec §3, §4.7); all
// angles are normalised to the half-open interval (-π, π].
//
// Complexity: every operation here is O(1) except CreateNodeArc, which is
// O(|region|) in the number of vertices of the target node's polygonal
// region.
package arc
