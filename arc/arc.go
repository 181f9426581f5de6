package arc

import (
	"math"

	"github.com/katalvlaran/geowalk/geograph"
)

// pointSurrogateSweep is the angular width synthesised for a target node
// that has no polygonal region (spec §4.8): a 1-degree sliver centred on the
// line-of-sight angle.
const pointSurrogateSweep = math.Pi / 180

// NodeArc is the angular span a node's polygonal region occupies as seen
// from a viewpoint, plus its minimum distance and remaining visible
// fraction. One is created per node visited by a visibility query.
//
// Invariant: Start is normalised to (-π, π]; Sweep > 0 while any part of the
// arc remains unclipped (a fully obscured arc has Sweep == 0).
type NodeArc struct {
	Start           float64 // radians, normalised to (-π, π]
	Sweep           float64 // positive radians, <= 2π
	Distance        float64 // minimum world distance from viewpoint to the region
	VisibleFraction float64 // in [0, 1]; starts at 1, decays as occluders clip the arc
}

// CreateNodeArc builds the NodeArc for target as seen from source. If target
// has no polygonal region, it synthesises a 1-degree arc centred on the
// line-of-sight angle at the line's length. Otherwise it walks target's
// region vertices, tracking the minimum negative and maximum positive
// angular deviation from the line-of-sight angle, and the minimum distance
// from source to any vertex.
func CreateNodeArc(g geograph.Graph, source, target geograph.NodeID) NodeArc {
	sourceLoc := g.WorldLocation(source)
	targetLoc := g.WorldLocation(target)
	alpha := AngleBetween(sourceLoc, targetLoc)

	region, ok := g.WorldRegion(target)
	if !ok || len(region) == 0 {
		return NodeArc{
			Start:           NormalizeAngle(alpha - pointSurrogateSweep/2),
			Sweep:           pointSurrogateSweep,
			Distance:        geograph.EuclideanDistance(sourceLoc, targetLoc),
			VisibleFraction: 1,
		}
	}

	var minBeta, maxBeta float64 // deviations from alpha; 0 if none observed on that side
	minDist := math.Inf(1)
	for _, v := range region {
		bearing := AngleBetween(sourceLoc, v)
		beta := NormalizeAngle(bearing - alpha)
		if beta < minBeta {
			minBeta = beta
		}
		if beta > maxBeta {
			maxBeta = beta
		}
		if d := geograph.EuclideanDistance(sourceLoc, v); d < minDist {
			minDist = d
		}
	}

	return NodeArc{
		Start:           NormalizeAngle(alpha + minBeta),
		Sweep:           maxBeta - minBeta,
		Distance:        minDist,
		VisibleFraction: 1,
	}
}

// Obscure shrinks arcToClip — a farther-away arc — to the portion not
// covered by self, a closer arc (spec §4.7). It mutates arcToClip in place.
func Obscure(arcToClip *NodeArc, self NodeArc) {
	relativeStart := NormalizeAngle(self.Start - arcToClip.Start)
	relativeSweep := relativeStart + self.Sweep

	if lessOrEqual(relativeSweep, 0) || lessOrEqual(arcToClip.Sweep, relativeStart) {
		return // disjoint
	}

	switch {
	case lessOrEqual(relativeStart, 0) && greaterOrEqual(relativeSweep, arcToClip.Sweep):
		// Totally obscured.
		arcToClip.Sweep = 0
	case lessOrEqual(relativeStart, 0):
		// Front is obscured.
		arcToClip.Start = NormalizeAngle(arcToClip.Start + relativeSweep)
		arcToClip.Sweep -= relativeSweep
	case greaterOrEqual(relativeSweep, arcToClip.Sweep):
		// Back is obscured.
		arcToClip.Sweep = relativeStart
	default:
		// Middle obscured: a deliberate lossy simplification (spec §4.7,
		// §9.2) keeps only the larger surviving side rather than splitting
		// arcToClip into two slivers.
		front := relativeStart
		back := arcToClip.Sweep - relativeSweep
		if front >= back {
			arcToClip.Sweep = front
		} else {
			arcToClip.Start = NormalizeAngle(arcToClip.Start + relativeSweep)
			arcToClip.Sweep = back
		}
	}
}

// covers reports whether outer's angular span entirely contains inner's,
// ignoring distance.
func covers(outer, inner NodeArc) bool {
	relativeStart := NormalizeAngle(outer.Start - inner.Start)
	relativeSweep := relativeStart + outer.Sweep

	return lessOrEqual(relativeStart, 0) && greaterOrEqual(relativeSweep, inner.Sweep)
}

// IsObscured compares self against other and returns -1 if other entirely
// covers self at closer range (self is obscured by other), +1 if the
// opposite holds, or 0 otherwise.
func IsObscured(self, other NodeArc) int {
	switch {
	case other.Distance < self.Distance && covers(other, self):
		return -1
	case self.Distance < other.Distance && covers(self, other):
		return 1
	default:
		return 0
	}
}
