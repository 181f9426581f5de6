// Package astar implements A* best-path search over an abstract
// geograph.Graph/geograph.Agent pair, with an optional elliptical
// search-radius restriction and a secondary world-distance tiebreak.
//
// Complexity:
//
//   - Time:  O(V log V) amortised with a heap-backed open set; this
//     implementation uses the intrusive-list open set specified for this
//     engine (spec §4.6), giving O(V^2) worst case but better constants and
//     locality on the small, localised maps the engine targets.
//   - Space: O(V) for the open/closed PathNode maps.
//
// Options:
//
//   - WithRelativeLimit(k): restrict the search to the ellipse with source
//     and target as foci and major axis k * Distance(source, target). k must
//     be 0 (no limit) or >= 1.
//   - WithWorldDistanceTiebreak(): on an f tie, prefer the candidate closer
//     to the target in world coordinates, eliminating oscillation on
//     uniform-cost grids.
//
// Errors (sentinel):
//
//   - ErrNilGraph     if the graph is nil.
//   - ErrNilAgent     if the agent is nil.
//   - ErrNilNode      if source or target is geograph.NilNode.
//   - ErrBadRelativeLimit if the relative limit is in (0, 1).
//   - ErrBadMaxCost   if GetLastNode/GetLastPathNode are called with
//     maxCost <= 0.
package astar

import "errors"

// Sentinel errors for A* preconditions (spec §7, kind 1).
var (
	// ErrNilGraph indicates a nil Graph was passed to Run.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilAgent indicates a nil Agent was passed to Run.
	ErrNilAgent = errors.New("astar: agent is nil")

	// ErrNilNode indicates source or target was geograph.NilNode.
	ErrNilNode = errors.New("astar: source or target is the nil node")

	// ErrBadRelativeLimit indicates a relative limit strictly between 0 and 1.
	ErrBadRelativeLimit = errors.New("astar: relative limit must be 0 or >= 1")

	// ErrBadMaxCost indicates a non-positive cost budget passed to a
	// truncated-range accessor.
	ErrBadMaxCost = errors.New("astar: max cost must be positive")
)

// Options configures a single Run call.
type Options struct {
	// RelativeLimit, if > 0, restricts the search to the ellipse with
	// source and target as foci and major axis RelativeLimit *
	// Distance(source, target). 0 means unrestricted.
	RelativeLimit float64

	// UseWorldDistance breaks f ties by preferring the candidate with
	// smaller squared world distance to the target.
	UseWorldDistance bool

	// internal error recorded during option parsing.
	err error
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns unrestricted search with insertion-order tiebreak.
func DefaultOptions() Options {
	return Options{
		RelativeLimit:    0,
		UseWorldDistance: false,
	}
}

// WithRelativeLimit restricts the search radius. k must be 0 (disable the
// restriction) or >= 1; any value in (0, 1) is recorded as ErrBadRelativeLimit
// and surfaced when Run is called.
func WithRelativeLimit(k float64) Option {
	return func(o *Options) {
		if k != 0 && k < 1 {
			o.err = ErrBadRelativeLimit
			return
		}
		o.RelativeLimit = k
	}
}

// WithWorldDistanceTiebreak enables the secondary world-distance tiebreak.
func WithWorldDistanceTiebreak() Option {
	return func(o *Options) {
		o.UseWorldDistance = true
	}
}
