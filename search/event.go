package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// EventKind tags the four variants of the search event protocol.
type EventKind uint8

const (
	// Exploring: the algorithm popped Cell from its frontier and is
	// about to expand it.
	Exploring EventKind = iota
	// Visited: the algorithm finished expanding Cell. Emitted once per
	// cell, after Exploring, except for the goal cell (Found replaces it).
	Visited
	// Found: terminal. Path carries the full start→end walk.
	Found
	// NoPath: terminal. No route exists (or, for RandomWalk, none was
	// found within the step budget).
	NoPath
)

// String returns the lower-case protocol name of the kind.
func (k EventKind) String() string {
	switch k {
	case Exploring:
		return "exploring"
	case Visited:
		return "visited"
	case Found:
		return "found"
	case NoPath:
		return "no_path"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one element of a search's output sequence.
// Cell is meaningful for Exploring and Visited; Path is non-nil only for
// Found. A run emits zero or more Exploring/Visited pairs followed by
// exactly one terminal event, and never names an out-of-bounds cell.
type Event struct {
	Kind EventKind
	Cell grid.Coordinate
	Path Path
}

// Terminal reports whether the event ends its stream.
func (e Event) Terminal() bool {
	return e.Kind == Found || e.Kind == NoPath
}
