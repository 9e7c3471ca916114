package search

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Stream delivers the events of one search run, one per Next call.
//
// A Stream is a cooperative state machine: the algorithm's entire
// working state (frontier, visited set, parent map, cost maps) persists
// inside the step closure and is inert between calls. No goroutines are
// involved; to cancel a run, simply stop calling Next.
type Stream struct {
	pending []Event
	step    func(emit func(Event)) bool
	done    bool
}

// newStream wraps a walker step function. step performs one unit of work
// per call, emitting its events, and returns false once it has emitted a
// terminal event.
func newStream(step func(emit func(Event)) bool) *Stream {
	return &Stream{step: step}
}

// terminalStream returns a Stream that emits ev and nothing else.
func terminalStream(ev Event) *Stream {
	return &Stream{pending: []Event{ev}, done: true}
}

// Next returns the next event of the run. ok is false once the sequence
// is exhausted, which happens only after a terminal event was returned.
func (s *Stream) Next() (ev Event, ok bool) {
	for len(s.pending) == 0 {
		if s.done {
			return Event{}, false
		}
		if !s.step(s.push) {
			s.done = true
		}
	}
	ev = s.pending[0]
	s.pending = s.pending[1:]

	return ev, true
}

// push buffers an event emitted by the current step.
func (s *Stream) push(ev Event) {
	s.pending = append(s.pending, ev)
}

// Drain consumes the stream to its terminal event.
// Returns (path, true) when the run found a route, (nil, false) on
// NoPath or on an already-exhausted stream.
func (s *Stream) Drain() (Path, bool) {
	for {
		ev, ok := s.Next()
		if !ok {
			return nil, false
		}
		if ev.Kind == Found {
			return ev.Path, true
		}
		if ev.Kind == NoPath {
			return nil, false
		}
	}
}

// Collect consumes the stream and returns every remaining event,
// terminal included.
func (s *Stream) Collect() []Event {
	var out []Event
	for {
		ev, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// validate enforces the invocation preconditions shared by every
// algorithm: grid non-nil, endpoints in bounds and not on obstacles.
func validate(g *grid.Grid, start, end grid.Coordinate) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.X, start.Y)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, end.X, end.Y)
	}
	if g.Blocked(start) {
		return fmt.Errorf("%w: start (%d,%d)", ErrBlocked, start.X, start.Y)
	}
	if g.Blocked(end) {
		return fmt.Errorf("%w: end (%d,%d)", ErrBlocked, end.X, end.Y)
	}

	return nil
}

// rng returns the run's random source, creating a time-seeded one when
// none was injected.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
