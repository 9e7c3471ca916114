// Package search defines tunable options and error definitions for the
// pathfinding algorithms of github.com/katalvlaran/gridpath.
package search

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for search invocation. All are detected synchronously,
// before the first event is produced.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrBlocked is returned when start or end lies on an obstacle cell.
	ErrBlocked = errors.New("search: endpoint lies on an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Lookup for an unrecognized id.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm id")
)

// DefaultJumpDistance is the straight-line scan length of the jump
// primitive used by JumpPoint.
const DefaultJumpDistance = 3

// Option configures a search via functional arguments. Options that do
// not apply to the chosen algorithm are ignored (the entry contract is
// uniform across all eight). An invalid Option is recorded internally
// and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds parameters customizing individual algorithms.
type Options struct {
	// Rand supplies the randomness consumed by RandomWalk. Injecting a
	// seeded source makes runs reproducible. Nil means a time-seeded
	// source is created per run.
	Rand *rand.Rand

	// JumpDistance is the maximum number of cells the JumpPoint scan
	// advances per direction. Must be positive.
	JumpDistance int

	// JumpThroughObstacles restores the legacy scan that ignores
	// obstacles mid-line. Paths produced in this mode may cross blocked
	// cells; the default scan stops before the first obstacle.
	JumpThroughObstacles bool

	// MaxSteps caps RandomWalk. 0 selects the default budget of
	// 2 × width × height; a positive value overrides it.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a nil (lazily seeded) random
// source, the standard jump distance, obstacle-aware jumping, and the
// default step budget.
func DefaultOptions() Options {
	return Options{
		Rand:         nil,
		JumpDistance: DefaultJumpDistance,
		MaxSteps:     0,
	}
}

// buildOptions applies opts over the defaults and reports any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// WithRand injects the random source used by RandomWalk.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithJumpDistance sets the scan length of the jump primitive.
//
//	d > 0:  scan up to d cells per direction
//	d <= 0: invalid option → ErrOptionViolation
func WithJumpDistance(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: jump distance must be positive (%d)", ErrOptionViolation, d)

			return
		}
		o.JumpDistance = d
	}
}

// WithJumpThroughObstacles makes the jump scan ignore obstacles on the
// line, matching the original visualizer's behavior. Found paths may
// then cross blocked cells.
func WithJumpThroughObstacles() Option {
	return func(o *Options) {
		o.JumpThroughObstacles = true
	}
}

// WithMaxSteps overrides RandomWalk's step budget.
//
//	n > 0:  cap the walk at n steps
//	n == 0: explicit default (2 × width × height)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max steps cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxSteps = n
	}
}
