// Package viz renders search runs on a terminal screen.
//
// It is a display collaborator in the engine's sense: it pulls events
// from a search Stream one at a time, maps them to colored cells, and
// owns all pacing. Abandoning a stream (skip or quit key) is the only
// cancellation mechanism the engine needs.
package viz

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// LED-style palette, carried over from the matrix visualizer.
var (
	colorBackground = tcell.NewRGBColor(0, 0, 0)
	colorStart      = tcell.NewRGBColor(0, 255, 0)
	colorEnd        = tcell.NewRGBColor(255, 0, 0)
	colorVisited    = tcell.NewRGBColor(50, 50, 50)
	colorPath       = tcell.NewRGBColor(255, 255, 0)
	colorObstacle   = tcell.NewRGBColor(160, 160, 160)
)

// gridTop leaves one text row above the grid for the algorithm name.
const gridTop = 1

// minSeparationDiv controls the minimum random endpoint spread:
// (width+height)/minSeparationDiv must be exceeded in Manhattan terms.
const minSeparationDiv = 3

// Runner drives the scenario loop on a tcell screen.
type Runner struct {
	screen   tcell.Screen
	scenario *config.Scenario
	logger   *slog.Logger
	rng      *rand.Rand
	keys     chan *tcell.EventKey
}

// New initializes the terminal screen for the given scenario.
func New(sc *config.Scenario, logger *slog.Logger) (*Runner, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err = screen.Init(); err != nil {
		return nil, err
	}
	r := &Runner{
		screen:   screen,
		scenario: sc,
		logger:   logger,
		rng:      sc.Rand(),
		keys:     make(chan *tcell.EventKey, 16),
	}
	go r.pollKeys()

	return r, nil
}

// Close releases the terminal.
func (r *Runner) Close() {
	r.screen.Fini()
}

// pollKeys forwards key events until the screen is finalized.
func (r *Runner) pollKeys() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			r.offerKey(key)
		}
	}
}

// offerKey hands a key to the consumer without ever blocking: once the
// buffer is full further presses are dropped, so the poll goroutine can
// always drain the screen and exit when it is finalized.
func (r *Runner) offerKey(key *tcell.EventKey) {
	select {
	case r.keys <- key:
	default:
	}
}

// control is the consumer-side verdict between two painted events.
type control int

const (
	keep control = iota
	skip
	quit
)

// poll drains pending key presses without blocking.
func (r *Runner) poll() control {
	for {
		select {
		case key := <-r.keys:
			switch {
			case key.Key() == tcell.KeyEscape, key.Key() == tcell.KeyCtrlC:
				return quit
			case key.Key() == tcell.KeyRune && key.Rune() == 'q':
				return quit
			case key.Key() == tcell.KeyRune && key.Rune() == ' ':
				return skip
			case key.Key() == tcell.KeyEnter:
				return skip
			}
		default:
			return keep
		}
	}
}

// Run loops scenario iterations until quit: fresh endpoints and
// obstacles, then every configured algorithm in sequence.
func (r *Runner) Run() error {
	for {
		start, end := r.endpoints()
		obstacles, err := r.scenario.Obstacles.Generate(r.scenario.Width, r.scenario.Height, start, end, r.rng)
		if err != nil {
			return err
		}
		g, err := grid.New(r.scenario.Width, r.scenario.Height, grid.WithObstacles(obstacles...))
		if err != nil {
			return err
		}

		for i, alg := range r.scenario.Algorithms {
			done, runErr := r.runOne(g, alg, i, start, end)
			if runErr != nil {
				return runErr
			}
			if done {
				return nil
			}
		}
	}
}

// endpoints returns the scenario's pinned endpoints, or a fresh random
// pair separated by more than (width+height)/minSeparationDiv.
func (r *Runner) endpoints() (start, end grid.Coordinate) {
	if r.scenario.Start != nil && r.scenario.End != nil {
		return *r.scenario.Start, *r.scenario.End
	}
	w, h := r.scenario.Width, r.scenario.Height
	minSep := (w + h) / minSeparationDiv
	for {
		start = grid.Coordinate{X: r.rng.Intn(w), Y: r.rng.Intn(h)}
		end = grid.Coordinate{X: r.rng.Intn(w), Y: r.rng.Intn(h)}
		if start.Manhattan(end) > minSep {
			return start, end
		}
	}
}

// runOne visualizes a single algorithm run. done is true when the user
// asked to quit entirely.
func (r *Runner) runOne(g *grid.Grid, alg search.Algorithm, index int, start, end grid.Coordinate) (done bool, err error) {
	stream, err := alg.Search(g, start, end, search.WithRand(r.rng))
	if err != nil {
		return false, err
	}

	r.drawBase(g, alg, start, end)
	time.Sleep(1 * time.Second)

	exploring := accentColor(index)
	events, t0 := 0, time.Now()
	for {
		switch r.poll() {
		case quit:
			return true, nil
		case skip:
			return false, nil
		case keep:
		}

		ev, ok := stream.Next()
		if !ok {
			break
		}
		events++

		switch ev.Kind {
		case search.Exploring:
			r.drawCell(ev.Cell, exploring, start, end)
			r.screen.Show()
			time.Sleep(r.scenario.Delay)
		case search.Visited:
			r.drawCell(ev.Cell, colorVisited, start, end)
			r.screen.Show()
		case search.Found:
			r.logger.Info("path found",
				"algorithm", alg.ID, "length", ev.Path.Len(), "events", events,
				"elapsed", time.Since(t0).Round(time.Millisecond))
			if done = r.animatePath(ev.Path, start, end); done {
				return true, nil
			}
		case search.NoPath:
			r.logger.Info("no path",
				"algorithm", alg.ID, "events", events,
				"elapsed", time.Since(t0).Round(time.Millisecond))
			time.Sleep(2 * time.Second)
		}
	}

	return false, nil
}

// animatePath paints the found route cell by cell, then lets the result
// linger. done is true on quit.
func (r *Runner) animatePath(path search.Path, start, end grid.Coordinate) (done bool) {
	time.Sleep(500 * time.Millisecond)
	for _, c := range path {
		switch r.poll() {
		case quit:
			return true
		case skip:
			return false
		case keep:
		}
		r.drawCell(c, colorPath, start, end)
		r.screen.Show()
		time.Sleep(2 * r.scenario.Delay)
	}
	time.Sleep(3 * time.Second)

	return false
}

// drawBase clears the screen and paints obstacles, endpoints, and the
// algorithm name line.
func (r *Runner) drawBase(g *grid.Grid, alg search.Algorithm, start, end grid.Coordinate) {
	r.screen.Clear()
	style := tcell.StyleDefault.Background(colorBackground).Foreground(tcell.ColorWhite)
	for i, ch := range alg.Name {
		r.screen.SetContent(i, 0, ch, nil, style)
	}
	for _, c := range g.Obstacles() {
		r.drawCell(c, colorObstacle, start, end)
	}
	r.paint(start, colorStart)
	r.paint(end, colorEnd)
	r.screen.Show()
}

// drawCell paints one grid cell, never overwriting the endpoints.
func (r *Runner) drawCell(c grid.Coordinate, color tcell.Color, start, end grid.Coordinate) {
	if c == start || c == end {
		return
	}
	r.paint(c, color)
}

// paint fills the two terminal columns that represent one square grid
// cell (terminal cells are roughly 1:2).
func (r *Runner) paint(c grid.Coordinate, color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	r.screen.SetContent(c.X*2, c.Y+gridTop, ' ', nil, style)
	r.screen.SetContent(c.X*2+1, c.Y+gridTop, ' ', nil, style)
}

// accentColor derives the exploring hue for the index-th algorithm,
// spreading the eight runs around the blue-leaning half of the wheel.
func accentColor(index int) tcell.Color {
	hue := 180 + float64(index*360/16)
	red, green, blue := colorful.Hsv(hue, 1, 1).RGB255()

	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
