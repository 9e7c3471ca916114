package viz

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// newSimRunner builds a Runner on tcell's in-memory simulation screen,
// so drawing can be asserted without a terminal.
func newSimRunner(t *testing.T, sc *config.Scenario) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	return &Runner{
		screen:   screen,
		scenario: sc,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:      rand.New(rand.NewSource(1)),
		keys:     make(chan *tcell.EventKey, 16),
	}, screen
}

// cellBackground reads the background color painted at a screen cell.
func cellBackground(screen tcell.SimulationScreen, x, y int) tcell.Color {
	contents, w, _ := screen.GetContents()
	_, bg, _ := contents[y*w+x].Style.Decompose()

	return bg
}

func TestEndpoints_PinnedScenario(t *testing.T) {
	sc := config.Default()
	sc.Start = &grid.Coordinate{X: 1, Y: 2}
	sc.End = &grid.Coordinate{X: 40, Y: 30}
	r, _ := newSimRunner(t, sc)

	start, end := r.endpoints()
	assert.Equal(t, *sc.Start, start)
	assert.Equal(t, *sc.End, end)
}

func TestEndpoints_RandomSeparation(t *testing.T) {
	sc := config.Default()
	r, _ := newSimRunner(t, sc)

	minSep := (sc.Width + sc.Height) / minSeparationDiv
	for i := 0; i < 50; i++ {
		start, end := r.endpoints()
		assert.Greater(t, start.Manhattan(end), minSep)
		assert.True(t, start.X >= 0 && start.X < sc.Width && start.Y >= 0 && start.Y < sc.Height)
		assert.True(t, end.X >= 0 && end.X < sc.Width && end.Y >= 0 && end.Y < sc.Height)
	}
}

func TestDrawCell_NeverOverwritesEndpoints(t *testing.T) {
	sc := config.Default()
	r, screen := newSimRunner(t, sc)
	screen.SetSize(120, 40)

	start := grid.Coordinate{X: 2, Y: 3}
	end := grid.Coordinate{X: 10, Y: 7}
	r.paint(start, colorStart)
	r.paint(end, colorEnd)

	r.drawCell(start, colorVisited, start, end)
	r.drawCell(end, colorVisited, start, end)
	r.drawCell(grid.Coordinate{X: 5, Y: 5}, colorVisited, start, end)
	screen.Show()

	assert.Equal(t, colorStart, cellBackground(screen, start.X*2, start.Y+gridTop))
	assert.Equal(t, colorEnd, cellBackground(screen, end.X*2, end.Y+gridTop))
	assert.Equal(t, colorVisited, cellBackground(screen, 5*2, 5+gridTop))
}

func TestPaint_FillsTwoColumns(t *testing.T) {
	r, screen := newSimRunner(t, config.Default())
	screen.SetSize(120, 40)

	c := grid.Coordinate{X: 4, Y: 2}
	r.paint(c, colorPath)
	screen.Show()

	assert.Equal(t, colorPath, cellBackground(screen, c.X*2, c.Y+gridTop))
	assert.Equal(t, colorPath, cellBackground(screen, c.X*2+1, c.Y+gridTop))
}

func TestDrawBase_PaintsObstaclesAndTitle(t *testing.T) {
	sc := config.Default()
	r, screen := newSimRunner(t, sc)
	screen.SetSize(120, 40)

	wall := grid.Coordinate{X: 6, Y: 6}
	g, err := grid.New(sc.Width, sc.Height, grid.WithObstacles(wall))
	require.NoError(t, err)
	alg, err := search.Lookup("bfs")
	require.NoError(t, err)

	start := grid.Coordinate{X: 0, Y: 0}
	end := grid.Coordinate{X: 20, Y: 20}
	r.drawBase(g, alg, start, end)

	assert.Equal(t, colorObstacle, cellBackground(screen, wall.X*2, wall.Y+gridTop))
	assert.Equal(t, colorStart, cellBackground(screen, 0, gridTop))
	assert.Equal(t, colorEnd, cellBackground(screen, end.X*2, end.Y+gridTop))

	contents, _, _ := screen.GetContents()
	assert.Equal(t, 'B', contents[0].Runes[0], "title row shows the algorithm name")
}

func TestPoll_KeyVerdicts(t *testing.T) {
	r, _ := newSimRunner(t, config.Default())

	assert.Equal(t, keep, r.poll(), "no pending keys")

	cases := []struct {
		name string
		key  *tcell.EventKey
		want control
	}{
		{"QuitRune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit},
		{"CtrlC", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), quit},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), skip},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), skip},
		{"Ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), keep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r.keys <- tc.key
			assert.Equal(t, tc.want, r.poll())
		})
	}
}

// TestOfferKey_DropsWhenBufferFull: a consumer that stopped polling must
// never wedge the key-forwarding goroutine; excess presses are dropped.
func TestOfferKey_DropsWhenBufferFull(t *testing.T) {
	r, _ := newSimRunner(t, config.Default())

	for i := 0; i < cap(r.keys); i++ {
		r.offerKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	}
	require.Len(t, r.keys, cap(r.keys))

	done := make(chan struct{})
	go func() {
		r.offerKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("offerKey blocked on a full buffer")
	}
	assert.Len(t, r.keys, cap(r.keys), "overflow press must be dropped, not queued")
}

func TestAccentColor_DistinctPerAlgorithm(t *testing.T) {
	seen := make(map[tcell.Color]bool)
	for i := 0; i < 8; i++ {
		seen[accentColor(i)] = true
	}
	assert.Len(t, seen, 8, "each algorithm gets its own exploring hue")
}

func TestRunOne_SkipAbandonsTheStream(t *testing.T) {
	sc := config.Default()
	sc.Width, sc.Height = 6, 6
	sc.Delay = 0
	r, screen := newSimRunner(t, sc)
	screen.SetSize(40, 12)

	alg, err := search.Lookup("bfs")
	require.NoError(t, err)
	g, err := grid.New(6, 6)
	require.NoError(t, err)

	r.keys <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	t0 := time.Now()
	done, err := r.runOne(g, alg, 0, grid.Coordinate{}, grid.Coordinate{X: 5, Y: 5})
	require.NoError(t, err)
	assert.False(t, done)
	assert.Less(t, time.Since(t0), 5*time.Second, "skip must cut the run short")
}
