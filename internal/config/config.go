// Package config loads visualization scenarios from HCL files.
//
// A scenario file describes one repeatable visualization setup: grid
// dimensions, optional fixed endpoints, pacing, RNG seed, the algorithm
// subset to run, and how obstacles are generated:
//
//	scenario {
//	  width    = 48
//	  height   = 32
//	  delay_ms = 20
//	  seed     = 42
//	  algorithms = ["bfs", "astar", "jps"]
//
//	  start {
//	    x = 0
//	    y = 0
//	  }
//	  end {
//	    x = 47
//	    y = 31
//	  }
//
//	  obstacles {
//	    mode    = "segments"
//	    density = 0.25
//	    wall_length = 6
//	    num_walls   = 18
//	    num_rooms   = 4
//	  }
//	}
//
// Every attribute except width and height is optional; Default returns
// the scenario used when no file is given.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for scenario loading.
var (
	// ErrParse indicates the file is not valid HCL or not a scenario.
	ErrParse = errors.New("config: cannot parse scenario file")
	// ErrScenario indicates a structurally valid file with bad values.
	ErrScenario = errors.New("config: invalid scenario")
)

// Obstacle generation modes.
const (
	ModeNone     = "none"
	ModeRandom   = "random"
	ModeSegments = "segments"
	ModeRooms    = "rooms"
)

// Scenario is a fully validated visualization setup.
type Scenario struct {
	Width, Height int
	// Delay paces the display driver between events.
	Delay time.Duration
	// Seed seeds every random draw of the run; 0 means time-seeded.
	Seed int64
	// Algorithms to run, in order. Defaults to search.All().
	Algorithms []search.Algorithm
	// Start and End pin the endpoints; nil picks fresh random endpoints
	// per iteration.
	Start, End *grid.Coordinate
	Obstacles  ObstacleSpec
}

// ObstacleSpec selects and parameterizes a maze generator.
type ObstacleSpec struct {
	Mode       string
	Density    float64
	WallLength int
	NumWalls   int
	NumRooms   int
}

// Default returns the scenario used when no file is supplied: a 48×32
// grid, 20ms pacing, random endpoints, random walls at 0.25 density,
// all eight algorithms.
func Default() *Scenario {
	return &Scenario{
		Width:      48,
		Height:     32,
		Delay:      20 * time.Millisecond,
		Algorithms: search.All(),
		Obstacles: ObstacleSpec{
			Mode:       ModeRandom,
			Density:    0.25,
			WallLength: 6,
			NumWalls:   18,
			NumRooms:   4,
		},
	}
}

// file-level decoding structures (gohcl).
type scenarioFile struct {
	Scenario *scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Width      int             `hcl:"width"`
	Height     int             `hcl:"height"`
	DelayMS    int             `hcl:"delay_ms,optional"`
	Seed       int64           `hcl:"seed,optional"`
	Algorithms []string        `hcl:"algorithms,optional"`
	Start      *pointBlock     `hcl:"start,block"`
	End        *pointBlock     `hcl:"end,block"`
	Obstacles  *obstaclesBlock `hcl:"obstacles,block"`
}

type pointBlock struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
}

type obstaclesBlock struct {
	Mode       string  `hcl:"mode"`
	Density    float64 `hcl:"density,optional"`
	WallLength int     `hcl:"wall_length,optional"`
	NumWalls   int     `hcl:"num_walls,optional"`
	NumRooms   int     `hcl:"num_rooms,optional"`
}

// Load reads, decodes, and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, path, diags.Error())
	}

	var decoded scenarioFile
	if diags = gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, path, diags.Error())
	}
	if decoded.Scenario == nil {
		return nil, fmt.Errorf("%w: %s: missing scenario block", ErrParse, path)
	}

	sc, err := fromBlock(decoded.Scenario)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// fromBlock merges a decoded block over the defaults and validates it.
func fromBlock(b *scenarioBlock) (*Scenario, error) {
	sc := Default()
	sc.Width, sc.Height = b.Width, b.Height
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrScenario, sc.Width, sc.Height)
	}
	if b.DelayMS < 0 {
		return nil, fmt.Errorf("%w: negative delay_ms %d", ErrScenario, b.DelayMS)
	}
	if b.DelayMS > 0 {
		sc.Delay = time.Duration(b.DelayMS) * time.Millisecond
	}
	sc.Seed = b.Seed

	if len(b.Algorithms) > 0 {
		sc.Algorithms = sc.Algorithms[:0]
		for _, id := range b.Algorithms {
			alg, err := search.Lookup(id)
			if err != nil {
				return nil, fmt.Errorf("%w: algorithm %q", ErrScenario, id)
			}
			sc.Algorithms = append(sc.Algorithms, alg)
		}
	}

	sc.Start = point(b.Start)
	sc.End = point(b.End)
	for _, p := range []*grid.Coordinate{sc.Start, sc.End} {
		if p != nil && (p.X < 0 || p.X >= sc.Width || p.Y < 0 || p.Y >= sc.Height) {
			return nil, fmt.Errorf("%w: endpoint (%d,%d) outside %dx%d", ErrScenario, p.X, p.Y, sc.Width, sc.Height)
		}
	}

	if b.Obstacles != nil {
		spec := &sc.Obstacles
		spec.Mode = b.Obstacles.Mode
		switch spec.Mode {
		case ModeNone, ModeRandom, ModeSegments, ModeRooms:
		default:
			return nil, fmt.Errorf("%w: obstacle mode %q", ErrScenario, spec.Mode)
		}
		if b.Obstacles.Density > 0 {
			spec.Density = b.Obstacles.Density
		}
		if b.Obstacles.WallLength > 0 {
			spec.WallLength = b.Obstacles.WallLength
		}
		if b.Obstacles.NumWalls > 0 {
			spec.NumWalls = b.Obstacles.NumWalls
		}
		if b.Obstacles.NumRooms > 0 {
			spec.NumRooms = b.Obstacles.NumRooms
		}
	}

	return sc, nil
}

func point(b *pointBlock) *grid.Coordinate {
	if b == nil {
		return nil
	}

	return &grid.Coordinate{X: b.X, Y: b.Y}
}

// Generate produces the obstacle set for one iteration of the scenario.
func (s *ObstacleSpec) Generate(width, height int, start, end grid.Coordinate, rng *rand.Rand) ([]grid.Coordinate, error) {
	switch s.Mode {
	case ModeNone, "":
		return nil, nil
	case ModeRandom:
		return maze.RandomWalls(width, height, s.Density, start, end, rng)
	case ModeSegments:
		return maze.WallSegments(width, height, s.WallLength, s.NumWalls, start, end, rng)
	case ModeRooms:
		return maze.Rooms(width, height, s.NumRooms, start, end, rng)
	default:
		return nil, fmt.Errorf("%w: obstacle mode %q", ErrScenario, s.Mode)
	}
}

// Rand returns the scenario's random source: seeded when Seed is set,
// time-seeded otherwise.
func (s *Scenario) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
