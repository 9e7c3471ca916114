// Package server exposes the pathfinding engine over HTTP.
//
// Three endpoints: the algorithm registry, a blocking search that
// returns the summarized outcome, and a Server-Sent-Events stream that
// relays every search event as it happens. The stream endpoint is the
// HTTP analogue of the terminal visualizer: the client consumes events
// at wire pace and may disconnect at any time to abandon the run.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Server wraps the gin engine with structured logging.
type Server struct {
	router *gin.Engine
	logger *slog.Logger
}

// New builds the router. gin runs in release mode; request logging goes
// through slog instead of gin's default writer.
func New(logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{router: gin.New(), logger: logger}
	s.router.Use(gin.Recovery(), corsMiddleware())

	api := s.router.Group("/api")
	api.GET("/algorithms", s.handleAlgorithms)
	api.POST("/search", s.handleSearch)
	api.GET("/search/stream", s.handleSearchStream)

	return s
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", "addr", addr)

	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// corsMiddleware mirrors the permissive CORS policy of the reference
// frontend setup.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)

			return
		}
		c.Next()
	}
}

// Point is the wire form of a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) coordinate() grid.Coordinate { return grid.Coordinate{X: p.X, Y: p.Y} }

func fromCoordinate(c grid.Coordinate) Point { return Point{X: c.X, Y: c.Y} }

// SearchRequest describes one search invocation.
type SearchRequest struct {
	Algorithm string  `json:"algorithm" binding:"required"`
	Width     int     `json:"width" binding:"required"`
	Height    int     `json:"height" binding:"required"`
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Obstacles []Point `json:"obstacles"`
	// Seed, when non-zero, makes RandomWalk reproducible.
	Seed int64 `json:"seed"`
}

// SearchResponse summarizes a completed run.
type SearchResponse struct {
	Algorithm       string  `json:"algorithm"`
	Found           bool    `json:"found"`
	Path            []Point `json:"path,omitempty"`
	PathLength      int     `json:"pathLength"`
	Events          int     `json:"events"`
	ExecutionTimeMs float64 `json:"executionTimeMs"`
}

// AlgorithmInfo is one registry entry on the wire.
type AlgorithmInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// handleAlgorithms lists the registry.
func (s *Server) handleAlgorithms(c *gin.Context) {
	all := search.All()
	out := make([]AlgorithmInfo, 0, len(all))
	for _, a := range all {
		out = append(out, AlgorithmInfo{ID: a.ID, Name: a.Name})
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": out})
}

// newStream validates a request and opens the event stream.
func (s *Server) newStream(req *SearchRequest) (*search.Stream, error) {
	alg, err := search.Lookup(req.Algorithm)
	if err != nil {
		return nil, err
	}
	cells := make([]grid.Coordinate, 0, len(req.Obstacles))
	for _, p := range req.Obstacles {
		cells = append(cells, p.coordinate())
	}
	g, err := grid.New(req.Width, req.Height, grid.WithObstacles(cells...))
	if err != nil {
		return nil, err
	}
	var opts []search.Option
	if req.Seed != 0 {
		opts = append(opts, search.WithRand(rand.New(rand.NewSource(req.Seed))))
	}

	return alg.Search(g, req.Start.coordinate(), req.End.coordinate(), opts...)
}

// handleSearch runs one algorithm to completion and returns the summary.
func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})

		return
	}
	stream, err := s.newStream(&req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})

		return
	}

	t0 := time.Now()
	events := 0
	resp := SearchResponse{Algorithm: req.Algorithm}
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		events++
		if ev.Kind == search.Found {
			resp.Found = true
			resp.Path = make([]Point, 0, len(ev.Path))
			for _, cell := range ev.Path {
				resp.Path = append(resp.Path, fromCoordinate(cell))
			}
			resp.PathLength = ev.Path.Len()
		}
	}
	resp.Events = events
	resp.ExecutionTimeMs = float64(time.Since(t0).Microseconds()) / 1000

	s.logger.Info("search completed",
		"algorithm", req.Algorithm, "found", resp.Found,
		"events", events, "path_length", resp.PathLength)
	c.JSON(http.StatusOK, resp)
}

// streamEvent is the SSE payload for progress events.
type streamEvent struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// handleSearchStream relays the event sequence over SSE. The SSE event
// name is the protocol tag (exploring/visited/found/no_path); Found
// carries the path, progress events carry the cell.
func (s *Server) handleSearchStream(c *gin.Context) {
	req := SearchRequest{Algorithm: c.Query("algorithm")}
	var bindErr error
	for _, q := range []struct {
		name string
		dst  *int
	}{
		{"width", &req.Width}, {"height", &req.Height},
		{"startX", &req.Start.X}, {"startY", &req.Start.Y},
		{"endX", &req.End.X}, {"endY", &req.End.Y},
	} {
		if err := bindIntQuery(c, q.name, q.dst); err != nil {
			bindErr = err

			break
		}
	}
	if bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})

		return
	}
	stream, err := s.newStream(&req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})

		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		ev, ok := stream.Next()
		if !ok {
			return false
		}
		switch ev.Kind {
		case search.Found:
			path := make([]Point, 0, len(ev.Path))
			for _, cell := range ev.Path {
				path = append(path, fromCoordinate(cell))
			}
			c.SSEvent(ev.Kind.String(), gin.H{"path": path})
		case search.NoPath:
			c.SSEvent(ev.Kind.String(), gin.H{})
		default:
			c.SSEvent(ev.Kind.String(), streamEvent{X: ev.Cell.X, Y: ev.Cell.Y})
		}

		return !ev.Terminal()
	})
}

// statusFor maps engine sentinels onto HTTP status codes: invalid input
// is the client's fault, anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrNilGrid),
		errors.Is(err, search.ErrOutOfBounds),
		errors.Is(err, search.ErrBlocked),
		errors.Is(err, search.ErrOptionViolation),
		errors.Is(err, grid.ErrDimensions),
		errors.Is(err, grid.ErrObstacleOutOfBounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindIntQuery parses one required integer query parameter.
func bindIntQuery(c *gin.Context, name string, dst *int) error {
	raw := c.Query(name)
	if raw == "" {
		return fmt.Errorf("missing query parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("query parameter %q: %w", name, err)
	}
	*dst = v

	return nil
}
