package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// BorderMode selects whether the rectangle's border is part of the result.
type BorderMode int

const (
	// DoNotMakeBorderEdges returns only edges between two sites.
	DoNotMakeBorderEdges BorderMode = iota
	// MakeBorderEdges also returns the border segments between consecutive
	// edge ends, so that every cell is closed.
	MakeBorderEdges
)

func (m BorderMode) String() string {
	switch m {
	case DoNotMakeBorderEdges:
		return "DoNotMakeBorderEdges"
	case MakeBorderEdges:
		return "MakeBorderEdges"
	}
	return fmt.Sprintf("BorderMode(%d)", int(m))
}

type config struct {
	log *logger.ZapLogger
}

// Option configures CreateDiagram.
type Option func(*config)

// WithLogger makes the computation log into l. Per-event tracing is written
// at debug level.
func WithLogger(l *logger.ZapLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// CreateDiagram computes the Voronoi diagram of points clipped to bounds.
// Site IDs are indices into points. Zero or one site, duplicates and
// collinear sites are valid input and yield fewer edges; only a nil point
// slice, a degenerate rectangle, non-finite coordinates or an unknown mode
// are rejected.
func CreateDiagram(points []Point, bounds Rect, mode BorderMode, opts ...Option) (*Diagram, error) {
	cfg := config{log: logger.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log

	if err := validateInput(points, bounds, mode); err != nil {
		log.Error("[f] Invalid input", zap.Error(err))
		return nil, fmt.Errorf("create diagram: %w", err)
	}

	log.Info("[f] Diagram requested",
		zap.Int("sites", len(points)),
		zap.Float64("min-x", bounds.MinX()), zap.Float64("min-y", bounds.MinY()),
		zap.Float64("max-x", bounds.MaxX()), zap.Float64("max-y", bounds.MaxY()),
		zap.Stringer("mode", mode),
	)

	sites := make([]Site, len(points))
	inside := 0
	for i, p := range points {
		sites[i] = Site{ID: i, Point: p}
		if bounds.ContainsPoint(p) {
			inside++
		}
	}
	if inside == 0 && len(sites) > 0 {
		log.Warn("[f] No site inside the bounding rectangle", zap.Int("sites", len(sites)))
	}

	sw := newSweep(sites, log)
	edges := clipEdges(sw.run(), sites, bounds, log)

	if mode == MakeBorderEdges {
		edges = append(edges, borderEdges(edges, sites, sw.active, bounds, log)...)
	}

	edges = linkNeighbours(edges, log)

	return newDiagram(sites, edges, bounds), nil
}
