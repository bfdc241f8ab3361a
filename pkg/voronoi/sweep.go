package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sweep is the working set of one Fortune sweep. Nothing in it outlives run
// except the edges.
type sweep struct {
	sites []Site
	queue eventQueue
	edges edgeBuilder
	bl    *beachline

	// active marks sites that opened an arc; duplicates never do.
	active    []bool
	processed []int

	log   *logger.ZapLogger
	trace bool

	vertices, stale, duplicates int
}

func newSweep(sites []Site, log *logger.ZapLogger) *sweep {
	s := &sweep{
		sites:  sites,
		active: make([]bool, len(sites)),
		log:    log,
		trace:  log.Enabled(zapcore.DebugLevel),
	}
	s.bl = newBeachline(sites, &s.edges)
	return s
}

// run drains the event queue and returns every edge traced by the sweep.
// Edges still open at the end keep their unresolved end for the clipper.
func (s *sweep) run() []halfEdge {
	s.log.Info("[sweep] Fortune sweep started", zap.Int("sites", len(s.sites)))

	s.queue.init(s.sites)
	for {
		ev, ok := s.queue.popMin()
		if !ok {
			break
		}

		switch ev.kind {
		case siteEvent:
			s.handleSite(ev)
		case circleEvent:
			if !s.bl.isCurrent(ev) {
				s.stale++
				continue
			}
			s.handleCircle(ev)
		}
	}

	s.log.Info("[sweep] Fortune sweep finished",
		zap.Int("edges", len(s.edges.edges)),
		zap.Int("vertices", s.vertices),
		zap.Int("stale-circles", s.stale),
		zap.Int("duplicates", s.duplicates),
	)
	return s.edges.edges
}

func (s *sweep) handleSite(ev event) {
	site := s.sites[ev.site]
	if dup, ok := s.duplicateOf(site); ok {
		s.duplicates++
		s.log.Debug("[sweep-site] Duplicate site skipped", zap.Int("site", site.ID), zap.Int("same-as", dup))
		return
	}
	if s.trace {
		s.log.Debug("[sweep-site] Site event", zap.Int("site", site.ID), zap.Float64("x", site.X), zap.Float64("y", site.Y))
	}

	s.active[site.ID] = true
	s.processed = append(s.processed, site.ID)
	for _, a := range s.bl.insertArcFor(site.ID) {
		s.attachCircleEvent(a)
	}
}

func (s *sweep) handleCircle(ev event) {
	vertex, recheck := s.bl.removeArc(ev.arc)
	s.vertices++
	if s.trace {
		s.log.Debug("[sweep-circle] Vertex", zap.Float64("x", vertex.X), zap.Float64("y", vertex.Y), zap.Float64("sweep", ev.y))
	}
	for _, a := range recheck {
		s.attachCircleEvent(a)
	}
}

// duplicateOf looks for an already processed site at the same position.
// Sites arrive sorted by y, so only the tail within Epsilon can match.
func (s *sweep) duplicateOf(site Site) (int, bool) {
	for i := len(s.processed) - 1; i >= 0; i-- {
		p := s.sites[s.processed[i]]
		if lessThanWithEpsilon(p.Y, site.Y) {
			break
		}
		if samePoint(p.Point, site.Point) {
			return p.ID, true
		}
	}
	return 0, false
}

// attachCircleEvent schedules the circle event of a if its neighbours and a
// converge below the sweep line.
func (s *sweep) attachCircleEvent(a int) {
	lArc := s.bl.prev(a)
	rArc := s.bl.next(a)
	if lArc == none || rArc == none {
		return
	}
	if s.bl.arcs[lArc].site == s.bl.arcs[rArc].site {
		return
	}

	lp := s.bl.point(lArc)
	cp := s.bl.point(a)
	rp := s.bl.point(rArc)

	// Collinear sites have no circumcircle: their bisectors are parallel.
	if collinear(lp, cp, rp) {
		return
	}
	// Diverging breakpoints never meet.
	if turn(lp, cp, rp) > 0 {
		return
	}

	// Centered on the middle site to keep the radius precise.
	rel := circumcenter(Point{}, lp.Sub(cp), rp.Sub(cp))
	vertex := rel.Add(cp)

	gen := s.bl.attach(a, vertex)
	s.queue.schedule(event{
		kind: circleEvent,
		x:    vertex.X,
		y:    vertex.Y + rel.Norm(),
		arc:  a,
		gen:  gen,
	})
}
