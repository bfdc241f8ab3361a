package voronoi

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// borderPoint is a stop on the walk around the rectangle: a corner or the
// clipped end of one or more edges.
type borderPoint struct {
	p     Point
	pos   float64
	edges []int
}

// borderEdges walks the perimeter of bounds counter-clockwise and returns one
// edge per gap between consecutive stops, owned by the site whose cell the
// gap bounds. active marks the sites that own a cell.
func borderEdges(edges []Edge, sites []Site, active []bool, bounds Rect, log *logger.ZapLogger) []Edge {
	if !anyActive(active) {
		return nil
	}

	stops := make([]borderPoint, 0, 4+len(edges)/2)
	for _, corner := range bounds.Vertices() {
		stops = append(stops, borderPoint{p: corner, pos: bounds.perimeterPosition(corner)})
	}
	for i := range edges {
		for _, p := range [2]Point{edges[i].Start, edges[i].End} {
			if pos := bounds.perimeterPosition(p); pos >= 0 {
				stops = append(stops, borderPoint{p: p, pos: pos, edges: []int{i}})
			}
		}
	}

	sort.SliceStable(stops, func(i, j int) bool { return stops[i].pos < stops[j].pos })

	merged := make([]borderPoint, 0, len(stops))
	merged = append(merged, stops[0])
	for _, s := range stops[1:] {
		last := &merged[len(merged)-1]
		if equalWithEpsilon(s.pos, last.pos) || samePoint(s.p, last.p) {
			last.edges = append(last.edges, s.edges...)
			continue
		}
		merged = append(merged, s)
	}

	out := make([]Edge, 0, len(merged))
	for i := range merged {
		a := merged[i]
		b := merged[(i+1)%len(merged)]
		if samePoint(a.p, b.p) || coveredBySwept(a, b, edges) {
			continue
		}
		mid := a.p.Add(b.p).Mul(0.5)
		owner := nearestSite(mid, edges, sites, a.edges, b.edges)
		if owner == NoSite {
			owner = nearestActiveSite(mid, sites, active)
		}
		out = append(out, Edge{Start: a.p, End: b.p, Left: owner, Right: NoSite})
	}

	log.Info("[border] Border edges synthesized", zap.Int("stops", len(merged)), zap.Int("edges", len(out)))
	return out
}

// coveredBySwept reports whether a swept edge already runs along the border
// from a to b, as it does between a site and its mirror image outside.
func coveredBySwept(a, b borderPoint, edges []Edge) bool {
	for _, e := range a.edges {
		s, t := edges[e].Start, edges[e].End
		if (samePoint(s, a.p) && samePoint(t, b.p)) || (samePoint(s, b.p) && samePoint(t, a.p)) {
			return true
		}
	}
	return false
}

// nearestSite picks, among the sites of the edges touching the two ends of
// a border gap, the one closest to the gap. The cell owning the gap is
// always one of them.
func nearestSite(p Point, edges []Edge, sites []Site, touching ...[]int) int {
	best := NoSite
	bestDist := math.Inf(1)
	for _, list := range touching {
		for _, e := range list {
			for _, id := range [2]int{edges[e].Left, edges[e].Right} {
				if id == NoSite {
					continue
				}
				d := dist2(sites[id].Point, p)
				if d < bestDist || (d == bestDist && id < best) {
					best, bestDist = id, d
				}
			}
		}
	}
	return best
}

func nearestActiveSite(p Point, sites []Site, active []bool) int {
	best := NoSite
	bestDist := math.Inf(1)
	for _, s := range sites {
		if !active[s.ID] {
			continue
		}
		if d := dist2(s.Point, p); d < bestDist {
			best, bestDist = s.ID, d
		}
	}
	return best
}

func anyActive(active []bool) bool {
	for _, a := range active {
		if a {
			return true
		}
	}
	return false
}

func dist2(a, b Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
