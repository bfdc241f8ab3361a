package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// clipEdges turns the sweep's edges into segments inside bounds. Edges that
// never cross the rectangle, or shrink to a point on its border, are
// dropped. The order of the surviving edges follows the sweep.
func clipEdges(raw []halfEdge, sites []Site, bounds Rect, log *logger.ZapLogger) []Edge {
	out := make([]Edge, 0, len(raw))
	dropped := 0

	for i := range raw {
		edge := raw[i]
		if !connectEdge(&edge, sites, bounds) || !clipEdge(&edge, bounds) {
			dropped++
			continue
		}
		va := bounds.clamp(edge.va.p)
		vb := bounds.clamp(edge.vb.p)
		if samePoint(va, vb) || (bounds.sameSide(va, vb) && va.Sub(vb).Norm() <= sliverLength) {
			dropped++
			continue
		}
		out = append(out, Edge{Start: va, End: vb, Left: edge.lSite, Right: edge.rSite})
	}

	log.Info("[clip] Edges clipped", zap.Int("kept", len(out)), zap.Int("dropped", dropped))
	return out
}

// connectEdge resolves the open ends of an edge on the border lines of
// bounds by following the bisector of its sites. It reports false when the
// edge runs away from the rectangle.
func connectEdge(edge *halfEdge, sites []Site, bounds Rect) bool {
	if edge.vb.resolved {
		return true
	}

	va := edge.va
	xl, xr := bounds.MinX(), bounds.MaxX()
	yt, yb := bounds.MinY(), bounds.MaxY()

	l := sites[edge.lSite].Point
	r := sites[edge.rSite].Point
	fx := (l.X + r.X) / 2
	fy := (l.Y + r.Y) / 2

	var vb Point

	switch fm, fb := bisector(l, r, fx, fy); {
	case equalWithEpsilon(r.Y, l.Y):
		// Vertical bisector.
		if lessThanWithEpsilon(fx, xl) || greaterThanWithEpsilon(fx, xr) {
			return false
		}
		if l.X > r.X {
			// towards maxY
			if !va.resolved {
				va = endpoint{p: Point{X: fx, Y: yt}, resolved: true}
			} else if !lessThanWithEpsilon(va.p.Y, yb) {
				return false
			}
			vb = Point{X: fx, Y: yb}
		} else {
			// towards minY
			if !va.resolved {
				va = endpoint{p: Point{X: fx, Y: yb}, resolved: true}
			} else if lessThanWithEpsilon(va.p.Y, yt) {
				return false
			}
			vb = Point{X: fx, Y: yt}
		}

	case fm < -1 || fm > 1:
		// Steep bisector: intersect with the horizontal sides.
		if l.X > r.X {
			if !va.resolved {
				va = endpoint{p: Point{X: (yt - fb) / fm, Y: yt}, resolved: true}
			} else if !lessThanWithEpsilon(va.p.Y, yb) {
				return false
			}
			vb = Point{X: (yb - fb) / fm, Y: yb}
		} else {
			if !va.resolved {
				va = endpoint{p: Point{X: (yb - fb) / fm, Y: yb}, resolved: true}
			} else if lessThanWithEpsilon(va.p.Y, yt) {
				return false
			}
			vb = Point{X: (yt - fb) / fm, Y: yt}
		}

	default:
		// Shallow bisector: intersect with the vertical sides.
		if l.Y < r.Y {
			if !va.resolved {
				va = endpoint{p: Point{X: xl, Y: fm*xl + fb}, resolved: true}
			} else if !lessThanWithEpsilon(va.p.X, xr) {
				return false
			}
			vb = Point{X: xr, Y: fm*xr + fb}
		} else {
			if !va.resolved {
				va = endpoint{p: Point{X: xr, Y: fm*xr + fb}, resolved: true}
			} else if lessThanWithEpsilon(va.p.X, xl) {
				return false
			}
			vb = Point{X: xl, Y: fm*xl + fb}
		}
	}

	edge.va = va
	edge.vb = endpoint{p: vb, resolved: true}
	return true
}

// bisector returns slope and intercept of the perpendicular bisector of l
// and r through (fx, fy). Both are zero for a vertical bisector.
func bisector(l, r Point, fx, fy float64) (fm, fb float64) {
	if equalWithEpsilon(r.Y, l.Y) {
		return 0, 0
	}
	fm = (l.X - r.X) / (r.Y - l.Y)
	fb = fy - fm*fx
	return fm, fb
}

// sliverLength is the longest run along one side of the rectangle that is
// still taken for a vertex lying on the border.
const sliverLength = 4 * Epsilon

// clipEdge trims a resolved edge to bounds with the Liang–Barsky algorithm.
// An end less than Epsilon outside a side counts as on it. It reports false
// when no more than Epsilon of the edge lies inside.
func clipEdge(edge *halfEdge, bounds Rect) bool {
	a := edge.va.p
	b := edge.vb.p
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	for _, side := range [4]struct{ p, q float64 }{
		{-dx, a.X - bounds.MinX()},
		{dx, bounds.MaxX() - a.X},
		{-dy, a.Y - bounds.MinY()},
		{dy, bounds.MaxY() - a.Y},
	} {
		q := side.q
		if q < 0 && q > -Epsilon {
			q = 0
		}
		if side.p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / side.p
		if side.p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	if (t1-t0)*math.Hypot(dx, dy) <= Epsilon {
		return false
	}
	if t0 > 0 {
		edge.va.p = Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		edge.vb.p = Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return true
}
