package voronoi

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Epsilon is the single tolerance used by every stage: two coordinates closer
// than Epsilon are the same coordinate, a point within Epsilon of the
// rectangle's border is on the border.
const Epsilon = 1e-9

// collinearEpsilon bounds the doubled signed area below which three sites
// are treated as collinear and never produce a circle event.
const collinearEpsilon = 2e-12

// Point is a location in the plane.
type Point = r2.Point

// NoSite marks the missing second site of a synthesized border edge.
const NoSite = -1

// Site is an input point. ID is its index in the slice passed to CreateDiagram.
type Site struct {
	ID int
	Point
}

// Rect is the axis-aligned bounding rectangle every edge is clipped to.
type Rect struct {
	r2.Rect
}

// NewRect builds a rectangle from its extremes. The rectangle must have a
// positive area.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	r := Rect{r2.Rect{
		X: r1.Interval{Lo: minX, Hi: maxX},
		Y: r1.Interval{Lo: minY, Hi: maxY},
	}}
	if err := r.validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func (r Rect) MinX() float64 { return r.X.Lo }
func (r Rect) MaxX() float64 { return r.X.Hi }
func (r Rect) MinY() float64 { return r.Y.Lo }
func (r Rect) MaxY() float64 { return r.Y.Hi }

// sameSide reports whether a and b lie on one common side of r.
func (r Rect) sameSide(a, b Point) bool {
	for _, on := range [4]func(Point) bool{
		func(p Point) bool { return equalWithEpsilon(p.X, r.MinX()) },
		func(p Point) bool { return equalWithEpsilon(p.X, r.MaxX()) },
		func(p Point) bool { return equalWithEpsilon(p.Y, r.MinY()) },
		func(p Point) bool { return equalWithEpsilon(p.Y, r.MaxY()) },
	} {
		if on(a) && on(b) {
			return true
		}
	}
	return false
}

// clamp moves p onto the closed rectangle.
func (r Rect) clamp(p Point) Point {
	return r.Rect.ClampPoint(p)
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func lessThanWithEpsilon(a, b float64) bool {
	return b-a > Epsilon
}

func greaterThanWithEpsilon(a, b float64) bool {
	return a-b > Epsilon
}

// samePoint reports whether a and b are the same vertex.
func samePoint(a, b Point) bool {
	return equalWithEpsilon(a.X, b.X) && equalWithEpsilon(a.Y, b.Y)
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// turn returns twice the signed area of the triangle left, mid, right. The
// three arcs close a circle below the sweep line only when it is negative.
func turn(left, mid, right Point) float64 {
	return 2 * left.Sub(mid).Cross(right.Sub(mid))
}

// collinear reports whether the three sites lie on one line, in which case
// their circumcircle is degenerate.
func collinear(left, mid, right Point) bool {
	return math.Abs(turn(left, mid, right)) <= collinearEpsilon
}

// circumcenter returns the center of the circle through a, b and c. The
// caller must rule out collinear input.
func circumcenter(a, b, c Point) Point {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y
	d := 2 * (bx*cy - by*cx)
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return Point{X: (cy*hb-by*hc)/d + a.X, Y: (bx*hc-cx*hb)/d + a.Y}
}

// breakpointX returns the x coordinate where the parabola of left meets the
// parabola of right on a sweep line at directrix. Sites lying on the sweep
// line are degenerate parabolas (vertical rays) and meet at their own x.
func breakpointX(left, right Point, directrix float64) float64 {
	pby2 := right.Y - directrix
	if pby2 == 0 {
		return right.X
	}
	plby2 := left.Y - directrix
	if plby2 == 0 {
		return left.X
	}
	hl := left.X - right.X
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-left.Y+plby2/2+right.Y-pby2/2)))/aby2 + right.X
	}
	return (right.X + left.X) / 2
}

// BorderLocation classifies a point against the border of a rectangle.
type BorderLocation int

const (
	NotOnBorder BorderLocation = iota
	Left
	BottomLeft
	Bottom
	BottomRight
	Right
	TopRight
	Top
	TopLeft
)

var borderLocationNames = [...]string{
	NotOnBorder: "NotOnBorder",
	Left:        "Left",
	BottomLeft:  "BottomLeft",
	Bottom:      "Bottom",
	BottomRight: "BottomRight",
	Right:       "Right",
	TopRight:    "TopRight",
	Top:         "Top",
	TopLeft:     "TopLeft",
}

func (b BorderLocation) String() string {
	if b < 0 || int(b) >= len(borderLocationNames) {
		return "BorderLocation(?)"
	}
	return borderLocationNames[b]
}

// IsCorner reports whether the location is one of the four corners.
func (b BorderLocation) IsCorner() bool {
	return b == BottomLeft || b == BottomRight || b == TopRight || b == TopLeft
}

// Locate returns where p lies on the border of r. "Bottom" is the minY side,
// matching a y-up plot. Points off the border, inside or not, are
// NotOnBorder.
func (r Rect) Locate(p Point) BorderLocation {
	left := equalWithEpsilon(p.X, r.MinX())
	right := equalWithEpsilon(p.X, r.MaxX())
	bottom := equalWithEpsilon(p.Y, r.MinY())
	top := equalWithEpsilon(p.Y, r.MaxY())

	inX := !lessThanWithEpsilon(p.X, r.MinX()) && !greaterThanWithEpsilon(p.X, r.MaxX())
	inY := !lessThanWithEpsilon(p.Y, r.MinY()) && !greaterThanWithEpsilon(p.Y, r.MaxY())

	switch {
	case left && bottom:
		return BottomLeft
	case right && bottom:
		return BottomRight
	case right && top:
		return TopRight
	case left && top:
		return TopLeft
	case left && inY:
		return Left
	case right && inY:
		return Right
	case bottom && inX:
		return Bottom
	case top && inX:
		return Top
	}
	return NotOnBorder
}

// perimeterPosition maps a border point to its distance along the border,
// walking counter-clockwise from (minX, minY). Off-border points return -1.
func (r Rect) perimeterPosition(p Point) float64 {
	w := r.MaxX() - r.MinX()
	h := r.MaxY() - r.MinY()
	switch r.Locate(p) {
	case BottomLeft:
		return 0
	case Bottom:
		return p.X - r.MinX()
	case BottomRight:
		return w
	case Right:
		return w + p.Y - r.MinY()
	case TopRight:
		return w + h
	case Top:
		return w + h + r.MaxX() - p.X
	case TopLeft:
		return 2*w + h
	case Left:
		return 2*w + h + r.MaxY() - p.Y
	}
	return -1
}
