package voronoi

// Edge is a segment of the diagram. Start and End lie in the closed bounding
// rectangle. Left and Right are the IDs of the sites it separates; Right is
// NoSite for a border edge. Neighbours holds the indices, in Diagram.Edges,
// of the other edges sharing Start or End, in ascending order.
type Edge struct {
	Start, End Point
	Left       int
	Right      int
	Neighbours []int
}

// IsBorder reports whether the edge runs along the bounding rectangle and
// was synthesized rather than swept.
func (e *Edge) IsBorder() bool {
	return e.Right == NoSite
}

// Other returns the site on the other side of the edge from site, or NoSite.
func (e *Edge) Other(site int) int {
	switch site {
	case e.Left:
		return e.Right
	case e.Right:
		return e.Left
	}
	return NoSite
}

func (e *Edge) Length() float64 {
	return e.End.Sub(e.Start).Norm()
}

func (e *Edge) Mid() Point {
	return e.Start.Add(e.End).Mul(0.5)
}

// endpoint is a sweep-time edge end: either a resolved vertex or still open,
// in which case it lies somewhere along the edge's bisector beyond anything
// computed so far.
type endpoint struct {
	p        Point
	resolved bool
}

// halfEdge is a sweep-time edge between the cells of lSite and rSite. The
// site order fixes which way an edge with a single resolved end va runs.
type halfEdge struct {
	lSite, rSite int
	va, vb       endpoint
}

// edgeBuilder owns every edge created during the sweep.
type edgeBuilder struct {
	edges []halfEdge
}

func (b *edgeBuilder) create(lSite, rSite int) int {
	b.edges = append(b.edges, halfEdge{lSite: lSite, rSite: rSite})
	return len(b.edges) - 1
}

// createEnded creates an edge whose end vertex is already known: the edge
// starts at vertex and grows away from it.
func (b *edgeBuilder) createEnded(lSite, rSite int, vertex Point) int {
	e := b.create(lSite, rSite)
	b.setEndpoint(e, lSite, rSite, vertex)
	return e
}

// setStartpoint resolves one end of edge e at vertex, seen from a left site
// lSite and a right site rSite. The first resolved end also fixes the edge's
// orientation.
func (b *edgeBuilder) setStartpoint(e, lSite, rSite int, vertex Point) {
	edge := &b.edges[e]
	switch {
	case !edge.va.resolved && !edge.vb.resolved:
		edge.va = endpoint{p: vertex, resolved: true}
		edge.lSite = lSite
		edge.rSite = rSite
	case edge.lSite == rSite:
		edge.vb = endpoint{p: vertex, resolved: true}
	default:
		edge.va = endpoint{p: vertex, resolved: true}
	}
}

func (b *edgeBuilder) setEndpoint(e, lSite, rSite int, vertex Point) {
	b.setStartpoint(e, rSite, lSite, vertex)
}
