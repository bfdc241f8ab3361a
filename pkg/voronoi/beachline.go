package voronoi

import "math"

// circle is the pending circle event of an arc. gen moves on every time the
// circle is attached or cancelled, which is what makes queued events stale.
type circle struct {
	active bool
	vertex Point
	gen    uint32
}

// arc is the visible part of a site's parabola. edge is the edge traced by
// the breakpoint on the arc's left.
type arc struct {
	site   int
	edge   int
	circle circle
}

// beachline keeps arcs in an arena indexed like the nodes of tree: arc i is
// node i.
type beachline struct {
	tree  rbTree
	arcs  []arc
	sites []Site
	edges *edgeBuilder
}

func newBeachline(sites []Site, edges *edgeBuilder) *beachline {
	// Every site opens at most two arcs.
	capacity := 2 * len(sites)
	return &beachline{
		tree:  newRBTree(capacity),
		arcs:  make([]arc, 0, capacity),
		sites: sites,
		edges: edges,
	}
}

// newArc inserts an arc for site right after arc after, or first when after
// is none.
func (bl *beachline) newArc(after, site int) int {
	i := bl.tree.insertSuccessor(after)
	bl.arcs = append(bl.arcs, arc{site: site, edge: none})
	return i
}

func (bl *beachline) prev(a int) int { return bl.tree.nodes[a].prev }

func (bl *beachline) next(a int) int { return bl.tree.nodes[a].next }

func (bl *beachline) point(a int) Point { return bl.sites[bl.arcs[a].site].Point }

func (bl *beachline) leftBreakPoint(a int, directrix float64) float64 {
	site := bl.point(a)
	if site.Y == directrix {
		return site.X
	}
	l := bl.prev(a)
	if l == none {
		return math.Inf(-1)
	}
	return breakpointX(bl.point(l), site, directrix)
}

func (bl *beachline) rightBreakPoint(a int, directrix float64) float64 {
	if r := bl.next(a); r != none {
		return bl.leftBreakPoint(r, directrix)
	}
	site := bl.point(a)
	if site.Y == directrix {
		return site.X
	}
	return math.Inf(1)
}

// locate finds the arcs around x on a sweep line at directrix. Both are the
// same arc when x falls strictly inside it; they differ when x sits on the
// breakpoint between them; rArc is none when x lies right of every arc on a
// flat beachline.
func (bl *beachline) locate(x, directrix float64) (lArc, rArc int) {
	lArc, rArc = none, none
	node := bl.tree.root
	for node != none {
		dxl := bl.leftBreakPoint(node, directrix) - x
		if dxl > Epsilon {
			node = bl.tree.nodes[node].left
			continue
		}
		dxr := x - bl.rightBreakPoint(node, directrix)
		if dxr > Epsilon {
			if bl.tree.nodes[node].right == none {
				lArc = node
				break
			}
			node = bl.tree.nodes[node].right
			continue
		}
		switch {
		case dxl > -Epsilon:
			lArc, rArc = bl.prev(node), node
		case dxr > -Epsilon:
			lArc, rArc = node, bl.next(node)
		default:
			lArc, rArc = node, node
		}
		break
	}
	if lArc == none && rArc != none {
		// x touches the left end of a flat first arc.
		lArc = rArc
	}
	return lArc, rArc
}

// invalidate cancels the pending circle event of a, if any.
func (bl *beachline) invalidate(a int) {
	c := &bl.arcs[a].circle
	if c.active {
		c.active = false
		c.gen++
	}
}

// attach records a pending circle for a and returns the generation to stamp
// on its event.
func (bl *beachline) attach(a int, vertex Point) uint32 {
	c := &bl.arcs[a].circle
	c.active = true
	c.vertex = vertex
	c.gen++
	return c.gen
}

// isCurrent reports whether a circle event still describes its arc.
func (bl *beachline) isCurrent(e event) bool {
	c := bl.arcs[e.arc].circle
	return c.active && c.gen == e.gen
}

func (bl *beachline) detach(a int) {
	bl.invalidate(a)
	bl.tree.removeNode(a)
}

// insertArcFor opens an arc for site and returns the arcs whose circle
// events must be re-evaluated.
func (bl *beachline) insertArcFor(site int) []int {
	p := bl.sites[site].Point
	lArc, rArc := bl.locate(p.X, p.Y)

	newArc := bl.newArc(lArc, site)

	switch {
	case lArc == none && rArc == none:
		// First arc.
		return nil

	case lArc == rArc:
		// Split an arc in two around the new one. Both breakpoints trace the
		// same edge, in opposite directions.
		bl.invalidate(lArc)
		rArc = bl.newArc(newArc, bl.arcs[lArc].site)
		e := bl.edges.create(bl.arcs[lArc].site, site)
		bl.arcs[newArc].edge = e
		bl.arcs[rArc].edge = e
		return []int{lArc, rArc}

	case rArc == none:
		// Flat beachline: the site shares the sweep line with the last arc's
		// site and opens to its right. Nothing vanishes.
		bl.arcs[newArc].edge = bl.edges.create(bl.arcs[lArc].site, site)
		return nil
	}

	// The site sits exactly on the breakpoint between two arcs: the edge
	// they traced ends here and two new ones start.
	bl.invalidate(lArc)
	bl.invalidate(rArc)

	lSite := bl.arcs[lArc].site
	rSite := bl.arcs[rArc].site
	vertex := circumcenter(bl.sites[lSite].Point, p, bl.sites[rSite].Point)

	bl.edges.setStartpoint(bl.arcs[rArc].edge, lSite, rSite, vertex)
	bl.arcs[newArc].edge = bl.edges.createEnded(lSite, site, vertex)
	bl.arcs[rArc].edge = bl.edges.createEnded(site, rSite, vertex)
	return []int{lArc, rArc}
}

// removeArc collapses a and every neighbour vanishing at the same vertex,
// closes the edges between them, opens the edge between the surviving
// outer arcs and returns those two for re-evaluation.
func (bl *beachline) removeArc(a int) (vertex Point, recheck []int) {
	vertex = bl.arcs[a].circle.vertex
	previous := bl.prev(a)
	next := bl.next(a)

	bl.detach(a)

	var left []int
	lArc := previous
	for bl.vanishesAt(lArc, vertex) {
		previous = bl.prev(lArc)
		left = append(left, lArc)
		bl.detach(lArc)
		lArc = previous
	}
	bl.invalidate(lArc)

	var right []int
	rArc := next
	for bl.vanishesAt(rArc, vertex) {
		next = bl.next(rArc)
		right = append(right, rArc)
		bl.detach(rArc)
		rArc = next
	}
	bl.invalidate(rArc)

	transitions := make([]int, 0, len(left)+len(right)+3)
	transitions = append(transitions, lArc)
	for i := len(left) - 1; i >= 0; i-- {
		transitions = append(transitions, left[i])
	}
	transitions = append(transitions, a)
	transitions = append(transitions, right...)
	transitions = append(transitions, rArc)

	for i := 1; i < len(transitions); i++ {
		l := bl.arcs[transitions[i-1]].site
		r := transitions[i]
		bl.edges.setStartpoint(bl.arcs[r].edge, l, bl.arcs[r].site, vertex)
	}

	bl.arcs[rArc].edge = bl.edges.createEnded(bl.arcs[lArc].site, bl.arcs[rArc].site, vertex)
	return vertex, []int{lArc, rArc}
}

func (bl *beachline) vanishesAt(a int, vertex Point) bool {
	if a == none {
		return false
	}
	c := bl.arcs[a].circle
	return c.active && samePoint(c.vertex, vertex)
}
