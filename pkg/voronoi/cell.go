package voronoi

import "sort"

// Diagram is the result of CreateDiagram. It is read-only once returned.
type Diagram struct {
	Sites  []Site
	Edges  []Edge
	Bounds Rect

	// siteEdges[id] lists the edges bounding the cell of site id.
	siteEdges [][]int
}

func newDiagram(sites []Site, edges []Edge, bounds Rect) *Diagram {
	d := &Diagram{
		Sites:     sites,
		Edges:     edges,
		Bounds:    bounds,
		siteEdges: make([][]int, len(sites)),
	}
	for i := range edges {
		for _, id := range [2]int{edges[i].Left, edges[i].Right} {
			if id != NoSite {
				d.siteEdges[id] = append(d.siteEdges[id], i)
			}
		}
	}
	return d
}

// SiteEdges returns the indices of the edges bounding the cell of site id.
// Duplicate sites have no cell and no edges.
func (d *Diagram) SiteEdges(id int) []int {
	if id < 0 || id >= len(d.siteEdges) {
		return nil
	}
	return d.siteEdges[id]
}

// SiteNeighbours returns, in ascending order, the IDs of the sites whose
// cells share an edge with the cell of site id.
func (d *Diagram) SiteNeighbours(id int) []int {
	var out []int
	for _, e := range d.SiteEdges(id) {
		if other := d.Edges[e].Other(id); other != NoSite {
			out = append(out, other)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return sortedUnique(out)
}

// NeighbourEdges resolves the neighbour indices of edge i.
func (d *Diagram) NeighbourEdges(i int) []*Edge {
	out := make([]*Edge, 0, len(d.Edges[i].Neighbours))
	for _, n := range d.Edges[i].Neighbours {
		out = append(out, &d.Edges[n])
	}
	return out
}

// Vertices returns every distinct edge end, sorted by x then y.
func (d *Diagram) Vertices() []Point {
	seen := make(map[Point]struct{}, len(d.Edges))
	var out []Point
	for i := range d.Edges {
		for _, p := range [2]Point{d.Edges[i].Start, d.Edges[i].End} {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
