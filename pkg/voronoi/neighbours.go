package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// edgeEnd is one of the two ends of edges[edge]; end is 0 for Start, 1 for
// End.
type edgeEnd struct {
	p    Point
	edge int
	end  int
}

// linkNeighbours snaps edge ends that are the same vertex to one coordinate,
// drops edges that collapse, and fills every Neighbours list. Two edges are
// neighbours when they share a vertex; the relation is symmetric because it
// is built from the vertex groups, never edge by edge.
func linkNeighbours(edges []Edge, log *logger.ZapLogger) []Edge {
	snapVertices(edges)

	kept := edges[:0]
	for _, e := range edges {
		if e.Start == e.End {
			continue
		}
		e.Neighbours = nil
		kept = append(kept, e)
	}
	edges = kept

	byVertex := make(map[Point][]int, len(edges))
	for i := range edges {
		byVertex[edges[i].Start] = append(byVertex[edges[i].Start], i)
		byVertex[edges[i].End] = append(byVertex[edges[i].End], i)
	}

	links := 0
	for _, group := range byVertex {
		for _, e := range group {
			for _, other := range group {
				if other != e {
					edges[e].Neighbours = append(edges[e].Neighbours, other)
					links++
				}
			}
		}
	}

	for i := range edges {
		edges[i].Neighbours = sortedUnique(edges[i].Neighbours)
	}

	log.Info("[neighbours] Neighbour graph built", zap.Int("edges", len(edges)), zap.Int("vertices", len(byVertex)), zap.Int("links", links))
	return edges
}

// snapVertices clusters edge ends closer than Epsilon and moves every end to
// the first coordinate of its cluster in (x, y) order.
func snapVertices(edges []Edge) {
	ends := make([]edgeEnd, 0, 2*len(edges))
	for i := range edges {
		ends = append(ends, edgeEnd{p: edges[i].Start, edge: i, end: 0})
		ends = append(ends, edgeEnd{p: edges[i].End, edge: i, end: 1})
	}
	sort.Slice(ends, func(i, j int) bool {
		a, b := ends[i], ends[j]
		if a.p.X != b.p.X {
			return a.p.X < b.p.X
		}
		if a.p.Y != b.p.Y {
			return a.p.Y < b.p.Y
		}
		if a.edge != b.edge {
			return a.edge < b.edge
		}
		return a.end < b.end
	})

	uf := newUnionFind(len(ends))
	for i := range ends {
		for j := i + 1; j < len(ends) && ends[j].p.X-ends[i].p.X < Epsilon; j++ {
			if equalWithEpsilon(ends[i].p.Y, ends[j].p.Y) {
				uf.union(i, j)
			}
		}
	}

	for i, e := range ends {
		p := ends[uf.find(i)].p
		if e.end == 0 {
			edges[e.edge].Start = p
		} else {
			edges[e.edge].End = p
		}
	}
}

// unionFind keeps the smallest index of every set as its root.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	switch {
	case ri < rj:
		u.parent[rj] = ri
	case rj < ri:
		u.parent[ri] = rj
	}
}

func sortedUnique(ids []int) []int {
	if len(ids) == 0 {
		return []int{}
	}
	sort.Ints(ids)
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
