package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderEdges_NoActiveSite(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 1, Y: 1})

	assert.Nil(t, borderEdges(nil, sites, []bool{false}, bounds, logger.NewNop()))
}

func TestBorderEdges_SingleCell(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 3, Y: 3})

	got := borderEdges(nil, sites, []bool{true}, bounds, logger.NewNop())

	want := []Edge{
		{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}, Left: 0, Right: NoSite},
		{Start: Point{X: 10, Y: 0}, End: Point{X: 10, Y: 10}, Left: 0, Right: NoSite},
		{Start: Point{X: 10, Y: 10}, End: Point{X: 0, Y: 10}, Left: 0, Right: NoSite},
		{Start: Point{X: 0, Y: 10}, End: Point{X: 0, Y: 0}, Left: 0, Right: NoSite},
	}
	assert.Equal(t, want, got)
}

func TestBorderEdges_SplitByBisector(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 5, Y: 7}, Point{X: 5, Y: 3})
	edges := []Edge{{Start: Point{X: 0, Y: 5}, End: Point{X: 10, Y: 5}, Left: 0, Right: 1}}

	got := borderEdges(edges, sites, []bool{true, true}, bounds, logger.NewNop())

	type span struct {
		start, end Point
		owner      int
	}
	var spans []span
	for _, e := range got {
		require.True(t, e.IsBorder())
		spans = append(spans, span{e.Start, e.End, e.Left})
	}
	assert.Equal(t, []span{
		{Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, 1},
		{Point{X: 10, Y: 0}, Point{X: 10, Y: 5}, 1},
		{Point{X: 10, Y: 5}, Point{X: 10, Y: 10}, 0},
		{Point{X: 10, Y: 10}, Point{X: 0, Y: 10}, 0},
		{Point{X: 0, Y: 10}, Point{X: 0, Y: 5}, 0},
		{Point{X: 0, Y: 5}, Point{X: 0, Y: 0}, 1},
	}, spans)
}

func TestBorderEdges_EdgeAtCorner(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 2, Y: 8}, Point{X: 8, Y: 2})
	edges := []Edge{{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 10}, Left: 0, Right: 1}}

	got := borderEdges(edges, sites, []bool{true, true}, bounds, logger.NewNop())

	require.Len(t, got, 4, "edge ends merge with the corners")
	owners := map[Point]int{}
	for _, e := range got {
		owners[e.Mid()] = e.Left
	}
	assert.Equal(t, map[Point]int{
		{X: 5, Y: 0}:  1,
		{X: 10, Y: 5}: 1,
		{X: 5, Y: 10}: 0,
		{X: 0, Y: 5}:  0,
	}, owners)
}

func TestBorderEdges_SweptEdgeOnBorder(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 1, Y: 5}, Point{X: -1, Y: 5})
	edges := []Edge{{Start: Point{X: 0, Y: 10}, End: Point{X: 0, Y: 0}, Left: 0, Right: 1}}

	got := borderEdges(edges, sites, []bool{true, true}, bounds, logger.NewNop())

	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotEqual(t, 0.0, e.Mid().X, "border edge %v-%v repeats the swept edge", e.Start, e.End)
		assert.Equal(t, 0, e.Left)
	}
}

func TestNearestSite_TieBreak(t *testing.T) {
	sites := toSites(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 9, Y: 9})
	edges := []Edge{{Left: 1, Right: 0}, {Left: 2, Right: NoSite}}

	assert.Equal(t, 0, nearestSite(Point{X: 1, Y: 0}, edges, sites, []int{0}, []int{1}))
	assert.Equal(t, 2, nearestSite(Point{X: 9, Y: 8}, edges, sites, []int{0, 1}))
	assert.Equal(t, NoSite, nearestSite(Point{X: 1, Y: 0}, edges, sites))
}
