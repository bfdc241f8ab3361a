package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(a, b Point) halfEdge {
	return halfEdge{va: endpoint{p: a, resolved: true}, vb: endpoint{p: b, resolved: true}}
}

func TestClipEdge(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)

	cases := []struct {
		name         string
		a, b         Point
		ok           bool
		wantA, wantB Point
	}{
		{"Inside", Point{X: 1, Y: 1}, Point{X: 9, Y: 9}, true, Point{X: 1, Y: 1}, Point{X: 9, Y: 9}},
		{"Crossing", Point{X: -5, Y: 5}, Point{X: 15, Y: 5}, true, Point{X: 0, Y: 5}, Point{X: 10, Y: 5}},
		{"Diagonal", Point{X: -2, Y: -2}, Point{X: 12, Y: 12}, true, Point{X: 0, Y: 0}, Point{X: 10, Y: 10}},
		{"Outside", Point{X: -5, Y: -5}, Point{X: -1, Y: -1}, false, Point{}, Point{}},
		{"ParallelOutside", Point{X: -1, Y: 0}, Point{X: -1, Y: 10}, false, Point{}, Point{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := segment(tc.a, tc.b)
			require.Equal(t, tc.ok, clipEdge(&e, bounds))
			if !tc.ok {
				return
			}
			assert.InDelta(t, tc.wantA.X, e.va.p.X, 1e-12)
			assert.InDelta(t, tc.wantA.Y, e.va.p.Y, 1e-12)
			assert.InDelta(t, tc.wantB.X, e.vb.p.X, 1e-12)
			assert.InDelta(t, tc.wantB.Y, e.vb.p.Y, 1e-12)
		})
	}
}

func TestClipEdge_BorderVertex(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)

	// Starting on the left side, just inside or just outside, and leaving.
	for _, x := range []float64{1e-13, 0, -1e-13} {
		e := segment(Point{X: x, Y: 5}, Point{X: -3, Y: -3})
		assert.False(t, clipEdge(&e, bounds), "start x %v", x)
	}

	// The same start heading inwards keeps the whole edge.
	e := segment(Point{X: -1e-13, Y: 5}, Point{X: 3, Y: 13})
	require.True(t, clipEdge(&e, bounds))
	assert.Equal(t, Point{X: -1e-13, Y: 5}, e.va.p)
	assert.InDelta(t, 1.875, e.vb.p.X, 1e-12)
	assert.InDelta(t, 10, e.vb.p.Y, 1e-12)

	// An edge lying along a side a hair outside is kept.
	e = segment(Point{X: -1e-13, Y: 8}, Point{X: 1e-14, Y: 0})
	assert.True(t, clipEdge(&e, bounds))
}

func TestConnectEdge(t *testing.T) {
	bounds, err := NewRect(0, 0, 1000, 1000)
	require.NoError(t, err)

	t.Run("OpenBothWays", func(t *testing.T) {
		sites := toSites(Point{X: 500, Y: 700}, Point{X: 500, Y: 300})
		e := halfEdge{lSite: 0, rSite: 1}
		require.True(t, connectEdge(&e, sites, bounds))
		assert.Equal(t, Point{X: 1000, Y: 500}, e.va.p)
		assert.Equal(t, Point{X: 0, Y: 500}, e.vb.p)
	})

	t.Run("VerticalOutside", func(t *testing.T) {
		sites := toSites(Point{X: -300, Y: 10}, Point{X: -100, Y: 10})
		e := halfEdge{lSite: 0, rSite: 1}
		assert.False(t, connectEdge(&e, sites, bounds))
	})

	t.Run("RunningAway", func(t *testing.T) {
		// The edge starts below the rectangle and heads further down.
		sites := toSites(Point{X: 100, Y: 500}, Point{X: 300, Y: 500})
		e := halfEdge{lSite: 0, rSite: 1, va: endpoint{p: Point{X: 200, Y: -5}, resolved: true}}
		assert.False(t, connectEdge(&e, sites, bounds))
	})

	t.Run("Steep", func(t *testing.T) {
		sites := toSites(Point{X: 700, Y: 500}, Point{X: 300, Y: 400})
		e := halfEdge{lSite: 0, rSite: 1, va: endpoint{p: Point{X: 500, Y: 450}, resolved: true}}
		require.True(t, connectEdge(&e, sites, bounds))
		assert.Equal(t, 1000.0, e.vb.p.Y)
		d0 := e.vb.p.Sub(sites[0].Point).Norm()
		d1 := e.vb.p.Sub(sites[1].Point).Norm()
		assert.InDelta(t, d0, d1, 1e-9)
	})

	t.Run("AlreadyClosed", func(t *testing.T) {
		e := segment(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
		require.True(t, connectEdge(&e, nil, bounds))
		assert.Equal(t, Point{X: 2, Y: 2}, e.vb.p)
	})
}

func TestClipEdges_DropsDegenerate(t *testing.T) {
	bounds, err := NewRect(0, 0, 10, 10)
	require.NoError(t, err)
	sites := toSites(Point{X: 1, Y: 1}, Point{X: 3, Y: 3})

	raw := []halfEdge{
		{lSite: 0, rSite: 1, va: endpoint{p: Point{X: 4, Y: 0}, resolved: true}, vb: endpoint{p: Point{X: 0, Y: 4}, resolved: true}},
		// Touches the rectangle at a single corner.
		{lSite: 0, rSite: 1, va: endpoint{p: Point{X: -1, Y: 11}, resolved: true}, vb: endpoint{p: Point{X: 0, Y: 10}, resolved: true}},
		{lSite: 0, rSite: 1, va: endpoint{p: Point{X: 20, Y: 20}, resolved: true}, vb: endpoint{p: Point{X: 30, Y: 30}, resolved: true}},
	}
	edges := clipEdges(raw, sites, bounds, logger.NewNop())
	require.Len(t, edges, 1)
	assert.Equal(t, Point{X: 4, Y: 0}, edges[0].Start)
	assert.Equal(t, Point{X: 0, Y: 4}, edges[0].End)
	assert.Equal(t, 0, edges[0].Left)
	assert.Equal(t, 1, edges[0].Right)
}
