package render

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// UniformSites scatters n sites with integer coordinates over
// [0, width) x [0, height).
func UniformSites(n, width, height int, rng *rand.Rand) []voronoi.Point {
	sites := make([]voronoi.Point, n)
	for i := range sites {
		sites[i] = voronoi.Point{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return sites
}

// GridSites places n sites at the centers of a near-square grid of cells
// covering width x height, row by row.
func GridSites(n, width, height int) []voronoi.Point {
	if n <= 0 {
		return []voronoi.Point{}
	}
	sites := make([]voronoi.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			sites = append(sites, voronoi.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return sites
}
