package render

import (
	"io"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	edgeColor   = "#5470c6"
	borderColor = "#757575"
	siteColor   = "lightgreen"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart draws the sites of a diagram as a scatter series and overlays one
// line per edge. Border edges are drawn in a separate series.
func Chart(diagram *voronoi.Diagram, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	points := make([]opts.ScatterData, 0, len(diagram.Sites))
	for _, site := range diagram.Sites {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X, site.Y},
		})
	}

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: siteColor,
			}),
		)

	for i := range diagram.Edges {
		edge := &diagram.Edges[i]

		name, color := "Edges", edgeColor
		if edge.IsBorder() {
			name, color = "Border", borderColor
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries(name, []opts.LineData{
			{Value: []float64{edge.Start.X, edge.Start.Y}},
			{Value: []float64{edge.End.X, edge.End.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

// Render writes the chart of diagram as an HTML fragment.
func Render(w io.Writer, diagram *voronoi.Diagram, title string) error {
	return Chart(diagram, title).Render(w)
}
