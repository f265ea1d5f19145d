package graphs

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	. "github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

// ECharts renders the network as a go-echarts HTML page. Every sampled point becomes a
// fixed node and every path a chain of links, with one series per path type so each
// type gets its own line style.
type ECharts struct {
	Palette sampler.Palette
	Title   string
}

var _ Renderer = ECharts{}

func NewECharts() ECharts {
	return ECharts{Palette: sampler.DefaultPalette(), Title: "kiu streets"}
}

func (ECharts) Ext() string { return ".html" }

type echartsSeries struct {
	nodes []opts.GraphNode
	links []opts.GraphLink
}

func pointName(p sampler.Point) string {
	return fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
}

// echartsData splits n into one node/link series per path type. Nodes are shared
// between paths that meet at the same point and only emitted in the first series
// that uses them; links are deduplicated in both directions.
func echartsData(n *streets.Network) map[streets.PathType]*echartsSeries {
	series := map[streets.PathType]*echartsSeries{
		streets.Artery:    {},
		streets.Street:    {},
		streets.Connector: {},
	}
	seenNodes := NewSet[string]()
	seenLinks := NewSet[string]()

	for _, path := range n.Paths {
		s := series[path.Type]
		points := sampler.SamplePathPoints(path.D)

		for i, p := range points {
			name := pointName(p)
			if seenNodes.Add(name) {
				s.nodes = append(s.nodes, opts.GraphNode{
					Name:       name,
					X:          float32(p.X),
					Y:          float32(p.Y),
					Fixed:      opts.Bool(true),
					SymbolSize: 1,
				})
			}
			if i == 0 {
				continue
			}

			prev := pointName(points[i-1])
			if prev == name {
				continue
			}
			if seenLinks.Contains(name+"\t"+prev) || !seenLinks.Add(prev+"\t"+name) {
				continue
			}
			s.links = append(s.links, opts.GraphLink{Source: prev, Target: name})
		}
	}

	return series
}

func (e ECharts) Render(w io.Writer, n *streets.Network) error {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: e.Title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(false),
		}),
	)

	data := echartsData(n)
	for _, t := range []streets.PathType{streets.Artery, streets.Street, streets.Connector} {
		ts := e.Palette.For(t)
		graph.AddSeries(
			t.String(),
			data[t].nodes,
			data[t].links,
			charts.WithGraphChartOpts(opts.GraphChart{
				Layout:    "none",
				Roam:      opts.Bool(true),
				Draggable: opts.Bool(false),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color:   "#fafafa",
				Width:   float32(ts.Width),
				Opacity: float32(ts.Opacity),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)
	}

	page := components.NewPage()
	page.SetPageTitle(e.Title)
	page.AddCharts(graph)

	return page.Render(w)
}
