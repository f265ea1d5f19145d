package vis

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/psidex/kiu/internal/graphs"
	. "github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

// Vis defines a Renderer that writes a HTML file which "replays" the generation of the
// network using vis.js, one node or edge every Delay milliseconds.
type Vis struct {
	Palette sampler.Palette
	Delay   int
}

var _ graphs.Renderer = Vis{}

func NewVis() Vis {
	return Vis{Palette: sampler.DefaultPalette(), Delay: 5}
}

func (Vis) Ext() string { return ".html" }

// items returns the JSON encoded nodes and edges in replay order. A node is emitted
// right before the first edge that uses it.
func (v Vis) items(n *streets.Network) ([]string, error) {
	var out []string
	ids := NewIDs[sampler.Point]()
	seenEdges := NewSet[[2]int]()

	nodeID := func(p sampler.Point) (int, error) {
		id, isNew := ids.ID(p)
		if !isNew {
			return id, nil
		}
		nd := newNode()
		nd.Data = nodeData{ID: id, X: p.X, Y: p.Y, Fixed: true}
		b, err := json.Marshal(nd)
		if err != nil {
			return 0, err
		}
		out = append(out, string(b))
		return id, nil
	}

	for _, path := range n.Paths {
		points := sampler.SamplePathPoints(path.D)
		ts := v.Palette.For(path.Type)

		for i := 1; i < len(points); i++ {
			from, err := nodeID(points[i-1])
			if err != nil {
				return nil, err
			}
			to, err := nodeID(points[i])
			if err != nil {
				return nil, err
			}
			if from == to || seenEdges.Contains([2]int{to, from}) || !seenEdges.Add([2]int{from, to}) {
				continue
			}

			e := newEdge()
			e.Data = edgeData{
				From:  from,
				To:    to,
				Width: ts.Width,
				Color: edgeColor{Color: "#fafafa", Opacity: ts.Opacity},
			}
			b, err := json.Marshal(e)
			if err != nil {
				return nil, err
			}
			out = append(out, string(b))
		}
	}

	return out, nil
}

func (v Vis) Render(w io.Writer, n *streets.Network) error {
	items, err := v.items(n)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "\n%s,", item)
	}

	_, err = fmt.Fprintf(w, html, sb.String(), v.Delay)
	return err
}
