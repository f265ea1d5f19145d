package graphology

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/psidex/kiu/internal/graphs"
	. "github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

var colors = map[streets.PathType]string{
	streets.Artery:    "#fafafa",
	streets.Street:    "#9a9a9a",
	streets.Connector: "#4a4a4a",
}

// Graphology defines a Renderer that writes the network as graphology JSON. Sampled
// points are nodes keyed by first-seen order and each path segment is an edge carrying
// its path index and type.
type Graphology struct {
	Palette sampler.Palette
}

var _ graphs.Renderer = Graphology{}

func NewGraphology() Graphology {
	return Graphology{Palette: sampler.DefaultPalette()}
}

func (Graphology) Ext() string { return ".json" }

// Build converts n into graphology's serialized form.
func (g Graphology) Build(n *streets.Network) *SerializedGraph {
	graph := &SerializedGraph{
		Options: GraphOptions{Type: "undirected", Multi: true},
		Nodes:   []Node{},
		Edges:   []Edge{},
	}
	ids := NewIDs[sampler.Point]()

	nodeKey := func(p sampler.Point) string {
		id, isNew := ids.ID(p)
		key := strconv.Itoa(id)
		if isNew {
			graph.Nodes = append(graph.Nodes, Node{
				Key: key,
				Attributes: NodeAttributes{
					X: p.X, Y: p.Y, Size: 1,
					Color: "#fafafa",
				},
			})
		}
		return key
	}

	for i, path := range n.Paths {
		points := sampler.SamplePathPoints(path.D)
		ts := g.Palette.For(path.Type)

		for j := 1; j < len(points); j++ {
			from, to := nodeKey(points[j-1]), nodeKey(points[j])
			if from == to {
				continue
			}
			graph.Edges = append(graph.Edges, Edge{
				Key:    strconv.Itoa(len(graph.Edges) + 1),
				Source: from,
				Target: to,
				Attributes: EdgeAttributes{
					Size:  ts.Width,
					Color: colors[path.Type],
					Type:  path.Type.String(),
					Path:  i,
				},
			})
		}
	}

	return graph
}

func (g Graphology) Render(w io.Writer, n *streets.Network) error {
	return json.NewEncoder(w).Encode(g.Build(n))
}
