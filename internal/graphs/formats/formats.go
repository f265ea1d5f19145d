// Package formats maps output format names to renderers.
package formats

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/psidex/kiu/internal/graphs"
	"github.com/psidex/kiu/internal/graphs/graphology"
	"github.com/psidex/kiu/internal/graphs/vis"
)

var constructors = map[string]func() graphs.Renderer{
	"svg":        func() graphs.Renderer { return graphs.NewSVG() },
	"png":        func() graphs.Renderer { return graphs.NewPNG() },
	"echarts":    func() graphs.Renderer { return graphs.NewECharts() },
	"json":       func() graphs.Renderer { return graphs.Descriptors{Indent: true} },
	"graphology": func() graphs.Renderer { return graphology.NewGraphology() },
	"vis":        func() graphs.Renderer { return vis.NewVis() },
}

// ByName returns a renderer with default settings for the named format.
func ByName(name string) (graphs.Renderer, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, errors.Errorf("unknown output format: %s", name)
	}
	return c(), nil
}

// Names lists the known format names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
