package graphs

import (
	"html/template"
	"io"

	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

var svgTemplate = template.Must(template.New("svg").Parse(`<svg xmlns="http://www.w3.org/2000/svg" class="streets" viewBox="0 0 {{.Width}} {{.Height}}" preserveAspectRatio="xMidYMid slice" aria-hidden="true">
{{- if .Background}}
<rect width="100%" height="100%" fill="{{.Background}}"/>
{{- end}}
<g fill="none" stroke="{{.Stroke}}" stroke-linecap="round" stroke-linejoin="round">
{{- range $i, $p := .Paths}}
<path id="street-{{$i}}" class="{{$p.Type}}" d="{{$p.D}}" stroke-width="{{printf "%.2f" $p.Width}}" stroke-opacity="{{printf "%.2f" $p.Opacity}}"/>
{{- end}}
</g>
</svg>
`))

type svgPath struct {
	D       string
	Type    streets.PathType
	Width   float64
	Opacity float64
}

// SVG renders the network as a standalone SVG document using each type's baseline
// style. The path elements carry ids street-N in emission order.
type SVG struct {
	Palette    sampler.Palette
	Stroke     string
	Background string
}

var _ Renderer = SVG{}

func NewSVG() SVG {
	return SVG{Palette: sampler.DefaultPalette(), Stroke: "#fafafa", Background: "#0a0a0a"}
}

func (SVG) Ext() string { return ".svg" }

func (s SVG) Render(w io.Writer, n *streets.Network) error {
	paths := make([]svgPath, len(n.Paths))
	for i, p := range n.Paths {
		ts := s.Palette.For(p.Type)
		paths[i] = svgPath{D: p.D, Type: p.Type, Width: ts.Width, Opacity: ts.Opacity}
	}

	return svgTemplate.Execute(w, struct {
		Width      float64
		Height     float64
		Stroke     string
		Background string
		Paths      []svgPath
	}{n.Grid.Width, n.Grid.Height, s.Stroke, s.Background, paths})
}
