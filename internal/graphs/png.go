package graphs

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

// PNG rasterizes the network with fogleman/gg. Scale multiplies the canvas size to get
// the image size in pixels.
type PNG struct {
	Palette    sampler.Palette
	Scale      float64
	Stroke     color.RGBA
	Background color.RGBA
}

var _ Renderer = PNG{}

func NewPNG() PNG {
	return PNG{
		Palette:    sampler.DefaultPalette(),
		Scale:      1,
		Stroke:     color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		Background: color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
	}
}

func (PNG) Ext() string { return ".png" }

func (p PNG) Render(w io.Writer, n *streets.Network) error {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}

	width := int(n.Grid.Width*scale + 0.5)
	height := int(n.Grid.Height*scale + 0.5)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(p.Background)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, path := range n.Paths {
		points := sampler.SamplePathPoints(path.D)
		if len(points) < 2 {
			continue
		}

		ts := p.Palette.For(path.Type)
		dc.SetRGBA(
			float64(p.Stroke.R)/255,
			float64(p.Stroke.G)/255,
			float64(p.Stroke.B)/255,
			ts.Opacity,
		)
		dc.SetLineWidth(ts.Width)

		dc.MoveTo(points[0].X, points[0].Y)
		for _, pt := range points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	return dc.EncodePNG(w)
}
