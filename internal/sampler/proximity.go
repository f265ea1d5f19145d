package sampler

import (
	"math"

	"github.com/psidex/kiu/internal/streets"
)

const DefaultMaxDistance = 120

// MinDistance returns the smallest Euclidean distance from p to any of points. ok is
// false when points is empty.
func MinDistance(points []Point, p Point) (dist float64, ok bool) {
	if len(points) == 0 {
		return 0, false
	}
	dist = math.Inf(1)
	for _, q := range points {
		dist = math.Min(dist, math.Hypot(q.X-p.X, q.Y-p.Y))
	}
	return dist, true
}

// Falloff maps a distance to a score in [0, 1] that drops linearly to 0 at maxDistance.
func Falloff(dist, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return math.Max(0, 1-dist/maxDistance)
}

// Proximity scores how close pointer is to the sampled points of a path.
func Proximity(points []Point, pointer Point, maxDistance float64) float64 {
	dist, ok := MinDistance(points, pointer)
	if !ok {
		return 0
	}
	return Falloff(dist, maxDistance)
}

// TypeStyle is the rendering baseline for one path type.
type TypeStyle struct {
	Opacity float64 `json:"opacity" toml:"opacity" yaml:"opacity"`
	Gain    float64 `json:"gain" toml:"gain" yaml:"gain"`
	Width   float64 `json:"width" toml:"width" yaml:"width"`
}

type Palette struct {
	Artery    TypeStyle `json:"artery" toml:"artery" yaml:"artery"`
	Street    TypeStyle `json:"street" toml:"street" yaml:"street"`
	Connector TypeStyle `json:"connector" toml:"connector" yaml:"connector"`
}

func DefaultPalette() Palette {
	return Palette{
		Artery:    TypeStyle{Opacity: 0.35, Gain: 0.55, Width: 2},
		Street:    TypeStyle{Opacity: 0.2, Gain: 0.6, Width: 1.2},
		Connector: TypeStyle{Opacity: 0.08, Gain: 0.5, Width: 0.6},
	}
}

func (p Palette) For(t streets.PathType) TypeStyle {
	switch t {
	case streets.Artery:
		return p.Artery
	case streets.Street:
		return p.Street
	default:
		return p.Connector
	}
}

// Style is the computed look of one path for the current pointer.
type Style struct {
	Opacity   float64 `json:"o"`
	Width     float64 `json:"w"`
	Proximity float64 `json:"p"`
}

// Sampled holds a network with every path's points parsed once, so repeated pointer
// events don't re-parse the draw commands.
type Sampled struct {
	Network *streets.Network
	points  [][]Point
}

func Sample(n *streets.Network) *Sampled {
	s := &Sampled{Network: n, points: make([][]Point, len(n.Paths))}
	for i, p := range n.Paths {
		s.points[i] = SamplePathPoints(p.D)
	}
	return s
}

// Points returns the sampled points of path i, or nil if i is out of range.
func (s *Sampled) Points(i int) []Point {
	if i < 0 || i >= len(s.points) {
		return nil
	}
	return s.points[i]
}

// Proximities scores every path against pointer, in path order.
func (s *Sampled) Proximities(pointer Point, maxDistance float64) []float64 {
	scores := make([]float64, len(s.points))
	for i, pts := range s.points {
		scores[i] = Proximity(pts, pointer, maxDistance)
	}
	return scores
}

// Highlight computes every path's style. A nil pointer means the pointer has left the
// view and every path falls back to its baseline.
func (s *Sampled) Highlight(pointer *Point, maxDistance float64, palette Palette) []Style {
	styles := make([]Style, len(s.points))
	for i, path := range s.Network.Paths {
		ts := palette.For(path.Type)
		prox := 0.0
		if pointer != nil {
			prox = Proximity(s.points[i], *pointer, maxDistance)
		}
		styles[i] = Style{
			Opacity:   math.Min(1, ts.Opacity+prox*ts.Gain),
			Width:     ts.Width * (1 + prox*0.5),
			Proximity: prox,
		}
	}
	return styles
}
