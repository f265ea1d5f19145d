package sampler

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/psidex/kiu/internal/streets"
)

func TestSamplePathPoints(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []Point
	}{
		{
			name: "move and line",
			d:    "M10.0,20.0 L30.0,40.0",
			want: []Point{{X: 10, Y: 20}, {X: 30, Y: 40}},
		},
		{
			name: "polyline",
			d:    "M0,0 L1,1 L2,2 L3,3",
			want: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		},
		{
			name: "quadratic control point is sampled",
			d:    "M0 0 Q50 100 100 0",
			want: []Point{{X: 0, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 0}},
		},
		{
			name: "cubic and negative coordinates",
			d:    "M-20,90 C100,90 120,150 240,130",
			want: []Point{{X: -20, Y: 90}, {X: 100, Y: 90}, {X: 120, Y: 150}, {X: 240, Y: 130}},
		},
		{
			name: "smooth cubic",
			d:    "M0,0 S10,10 20,0",
			want: []Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}},
		},
		{
			name: "relative and unsupported commands are skipped",
			d:    "M0,0 l5,5 H10 L20,20 Z",
			want: []Point{{X: 0, Y: 0}, {X: 20, Y: 20}},
		},
		{
			name: "empty",
			d:    "",
			want: nil,
		},
		{
			name: "no command",
			d:    "10,20 30,40",
			want: nil,
		},
		{
			name: "odd coordinate count",
			d:    "M10,20 L30",
			want: nil,
		},
		{
			name: "garbage",
			d:    "M10,20 L#?",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SamplePathPoints(tt.d)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProximityFalloff(t *testing.T) {
	points := []Point{{X: 10, Y: 20}, {X: 30, Y: 40}}

	tests := []struct {
		name    string
		pointer Point
		want    float64
	}{
		{"on a sample", Point{X: 30, Y: 40}, 1},
		{"exactly max distance", Point{X: 30, Y: 160}, 0},
		{"beyond max distance", Point{X: 500, Y: 500}, 0},
		{"half way", Point{X: 10, Y: -40}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Proximity(points, tt.pointer, DefaultMaxDistance)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProximityEmpty(t *testing.T) {
	if got := Proximity(nil, Point{}, DefaultMaxDistance); got != 0 {
		t.Errorf("empty points: got %v, want 0", got)
	}
	if got := Falloff(0, 0); got != 0 {
		t.Errorf("zero max distance: got %v, want 0", got)
	}
}

func TestSampledHighlight(t *testing.T) {
	n := streets.Generate(streets.DefaultConfig())
	s := Sample(n)
	palette := DefaultPalette()

	for i := range n.Paths {
		if len(s.Points(i)) < 2 {
			t.Fatalf("path %d sampled %d points from %q", i, len(s.Points(i)), n.Paths[i].D)
		}
	}
	if s.Points(-1) != nil || s.Points(len(n.Paths)) != nil {
		t.Error("out of range Points should be nil")
	}

	left := s.Highlight(nil, DefaultMaxDistance, palette)
	for i, st := range left {
		base := palette.For(n.Paths[i].Type)
		if st.Proximity != 0 || st.Opacity != base.Opacity || st.Width != base.Width {
			t.Fatalf("path %d: pointer-less style %+v, want baseline %+v", i, st, base)
		}
	}

	target := s.Points(0)[0]
	lit := s.Highlight(&target, DefaultMaxDistance, palette)
	if lit[0].Proximity != 1 {
		t.Errorf("path 0 proximity = %v, want 1", lit[0].Proximity)
	}
	if lit[0].Opacity <= left[0].Opacity {
		t.Errorf("highlighted opacity %v should exceed baseline %v", lit[0].Opacity, left[0].Opacity)
	}

	scores := s.Proximities(target, DefaultMaxDistance)
	for i, sc := range scores {
		if sc != lit[i].Proximity {
			t.Fatalf("path %d: Proximities %v != Highlight %v", i, sc, lit[i].Proximity)
		}
	}
}

func TestExtractPaths(t *testing.T) {
	doc := `<svg viewBox="0 0 1200 200">
  <path class="line-path" d="M-20,90 C100,90 120,150 240,130" fill="none"/>
  <g><path d="M0,0 L10,10"/></g>
  <path fill="none"/>
  <circle cx="1" cy="2" r="3"/>
</svg>`

	got, err := ExtractPaths(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"M-20,90 C100,90 120,150 240,130", "M0,0 L10,10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
