// Package tessellation computes the pointer-reactive tile grid behind the hero banner.
// Positions are normalized: the hero box spans [0,1] on both axes.
package tessellation

import (
	"math"
)

const (
	DefaultCols        = 16
	DefaultRows        = 10
	DefaultMaxDistance = 0.4

	baseOpacity = 0.03
	opacityGain = 0.22
	shiftGain   = 3
)

type Grid struct {
	Cols        int     `json:"cols" toml:"cols" yaml:"cols"`
	Rows        int     `json:"rows" toml:"rows" yaml:"rows"`
	MaxDistance float64 `json:"maxDistance" toml:"max_distance" yaml:"max_distance"`
}

func DefaultGrid() Grid {
	return Grid{Cols: DefaultCols, Rows: DefaultRows, MaxDistance: DefaultMaxDistance}
}

// TileStyle is the look of one tile. ShiftX and ShiftY are pixel offsets toward the
// pointer.
type TileStyle struct {
	Opacity float64 `json:"o"`
	ShiftX  float64 `json:"x"`
	ShiftY  float64 `json:"y"`
}

func (g Grid) Len() int {
	if g.Cols <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Cols * g.Rows
}

// Center returns the normalized center of tile i, laid out row-major.
func (g Grid) Center(i int) (x, y float64) {
	col := i % g.Cols
	row := i / g.Cols
	return (float64(col) + 0.5) / float64(g.Cols), (float64(row) + 0.5) / float64(g.Rows)
}

// Tile styles tile i for a pointer at (px, py).
func (g Grid) Tile(i int, px, py float64) TileStyle {
	tx, ty := g.Center(i)
	dx, dy := px-tx, py-ty

	proximity := 0.0
	if g.MaxDistance > 0 {
		proximity = math.Max(0, 1-math.Hypot(dx, dy)/g.MaxDistance)
	}

	return TileStyle{
		Opacity: baseOpacity + proximity*opacityGain,
		ShiftX:  dx * proximity * shiftGain,
		ShiftY:  dy * proximity * shiftGain,
	}
}

// Tiles styles every tile for a pointer at (px, py).
func (g Grid) Tiles(px, py float64) []TileStyle {
	styles := make([]TileStyle, g.Len())
	for i := range styles {
		styles[i] = g.Tile(i, px, py)
	}
	return styles
}
