package streets

import "math"

const (
	edgeJitter     = 0.2
	interiorJitter = 0.5
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a jittered grid intersection.
type Node struct {
	Point
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid holds (Rows+1) x (Cols+1) nodes in row-major order.
type Grid struct {
	Cols   int
	Rows   int
	Width  float64
	Height float64
	Nodes  []Node
}

// CellSize returns the width and height of one grid cell.
func (g Grid) CellSize() (float64, float64) {
	return g.Width / float64(g.Cols+1), g.Height / float64(g.Rows+1)
}

// Index returns the flat index of (row, col), or -1 if it is outside the grid.
func (g Grid) Index(row, col int) int {
	if row < 0 || row > g.Rows || col < 0 || col > g.Cols {
		return -1
	}
	return row*(g.Cols+1) + col
}

// At returns the node at (row, col). ok is false for out of range coordinates.
func (g Grid) At(row, col int) (n Node, ok bool) {
	i := g.Index(row, col)
	if i < 0 || i >= len(g.Nodes) {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Contains reports whether p lies inside the canvas.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X <= g.Width && p.Y >= 0 && p.Y <= g.Height
}

func (g Grid) clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, 0), g.Width),
		Y: math.Min(math.Max(p.Y, 0), g.Height),
	}
}

func (g Grid) isBoundary(row, col int) bool {
	return row == 0 || row == g.Rows || col == 0 || col == g.Cols
}

// BuildGrid places every node at the center of its cell and jitters it using rnd.
// Boundary nodes move at most 0.2 of a cell, interior nodes 0.5. The x offset is
// drawn before the y offset for each node.
func BuildGrid(cols, rows int, width, height float64, rnd *Stream) Grid {
	g := Grid{Cols: cols, Rows: rows, Width: width, Height: height}
	if cols < 0 || rows < 0 {
		return g
	}

	cellW, cellH := g.CellSize()
	g.Nodes = make([]Node, 0, (rows+1)*(cols+1))

	for row := 0; row <= rows; row++ {
		for col := 0; col <= cols; col++ {
			factor := interiorJitter
			if g.isBoundary(row, col) {
				factor = edgeJitter
			}

			base := Point{
				X: (float64(col) + 0.5) * cellW,
				Y: (float64(row) + 0.5) * cellH,
			}
			base.X += (rnd.Float64()*2 - 1) * factor * cellW
			base.Y += (rnd.Float64()*2 - 1) * factor * cellH

			g.Nodes = append(g.Nodes, Node{Point: g.clamp(base), Row: row, Col: col})
		}
	}

	return g
}
