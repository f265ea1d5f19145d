package streets

const (
	DefaultSeed   = 42
	DefaultCols   = 18
	DefaultRows   = 14
	DefaultWidth  = 1100
	DefaultHeight = 900

	horizontalChance = 0.92
	verticalChance   = 0.92
	streetChance     = 0.3
	diagonalChance   = 0.25
	arteryRowEvery   = 4
	arteryColEvery   = 5
	secondaryCount   = 20
	secondaryMinLen  = 3
	secondaryMaxLen  = 6
	stubCount        = 50
)

// Config fully determines a generated network.
type Config struct {
	Seed   int     `json:"seed" toml:"seed" yaml:"seed"`
	Cols   int     `json:"cols" toml:"cols" yaml:"cols"`
	Rows   int     `json:"rows" toml:"rows" yaml:"rows"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

func DefaultConfig() Config {
	return Config{
		Seed:   DefaultSeed,
		Cols:   DefaultCols,
		Rows:   DefaultRows,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Network is a generated street network. It is never mutated after Generate returns.
type Network struct {
	Config Config
	Grid   Grid
	Paths  []Path
}

// GenerateStreetNetwork generates the network for seed on the default 18x14 grid and
// 1100x900 canvas.
func GenerateStreetNetwork(seed int) []Path {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return Generate(cfg).Paths
}

// Generate builds the node grid and emits paths. Every rule draws from one shared
// stream in a fixed order, so the output is a pure function of cfg.
func Generate(cfg Config) *Network {
	rnd := NewStream(cfg.Seed)
	g := BuildGrid(cfg.Cols, cfg.Rows, cfg.Width, cfg.Height, &rnd)

	n := &Network{Config: cfg, Grid: g}
	if len(g.Nodes) == 0 {
		return n
	}

	n.Paths = append(n.Paths, horizontalEdges(g, &rnd)...)
	n.Paths = append(n.Paths, verticalEdges(g, &rnd)...)
	n.Paths = append(n.Paths, diagonalEdges(g, &rnd)...)
	n.Paths = append(n.Paths, arterials(g)...)
	n.Paths = append(n.Paths, secondaryStreets(g, &rnd)...)
	n.Paths = append(n.Paths, connectorStubs(g, &rnd)...)

	return n
}

// Count returns how many paths of type t the network holds.
func (n *Network) Count(t PathType) int {
	c := 0
	for _, p := range n.Paths {
		if p.Type == t {
			c++
		}
	}
	return c
}

func edge(g Grid, r1, c1, r2, c2 int, t PathType, rule Rule) (Path, bool) {
	a, okA := g.At(r1, c1)
	b, okB := g.At(r2, c2)
	if !okA || !okB {
		return Path{}, false
	}
	return Path{
		D:     polyline(a.Point, b.Point),
		Type:  t,
		Rule:  rule,
		Nodes: []int{g.Index(r1, c1), g.Index(r2, c2)},
	}, true
}

func classify(isArtery bool, rnd *Stream) PathType {
	if isArtery {
		return Artery
	}
	if rnd.Chance(streetChance) {
		return Street
	}
	return Connector
}

func horizontalEdges(g Grid, rnd *Stream) []Path {
	var paths []Path
	for row := 0; row <= g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if !rnd.Chance(horizontalChance) {
				continue
			}
			t := classify(row%arteryRowEvery == 0, rnd)
			if p, ok := edge(g, row, col, row, col+1, t, RuleHorizontal); ok {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

func verticalEdges(g Grid, rnd *Stream) []Path {
	var paths []Path
	for col := 0; col <= g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			if !rnd.Chance(verticalChance) {
				continue
			}
			t := classify(col%arteryColEvery == 0, rnd)
			if p, ok := edge(g, row, col, row+1, col, t, RuleVertical); ok {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

func diagonalEdges(g Grid, rnd *Stream) []Path {
	var paths []Path
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if rnd.Chance(diagonalChance) {
				if p, ok := edge(g, row, col, row+1, col+1, Connector, RuleDiagonal); ok {
					paths = append(paths, p)
				}
			}
			if rnd.Chance(diagonalChance) {
				if p, ok := edge(g, row, col+1, row+1, col, Connector, RuleDiagonal); ok {
					paths = append(paths, p)
				}
			}
		}
	}
	return paths
}

// secondaryStreets walks short polylines over the grid. A horizontal walk steps one
// column at a time and drifts up or down by at most one row per step, and vice versa.
// Walks head toward whichever side of the start leaves room for their full length.
func secondaryStreets(g Grid, rnd *Stream) []Path {
	var paths []Path
	for i := 0; i < secondaryCount; i++ {
		start := g.Nodes[rnd.Intn(len(g.Nodes))]
		length := secondaryMinLen + rnd.Intn(secondaryMaxLen-secondaryMinLen+1)
		horizontal := rnd.Chance(0.5)

		row, col := start.Row, start.Col
		limit, pos := g.Rows, row
		if horizontal {
			limit, pos = g.Cols, col
		}
		dir := walkDirection(pos, limit, length-1)

		pts := []Point{start.Point}
		idx := []int{g.Index(row, col)}

		for step := 1; step < length; step++ {
			drift := rnd.Intn(3) - 1
			if horizontal {
				col += dir
				row = clampInt(row+drift, 0, g.Rows)
			} else {
				row += dir
				col = clampInt(col+drift, 0, g.Cols)
			}

			n, ok := g.At(row, col)
			if !ok {
				break
			}
			pts = append(pts, n.Point)
			idx = append(idx, g.Index(row, col))
		}

		if len(pts) < 2 {
			continue
		}
		paths = append(paths, Path{D: polyline(pts...), Type: Street, Rule: RuleSecondary, Nodes: idx})
	}
	return paths
}

// walkDirection returns +1 or -1 for a walk of steps grid steps starting at pos on an
// axis of 0..limit. Forward is preferred; when neither direction fits, the roomier one
// wins and the walk is cut at the boundary.
func walkDirection(pos, limit, steps int) int {
	switch {
	case pos+steps <= limit:
		return 1
	case pos-steps >= 0:
		return -1
	case limit-pos >= pos:
		return 1
	default:
		return -1
	}
}

func connectorStubs(g Grid, rnd *Stream) []Path {
	cellW, cellH := g.CellSize()

	paths := make([]Path, 0, stubCount)
	for i := 0; i < stubCount; i++ {
		idx := rnd.Intn(len(g.Nodes))
		from := g.Nodes[idx]
		to := g.clamp(Point{
			X: from.X + rnd.Between(-0.5, 0.5)*cellW,
			Y: from.Y + rnd.Between(-0.5, 0.5)*cellH,
		})
		paths = append(paths, Path{
			D:     polyline(from.Point, to),
			Type:  Connector,
			Rule:  RuleStub,
			Nodes: []int{idx},
		})
	}
	return paths
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
