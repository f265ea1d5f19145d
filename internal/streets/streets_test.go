package streets

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestStreamDeterministic(t *testing.T) {
	a, b := NewStream(7), NewStream(7)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
	}
}

func TestStreamNextIsPure(t *testing.T) {
	s := NewStream(3)
	v1, next1 := s.Next()
	v2, next2 := s.Next()
	if v1 != v2 || next1 != next2 {
		t.Fatalf("Next is not pure: %v/%v %v/%v", v1, v2, next1, next2)
	}
	v3, _ := next1.Next()
	if v3 == v1 {
		t.Errorf("consecutive draws should differ, both %v", v1)
	}
}

func TestStreamIntn(t *testing.T) {
	s := NewStream(11)
	for i := 0; i < 500; i++ {
		if v := s.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d", v)
		}
	}
	before := s
	if v := s.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
	if s != before {
		t.Errorf("Intn(0) should not draw")
	}
}

func TestGridShapeAndBounds(t *testing.T) {
	rnd := NewStream(42)
	g := BuildGrid(18, 14, 1100, 900, &rnd)

	if got, want := len(g.Nodes), 19*15; got != want {
		t.Fatalf("node count: got %d, want %d", got, want)
	}
	for i, n := range g.Nodes {
		if !g.Contains(n.Point) {
			t.Errorf("node %d (%v) outside canvas", i, n.Point)
		}
		if g.Index(n.Row, n.Col) != i {
			t.Errorf("node %d has row/col %d/%d", i, n.Row, n.Col)
		}
	}
}

func TestGridJitter(t *testing.T) {
	rnd := NewStream(5)
	g := BuildGrid(10, 8, 1000, 800, &rnd)
	cellW, cellH := g.CellSize()

	for _, n := range g.Nodes {
		factor := interiorJitter
		if g.isBoundary(n.Row, n.Col) {
			factor = edgeJitter
		}
		cx := (float64(n.Col) + 0.5) * cellW
		cy := (float64(n.Row) + 0.5) * cellH
		if d := n.X - cx; d > factor*cellW+1e-9 || d < -factor*cellW-1e-9 {
			t.Errorf("node %d,%d x jitter %v exceeds %v", n.Row, n.Col, d, factor*cellW)
		}
		if d := n.Y - cy; d > factor*cellH+1e-9 || d < -factor*cellH-1e-9 {
			t.Errorf("node %d,%d y jitter %v exceeds %v", n.Row, n.Col, d, factor*cellH)
		}
	}
}

func TestGridAt(t *testing.T) {
	rnd := NewStream(1)
	g := BuildGrid(3, 2, 100, 100, &rnd)

	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tt := range tests {
		n, ok := g.At(tt.row, tt.col)
		if ok != tt.ok {
			t.Errorf("At(%d, %d) ok = %v, want %v", tt.row, tt.col, ok, tt.ok)
			continue
		}
		if ok && (n.Row != tt.row || n.Col != tt.col) {
			t.Errorf("At(%d, %d) returned node %d,%d", tt.row, tt.col, n.Row, n.Col)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := GenerateStreetNetwork(42)
	b := GenerateStreetNetwork(42)
	if len(a) == 0 {
		t.Fatal("expected a non-empty network")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different networks")
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	a := GenerateStreetNetwork(42)
	b := GenerateStreetNetwork(43)
	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds produced identical networks")
	}
}

func TestGenerateEdgeValidity(t *testing.T) {
	n := Generate(DefaultConfig())
	g := n.Grid

	for i, p := range n.Paths {
		if p.Rule == RuleArterial {
			if len(p.Nodes) != 0 {
				t.Errorf("path %d: arterial should not reference nodes", i)
			}
			continue
		}
		if len(p.Nodes) == 0 {
			t.Errorf("path %d (%s): no node references", i, p.Rule)
			continue
		}
		for _, idx := range p.Nodes {
			if idx < 0 || idx >= len(g.Nodes) {
				t.Fatalf("path %d references node %d outside the grid", i, idx)
			}
		}

		switch p.Rule {
		case RuleHorizontal, RuleVertical, RuleDiagonal, RuleSecondary:
			pts := make([]Point, len(p.Nodes))
			for j, idx := range p.Nodes {
				pts[j] = g.Nodes[idx].Point
			}
			if want := polyline(pts...); p.D != want {
				t.Errorf("path %d: d = %q, want %q", i, p.D, want)
			}
			for j := 1; j < len(p.Nodes); j++ {
				a, b := g.Nodes[p.Nodes[j-1]], g.Nodes[p.Nodes[j]]
				dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
				if dr > 1 || dc > 1 || dr+dc == 0 {
					t.Errorf("path %d (%s): nodes %d,%d and %d,%d are not adjacent",
						i, p.Rule, a.Row, a.Col, b.Row, b.Col)
				}
			}
		case RuleStub:
			if len(p.Nodes) != 1 {
				t.Errorf("stub %d references %d nodes", i, len(p.Nodes))
			}
		}
	}
}

func TestGenerateClassification(t *testing.T) {
	n := Generate(DefaultConfig())
	cols := n.Grid.Cols + 1

	var sawStreet, sawConnector bool
	for _, p := range n.Paths {
		switch p.Rule {
		case RuleHorizontal:
			row := p.Nodes[0] / cols
			if row%4 == 0 && p.Type != Artery {
				t.Errorf("horizontal edge on row %d is %s", row, p.Type)
			}
			if row%4 != 0 && p.Type == Artery {
				t.Errorf("horizontal edge on row %d should not be an artery", row)
			}
		case RuleVertical:
			col := p.Nodes[0] % cols
			if col%5 == 0 && p.Type != Artery {
				t.Errorf("vertical edge on col %d is %s", col, p.Type)
			}
		case RuleDiagonal, RuleStub:
			if p.Type != Connector {
				t.Errorf("%s path is %s", p.Rule, p.Type)
			}
		case RuleArterial:
			if p.Type != Artery {
				t.Errorf("arterial is %s", p.Type)
			}
		case RuleSecondary:
			if p.Type != Street {
				t.Errorf("secondary is %s", p.Type)
			}
		}
		sawStreet = sawStreet || p.Type == Street
		sawConnector = sawConnector || p.Type == Connector
	}
	if !sawStreet || !sawConnector {
		t.Errorf("expected both streets and connectors, got street=%v connector=%v", sawStreet, sawConnector)
	}
}

func TestGenerateRuleOrderAndCounts(t *testing.T) {
	n := Generate(DefaultConfig())

	last := RuleHorizontal
	counts := map[Rule]int{}
	for _, p := range n.Paths {
		if p.Rule < last {
			t.Fatalf("rule %s emitted after %s", p.Rule, last)
		}
		last = p.Rule
		counts[p.Rule]++
	}

	if counts[RuleArterial] != len(arterialRoutes) {
		t.Errorf("arterials: got %d, want %d", counts[RuleArterial], len(arterialRoutes))
	}
	if counts[RuleStub] != stubCount {
		t.Errorf("stubs: got %d, want %d", counts[RuleStub], stubCount)
	}
	if counts[RuleSecondary] != secondaryCount {
		t.Errorf("secondaries: got %d, want %d", counts[RuleSecondary], secondaryCount)
	}
	if limit := 15 * 18; counts[RuleHorizontal] > limit {
		t.Errorf("horizontal edges: got %d, want at most %d", counts[RuleHorizontal], limit)
	}
}

func TestSecondaryStreetsFullLength(t *testing.T) {
	for _, seed := range []int{0, 1, 7, 42, 1234, 2147483647} {
		n := Generate(Config{Seed: seed, Cols: DefaultCols, Rows: DefaultRows, Width: DefaultWidth, Height: DefaultHeight})

		count := 0
		for _, p := range n.Paths {
			if p.Rule != RuleSecondary {
				continue
			}
			count++
			if l := len(p.Nodes); l < secondaryMinLen || l > secondaryMaxLen {
				t.Errorf("seed %d: secondary street has %d points, want %d..%d", seed, l, secondaryMinLen, secondaryMaxLen)
			}
		}
		if count != secondaryCount {
			t.Errorf("seed %d: got %d secondary streets, want %d", seed, count, secondaryCount)
		}
	}
}

func TestWalkDirection(t *testing.T) {
	tests := []struct {
		pos, limit, steps int
		want              int
	}{
		{0, 18, 5, 1},
		{13, 18, 5, 1},
		{14, 18, 5, -1},
		{18, 18, 5, -1},
		{1, 4, 5, 1},
		{3, 4, 5, -1},
	}
	for _, tt := range tests {
		if got := walkDirection(tt.pos, tt.limit, tt.steps); got != tt.want {
			t.Errorf("walkDirection(%d, %d, %d) = %d, want %d", tt.pos, tt.limit, tt.steps, got, tt.want)
		}
	}
}

func TestRuleStringOutOfRange(t *testing.T) {
	if got := Rule(9).String(); got != "unknown" {
		t.Errorf("Rule(9).String() = %q, want unknown", got)
	}
	if got := RuleStub.String(); got != "stub" {
		t.Errorf("RuleStub.String() = %q", got)
	}
}

func TestGenerateStubsStayOnCanvas(t *testing.T) {
	n := Generate(Config{Seed: 9, Cols: 6, Rows: 4, Width: 300, Height: 200})
	for _, p := range n.Paths {
		if p.Rule != RuleStub {
			continue
		}
		var x0, y0, x1, y1 float64
		if _, err := fmt.Sscanf(p.D, "M%f,%f L%f,%f", &x0, &y0, &x1, &y1); err != nil {
			t.Fatalf("could not scan %q: %v", p.D, err)
		}
		if x1 < 0 || x1 > 300 || y1 < 0 || y1 > 200 {
			t.Errorf("stub end %v,%v outside canvas", x1, y1)
		}
	}
}

func TestGenerateEmptyGrid(t *testing.T) {
	n := Generate(Config{Seed: 1, Cols: -1, Rows: 3, Width: 100, Height: 100})
	if len(n.Paths) != 0 || len(n.Grid.Nodes) != 0 {
		t.Errorf("expected empty network, got %d paths %d nodes", len(n.Paths), len(n.Grid.Nodes))
	}
}

func TestArterialsScale(t *testing.T) {
	rnd := NewStream(0)
	g := BuildGrid(2, 2, 2200, 1800, &rnd)
	paths := arterials(g)
	if !strings.HasPrefix(paths[0].D, "M-40.0,80.0 L360.0,340.0") {
		t.Errorf("unexpected scaled arterial: %s", paths[0].D)
	}
	for _, p := range paths {
		if strings.ContainsAny(p.D, "QCSqcs") {
			t.Errorf("arterial uses curve commands: %s", p.D)
		}
	}
}

func TestPathJSON(t *testing.T) {
	p := Path{D: "M1.0,2.0 L3.0,4.0", Type: Street, Rule: RuleSecondary, Nodes: []int{1, 2}}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"d":"M1.0,2.0 L3.0,4.0","type":"street"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPolyline(t *testing.T) {
	if got := polyline(Point{10, 20}, Point{30, 40}); got != "M10.0,20.0 L30.0,40.0" {
		t.Errorf("got %q", got)
	}
	if got := polyline(); got != "" {
		t.Errorf("empty polyline: got %q", got)
	}
}

func TestCacheReturnsSameNetwork(t *testing.T) {
	c := NewCache()
	cfg := DefaultConfig()

	a := c.Get(cfg)
	b := c.Get(cfg)
	if a != b {
		t.Fatal("cache returned a different network for the same config")
	}

	cfg.Seed++
	if c.Get(cfg) == a {
		t.Fatal("cache returned the same network for a different seed")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
