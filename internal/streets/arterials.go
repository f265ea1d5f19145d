package streets

// Arterial routes are authored against this canvas and scaled to the configured one.
const (
	arterialWidth  = 1100.0
	arterialHeight = 900.0
)

var arterialRoutes = [][]Point{
	// Broadway-style diagonal from the north west corner down to the south east.
	{{-20, 40}, {180, 170}, {390, 310}, {560, 450}, {760, 600}, {950, 760}, {1120, 880}},
	// Crosstown along the upper third.
	{{-20, 260}, {240, 240}, {500, 275}, {780, 230}, {1120, 250}},
	// Crosstown along the lower third.
	{{-20, 640}, {260, 660}, {520, 615}, {830, 650}, {1120, 620}},
	// Western avenue.
	{{210, -20}, {190, 220}, {230, 470}, {200, 700}, {220, 920}},
	// Eastern avenue.
	{{860, -20}, {880, 260}, {840, 520}, {890, 760}, {870, 920}},
	// Waterfront curve along the south west.
	{{-20, 820}, {150, 760}, {330, 800}, {480, 870}, {560, 920}},
}

func arterials(g Grid) []Path {
	sx, sy := g.Width/arterialWidth, g.Height/arterialHeight

	paths := make([]Path, 0, len(arterialRoutes))
	for _, route := range arterialRoutes {
		pts := make([]Point, len(route))
		for i, p := range route {
			pts[i] = Point{X: p.X * sx, Y: p.Y * sy}
		}
		paths = append(paths, Path{D: polyline(pts...), Type: Artery, Rule: RuleArterial})
	}
	return paths
}
