package sampler

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/psidex/kiu/internal/streets"
)

type Point = streets.Point

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Command", Pattern: `[A-Za-z]`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "whitespace", Pattern: `[\s,]+`},
})

type pathData struct {
	Segments []*segment `parser:"@@*"`
}

type segment struct {
	Command string    `parser:"@Command"`
	Args    []float64 `parser:"@Number*"`
}

var parsePath = participle.MustBuild[pathData](
	participle.Lexer(pathLexer),
)

// SamplePathPoints extracts the literal end and control points of the move, line,
// quadratic and cubic commands in d. Curves are not interpolated. Relative (lowercase)
// and other commands are skipped. Malformed input returns nil.
func SamplePathPoints(d string) []Point {
	parsed, err := parsePath.ParseString("", d)
	if err != nil {
		return nil
	}

	var points []Point
	for _, seg := range parsed.Segments {
		switch seg.Command {
		case "M", "L", "T", "Q", "S", "C":
		default:
			continue
		}
		if len(seg.Args)%2 != 0 {
			return nil
		}
		for i := 0; i < len(seg.Args); i += 2 {
			points = append(points, Point{X: seg.Args[i], Y: seg.Args[i+1]})
		}
	}

	return points
}
