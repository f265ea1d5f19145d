package streets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PathType is the coarse style category of a path.
type PathType int

const (
	Artery PathType = iota
	Street
	Connector
)

func (t PathType) String() string {
	switch t {
	case Artery:
		return "artery"
	case Street:
		return "street"
	case Connector:
		return "connector"
	default:
		return "unknown"
	}
}

func (t PathType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PathType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "artery":
		*t = Artery
	case "street":
		*t = Street
	case "connector":
		*t = Connector
	default:
		return fmt.Errorf("unknown path type: %q", b)
	}
	return nil
}

// Rule identifies which emission step produced a path.
type Rule int

const (
	RuleHorizontal Rule = iota
	RuleVertical
	RuleDiagonal
	RuleArterial
	RuleSecondary
	RuleStub
)

func (r Rule) String() string {
	switch r {
	case RuleHorizontal:
		return "horizontal"
	case RuleVertical:
		return "vertical"
	case RuleDiagonal:
		return "diagonal"
	case RuleArterial:
		return "arterial"
	case RuleSecondary:
		return "secondary"
	case RuleStub:
		return "stub"
	default:
		return "unknown"
	}
}

// Path is an emitted decorative stroke. Nodes holds the flat indices of the grid nodes
// the path is anchored on and is empty for hand-authored arterials.
type Path struct {
	D     string
	Type  PathType
	Rule  Rule
	Nodes []int
}

// MarshalJSON emits only the draw command and type.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		D    string   `json:"d"`
		Type PathType `json:"type"`
	}{p.D, p.Type})
}

// polyline encodes pts as "M x,y L x,y ..." with one decimal place.
func polyline(pts ...Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
	}
	return sb.String()
}
