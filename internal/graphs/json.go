package graphs

import (
	"encoding/json"
	"io"

	"github.com/psidex/kiu/internal/streets"
)

// Descriptors renders the ordered path descriptors as a JSON array of {d, type}.
type Descriptors struct {
	Indent bool
}

var _ Renderer = Descriptors{}

func (Descriptors) Ext() string { return ".json" }

func (j Descriptors) Render(w io.Writer, n *streets.Network) error {
	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	paths := n.Paths
	if paths == nil {
		paths = []streets.Path{}
	}
	return enc.Encode(paths)
}
