package graphs

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/psidex/kiu/internal/streets"
)

// Renderer draws a street network in one output format.
type Renderer interface {
	// Render must not mutate n.
	Render(w io.Writer, n *streets.Network) error
	// Ext is the file extension used by RenderToFile, including the dot.
	Ext() string
}

// RenderToFile renders n to filename + r.Ext(). filename should be the desired file
// name without an extension.
func RenderToFile(r Renderer, n *streets.Network, filename string) (string, error) {
	filename = filename + r.Ext()

	f, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrap(err, "create output file")
	}
	defer f.Close()

	if err := r.Render(f, n); err != nil {
		return "", errors.Wrapf(err, "render %s", filename)
	}

	return filename, f.Close()
}
