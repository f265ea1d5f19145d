package sampler

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ExtractPaths returns the d attribute of every <path> element in an SVG or HTML
// document, in document order. Paths without a d attribute are skipped.
func ExtractPaths(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}

	var paths []string

	var visitNode func(*html.Node)
	visitNode = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "path" {
			for _, attr := range n.Attr {
				if attr.Key == "d" {
					paths = append(paths, attr.Val)
					break
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visitNode(c)
		}
	}

	visitNode(doc)

	return paths, nil
}
