package vis

type nodeData struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Fixed bool    `json:"fixed"`
}

type node struct {
	Type string   `json:"type"` // always "node"
	Data nodeData `json:"data"`
}

func newNode() node {
	return node{Type: "node"}
}

type edgeColor struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

type edgeData struct {
	From  int       `json:"from"`
	To    int       `json:"to"`
	Width float64   `json:"width"`
	Color edgeColor `json:"color"`
}

type edge struct {
	Type string   `json:"type"` // always "edge"
	Data edgeData `json:"data"`
}

func newEdge() edge {
	return edge{Type: "edge"}
}
