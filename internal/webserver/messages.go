package webserver

import (
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/tessellation"
)

// Inbound event types sent by the page.
const (
	eventPointer = "pointer" // X, Y in canvas units
	eventHero    = "hero"    // X, Y normalized to the hero box
	eventLeave   = "leave"
	eventReplay  = "replay" // restart the typewriter
)

type clientEvent struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type helloMessage struct {
	Type    string `json:"type"` // always "hello"
	Session string `json:"session"`
	Version string `json:"version"`
	Seed    int    `json:"seed"`
	Paths   int    `json:"paths"`
}

type highlightMessage struct {
	Type   string          `json:"type"` // always "highlight"
	Styles []sampler.Style `json:"styles"`
}

type tilesMessage struct {
	Type  string                   `json:"type"` // always "tiles"
	Tiles []tessellation.TileStyle `json:"tiles"`
}

type typewriterMessage struct {
	Type string `json:"type"` // always "typewriter"
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type carouselMessage struct {
	Type  string  `json:"type"` // always "carousel"
	Index int     `json:"index"`
	Item  string  `json:"item"`
	Angle float64 `json:"angle"`
}

type errorMessage struct {
	Type  string `json:"type"` // always "error"
	Error string `json:"error"`
}
