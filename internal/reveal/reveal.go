// Package reveal holds the view state advanced by the site's timers: the typewriter
// headline and the rotating carousel. Values are not safe for concurrent use; the
// owning session serializes access.
package reveal

// Typewriter reveals Text one rune per Tick.
type Typewriter struct {
	text  []rune
	typed int
}

func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text)}
}

// Tick reveals one more rune and reports whether anything changed.
func (t *Typewriter) Tick() bool {
	if t.Done() {
		return false
	}
	t.typed++
	return true
}

func (t *Typewriter) Done() bool {
	return t.typed >= len(t.text)
}

// Visible returns the revealed prefix.
func (t *Typewriter) Visible() string {
	return string(t.text[:t.typed])
}

func (t *Typewriter) Typed() int {
	return t.typed
}

func (t *Typewriter) Reset() {
	t.typed = 0
}

// Carousel cycles through Items, wrapping at the end.
type Carousel struct {
	items   []string
	current int
}

func NewCarousel(items []string) *Carousel {
	return &Carousel{items: items}
}

// Advance moves to the next item and returns its index. An empty carousel stays at 0.
func (c *Carousel) Advance() int {
	if len(c.items) == 0 {
		return 0
	}
	c.current = (c.current + 1) % len(c.items)
	return c.current
}

func (c *Carousel) Index() int {
	return c.current
}

// Current returns the current item, or "" for an empty carousel.
func (c *Carousel) Current() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.current]
}

// Angle is the rotation in degrees that brings the current item to the front.
func (c *Carousel) Angle() float64 {
	if len(c.items) == 0 {
		return 0
	}
	return float64(c.current) * 360 / float64(len(c.items))
}

func (c *Carousel) Len() int {
	return len(c.items)
}
