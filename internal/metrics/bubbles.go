package metrics

import (
	"math"

	"github.com/san-kum/bubblescape/internal/scene"
)

// BubbleCount is the mean number of live bubbles per observed frame.
type BubbleCount struct {
	name    string
	sum     int
	samples int
}

func NewBubbleCount() *BubbleCount {
	return &BubbleCount{
		name: "bubbles",
	}
}

func (b *BubbleCount) Name() string { return b.name }

func (b *BubbleCount) Observe(d *scene.Driver) {
	if d.Bubbles() == nil {
		return
	}
	b.sum += d.Bubbles().Len()
	b.samples++
}

func (b *BubbleCount) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return float64(b.sum) / float64(b.samples)
}

func (b *BubbleCount) Reset() {
	b.sum = 0
	b.samples = 0
}

// Coverage is the mean ratio of summed bubble area to surface area.
// Overlapping bubbles count twice, so the value can exceed 1.
type Coverage struct {
	name    string
	surface scene.Surface
	total   float64
	samples int
}

func NewCoverage(surface scene.Surface) *Coverage {
	return &Coverage{
		name:    "coverage",
		surface: surface,
	}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(d *scene.Driver) {
	w, h := c.surface.Size()
	if w <= 0 || h <= 0 || d.Bubbles() == nil {
		return
	}
	area := 0.0
	for _, b := range d.Bubbles().Bubbles() {
		r := b.Radius()
		area += math.Pi * r * r
	}
	c.total += area / (w * h)
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Coverage) Reset() {
	c.total = 0
	c.samples = 0
}
