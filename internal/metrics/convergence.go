package metrics

import "github.com/san-kum/bubblescape/internal/scene"

// Convergence is the fraction of observed frames in which the background
// had reached its target color.
type Convergence struct {
	name      string
	converged int
	samples   int
}

func NewConvergence() *Convergence {
	return &Convergence{
		name: "converged",
	}
}

func (c *Convergence) Name() string {
	return c.name
}

func (c *Convergence) Observe(d *scene.Driver) {
	bg := d.Background()
	if bg == nil {
		return
	}
	c.samples++
	if bg.Converged() {
		c.converged++
	}
}

func (c *Convergence) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.converged) / float64(c.samples)
}

func (c *Convergence) Reset() {
	c.converged = 0
	c.samples = 0
}
