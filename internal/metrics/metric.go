// Package metrics accumulates per-frame statistics about a running scene.
package metrics

import "github.com/san-kum/bubblescape/internal/scene"

type Metric interface {
	Name() string
	Observe(d *scene.Driver)
	Value() float64
	Reset()
}

// Set observes several metrics together.
type Set []Metric

func (s Set) Observe(d *scene.Driver) {
	for _, m := range s {
		m.Observe(d)
	}
}

// Values returns the current value of every metric keyed by name.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}
