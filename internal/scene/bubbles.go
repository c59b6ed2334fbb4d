package scene

import "math"

// Bubble growth and randomization ranges.
const (
	StartingScale = 0.1
	growthStep    = 0.1
	fullScale     = 1.0 // growth stops once scale reaches this

	minSize, sizeRange   = 15.0, 60.0
	minAlpha, alphaRange = 0.1, 0.2
	minSpeed, speedRange = 1.0, 3.0
)

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// Bubble is a single translucent circle.
type Bubble struct {
	Center Point
	Size   float64
	Scale  float64
	Fill   RGBA
	Angle  float64
	Speed  float64
}

// Radius is the drawn radius, Size scaled by the current growth.
func (b Bubble) Radius() float64 { return b.Size * b.Scale }

// Contains reports whether (x, y) lies strictly inside the bubble's
// axis-aligned bounding box.
func (b Bubble) Contains(x, y float64) bool {
	r := b.Radius()
	return x > b.Center.X-r && x < b.Center.X+r &&
		y > b.Center.Y-r && y < b.Center.Y+r
}

// BubbleSet holds bubbles in insertion order.
type BubbleSet struct {
	surface Surface
	rng     Rand
	bubbles []Bubble
}

func NewBubbleSet(surface Surface, rng Rand) *BubbleSet {
	return &BubbleSet{surface: surface, rng: rng}
}

func (s *BubbleSet) Len() int { return len(s.bubbles) }

// Bubbles returns a copy of the bubbles in insertion order.
func (s *BubbleSet) Bubbles() []Bubble {
	out := make([]Bubble, len(s.bubbles))
	copy(out, s.bubbles)
	return out
}

// Add appends b as-is.
func (s *BubbleSet) Add(b Bubble) {
	s.bubbles = append(s.bubbles, b)
}

// AddBubble spawns a bubble at a random point on the surface.
func (s *BubbleSet) AddBubble() {
	w, h := s.surface.Size()
	s.AddBubbleAt(s.rng.Float64()*w, s.rng.Float64()*h)
}

// AddBubbleAt spawns a new, still growing bubble centered at (x, y).
func (s *BubbleSet) AddBubbleAt(x, y float64) {
	s.Add(Bubble{
		Center: Point{X: x, Y: y},
		Size:   minSize + s.rng.Float64()*sizeRange,
		Scale:  StartingScale,
		Fill:   RGBA{R: 255, G: 255, B: 255, A: minAlpha + s.rng.Float64()*alphaRange},
		Angle:  s.rng.Float64() * 2 * math.Pi,
		Speed:  minSpeed + s.rng.Float64()*speedRange,
	})
}

// RemoveBubbleAt removes the earliest bubble whose bounding box contains
// (x, y). It reports whether a bubble was removed.
func (s *BubbleSet) RemoveBubbleAt(x, y float64) bool {
	for i, b := range s.bubbles {
		if b.Contains(x, y) {
			s.bubbles = append(s.bubbles[:i], s.bubbles[i+1:]...)
			return true
		}
	}
	return false
}

// Tick grows bubbles below full scale by exactly growthStep and moves the
// rest, wrapping them around the surface edges. A bubble never grows and
// moves in one tick. The last growth step may overshoot full scale.
func (s *BubbleSet) Tick() {
	w, h := s.surface.Size()
	for i := range s.bubbles {
		b := &s.bubbles[i]
		if b.Scale < fullScale {
			b.Scale += growthStep
			continue
		}

		r := b.Radius()
		b.Center.X = wrap(b.Center.X+math.Cos(b.Angle)*b.Speed, w, r)
		b.Center.Y = wrap(b.Center.Y+math.Sin(b.Angle)*b.Speed, h, r)
	}
}

// wrap moves v just outside the opposite edge once it leaves [-r, dim+r].
func wrap(v, dim, r float64) float64 {
	if v > dim+r {
		return -r
	}
	if v < -r {
		return dim + r
	}
	return v
}

// Render draws every bubble with additive compositing.
func (s *BubbleSet) Render() {
	s.surface.SetCompositeMode(CompositeAdditive)
	for _, b := range s.bubbles {
		s.surface.FillCircle(b.Center.X, b.Center.Y, b.Radius(), b.Fill)
	}
}
