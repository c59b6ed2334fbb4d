package scene

const (
	colorStep   = 10  // largest per-tick change of a channel
	shadeFactor = 0.5 // darkening of the gradient's far end
)

// DefaultColor is the background color before any randomize.
var DefaultColor = RGB{22, 120, 180}

// Rand is the random source used by the scene. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Background is a full-surface gradient that steps toward a target color.
type Background struct {
	surface  Surface
	rng      Rand
	color    RGB
	target   RGB
	gradient *LinearGradient
}

// NewBackground returns a background showing initial, already at rest.
func NewBackground(surface Surface, rng Rand, initial RGB) *Background {
	b := &Background{
		surface: surface,
		rng:     rng,
		color:   initial,
		target:  initial,
	}
	b.gradient = b.createGradient()
	return b
}

func (b *Background) Color() RGB  { return b.color }
func (b *Background) Target() RGB { return b.target }

// Gradient returns the cached gradient derived from the current color.
func (b *Background) Gradient() *LinearGradient { return b.gradient }

// Randomize picks a new target with independent channels in [0, 256).
func (b *Background) Randomize() {
	b.target = RGB{b.rng.Intn(256), b.rng.Intn(256), b.rng.Intn(256)}
}

// SetTarget sets the color the background converges to.
func (b *Background) SetTarget(c RGB) {
	for i := range c {
		c[i] = int(clampByte(c[i]))
	}
	b.target = c
}

// Converged reports whether every channel has reached the target.
func (b *Background) Converged() bool { return b.color == b.target }

// Tick moves each channel up to colorStep toward the target, snapping
// once within range, and rebuilds the gradient.
func (b *Background) Tick() {
	for i := range b.color {
		distance := b.target[i] - b.color[i]
		switch {
		case distance > colorStep:
			b.color[i] += colorStep
		case distance < -colorStep:
			b.color[i] -= colorStep
		default:
			b.color[i] = b.target[i]
		}
	}
	b.gradient = b.createGradient()
}

// Render fills the whole surface with the gradient.
func (b *Background) Render() {
	w, h := b.surface.Size()
	b.surface.SetCompositeMode(CompositeNormal)
	b.surface.FillRect(0, 0, w, h, b.gradient)
}

func (b *Background) createGradient() *LinearGradient {
	w, h := b.surface.Size()
	g := NewLinearGradient(0, 0, w, h)
	g.AddColorStop(0, b.color)
	g.AddColorStop(1, b.color.Scale(shadeFactor))
	return g
}
