package scene

// Options configure a Driver.
type Options struct {
	// InitialColor is the starting background color, used as given.
	InitialColor RGB

	// InitialBubbles are spawned at random points when the driver starts.
	InitialBubbles int
}

// Driver owns the background and bubbles and runs them on a host.
type Driver struct {
	host       Host
	rng        Rand
	opts       Options
	background *Background
	bubbles    *BubbleSet
	running    bool
	frames     uint64
}

// DefaultOptions starts the scene on DefaultColor with no bubbles.
func DefaultOptions() Options {
	return Options{InitialColor: DefaultColor}
}

// NewDriver binds a driver to host. It returns ErrNoSurface if host is nil.
func NewDriver(host Host, rng Rand, opts Options) (*Driver, error) {
	if host == nil {
		return nil, ErrNoSurface
	}
	return &Driver{host: host, rng: rng, opts: opts}, nil
}

// Start sizes the surface to the host's content area, builds the scene,
// registers input handlers and requests the first frame.
func (d *Driver) Start() error {
	if d.running {
		return ErrAlreadyRunning
	}
	w, h := d.host.ContentArea()
	if w <= 0 || h <= 0 {
		return ErrNoSurface
	}
	d.host.Resize(w, h)

	d.background = NewBackground(d.host, d.rng, d.opts.InitialColor)
	d.bubbles = NewBubbleSet(d.host, d.rng)
	for i := 0; i < d.opts.InitialBubbles; i++ {
		d.bubbles.AddBubble()
	}

	d.host.OnClick(d.handleClick)
	d.host.OnContextMenu(d.handleContextMenu)

	d.running = true
	d.host.RequestFrame(d.Frame)
	return nil
}

func (d *Driver) Running() bool { return d.running }

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Background is nil until Start.
func (d *Driver) Background() *Background { return d.background }

// Bubbles is nil until Start.
func (d *Driver) Bubbles() *BubbleSet { return d.bubbles }

// Frame advances and draws one frame, then requests the next one.
func (d *Driver) Frame() {
	d.background.Tick()
	d.bubbles.Tick()

	d.background.Render()
	d.bubbles.Render()

	d.frames++
	d.host.RequestFrame(d.Frame)
}

// handleClick pops the bubble under the pointer or spawns one there.
func (d *Driver) handleClick(ev *PointerEvent) {
	if !d.bubbles.RemoveBubbleAt(ev.X, ev.Y) {
		d.bubbles.AddBubbleAt(ev.X, ev.Y)
	}
}

func (d *Driver) handleContextMenu(ev *PointerEvent) {
	ev.PreventDefault()
	d.background.Randomize()
}
