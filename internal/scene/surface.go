package scene

// Surface is a 2D drawing target shared by the scene components.
type Surface interface {
	// Size returns the current drawable width and height in pixels.
	Size() (width, height float64)
	SetCompositeMode(mode CompositeMode)
	FillRect(x, y, w, h float64, style FillStyle)
	FillCircle(x, y, radius float64, style FillStyle)
}

// PointerEvent is a click delivered by a host at surface coordinates.
type PointerEvent struct {
	X, Y float64

	defaultPrevented bool
}

// PreventDefault cancels the host's default action for the event.
func (e *PointerEvent) PreventDefault() { e.defaultPrevented = true }

func (e *PointerEvent) DefaultPrevented() bool { return e.defaultPrevented }

type PointerHandler func(ev *PointerEvent)

// Host is a window-like surface that also delivers input and paces frames.
type Host interface {
	Surface

	// ContentArea reports the size of the host's visible content region.
	ContentArea() (width, height int)
	// Resize sets the drawing surface size.
	Resize(width, height int)

	OnClick(h PointerHandler)
	OnContextMenu(h PointerHandler)

	// RequestFrame schedules cb to run once on the next frame.
	RequestFrame(cb func())
}

// Dispatcher queues frame callbacks and routes pointer events for hosts
// that run their own loop. The zero value is ready to use.
type Dispatcher struct {
	frame   func()
	click   PointerHandler
	context PointerHandler
}

// RequestFrame keeps the most recent callback until RunFrame is called.
func (d *Dispatcher) RequestFrame(cb func()) { d.frame = cb }

func (d *Dispatcher) OnClick(h PointerHandler) { d.click = h }

func (d *Dispatcher) OnContextMenu(h PointerHandler) { d.context = h }

// FramePending reports whether a frame callback is waiting.
func (d *Dispatcher) FramePending() bool { return d.frame != nil }

// RunFrame runs the pending frame callback, if any. The callback is
// cleared before it runs so it can request the next frame.
func (d *Dispatcher) RunFrame() bool {
	cb := d.frame
	if cb == nil {
		return false
	}
	d.frame = nil
	cb()
	return true
}

// Click delivers a primary click at (x, y).
func (d *Dispatcher) Click(x, y float64) {
	if d.click == nil {
		return
	}
	d.click(&PointerEvent{X: x, Y: y})
}

// ContextMenu delivers a secondary click at (x, y) and reports whether the
// host should show its default menu.
func (d *Dispatcher) ContextMenu(x, y float64) (showDefault bool) {
	ev := &PointerEvent{X: x, Y: y}
	if d.context != nil {
		d.context(ev)
	}
	return !ev.DefaultPrevented()
}
