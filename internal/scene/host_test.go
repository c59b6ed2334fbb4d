package scene

import "math/rand"

type drawCall struct {
	op    string
	mode  CompositeMode
	x, y  float64
	w, h  float64
	r     float64
	style FillStyle
}

// fakeHost records draw calls and lets tests drive frames and input.
type fakeHost struct {
	Dispatcher

	width, height int
	contentW      int
	contentH      int
	mode          CompositeMode
	calls         []drawCall
	resized       bool
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{width: w, height: h, contentW: w, contentH: h}
}

func (f *fakeHost) Size() (float64, float64)         { return float64(f.width), float64(f.height) }
func (f *fakeHost) SetCompositeMode(m CompositeMode) { f.mode = m }
func (f *fakeHost) ContentArea() (int, int)          { return f.contentW, f.contentH }

func (f *fakeHost) Resize(w, h int) {
	f.width, f.height = w, h
	f.resized = true
}

func (f *fakeHost) FillRect(x, y, w, h float64, style FillStyle) {
	f.calls = append(f.calls, drawCall{op: "rect", mode: f.mode, x: x, y: y, w: w, h: h, style: style})
}

func (f *fakeHost) FillCircle(x, y, r float64, style FillStyle) {
	f.calls = append(f.calls, drawCall{op: "circle", mode: f.mode, x: x, y: y, r: r, style: style})
}

func (f *fakeHost) reset() { f.calls = f.calls[:0] }

func newRand() *rand.Rand { return rand.New(rand.NewSource(7)) }

// fixedRand returns the same values forever.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}
