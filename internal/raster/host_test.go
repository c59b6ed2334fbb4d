package raster

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"math/rand"
	"testing"

	"github.com/san-kum/bubblescape/internal/scene"
)

func TestResize(t *testing.T) {
	h := New(64, 32)
	if w, hh := h.Size(); w != 64 || hh != 32 {
		t.Fatalf("expected 64x32, got %vx%v", w, hh)
	}
	h.Resize(10, 20)
	if h.Image().Bounds() != image.Rect(0, 0, 10, 20) {
		t.Errorf("unexpected bounds %v", h.Image().Bounds())
	}
	if cw, ch := h.ContentArea(); cw != 64 || ch != 32 {
		t.Errorf("content area should not follow resize, got %dx%d", cw, ch)
	}
}

func TestGradientFill(t *testing.T) {
	h := New(100, 100)
	g := scene.NewLinearGradient(0, 0, 100, 100)
	g.AddColorStop(0, scene.RGB{200, 100, 0})
	g.AddColorStop(1, scene.RGB{100, 50, 0})

	h.SetCompositeMode(scene.CompositeNormal)
	h.FillRect(0, 0, 100, 100, g)

	tl := h.Image().RGBAAt(0, 0)
	br := h.Image().RGBAAt(99, 99)
	if tl.R < 195 || tl.A != 255 {
		t.Errorf("expected bright opaque top-left, got %v", tl)
	}
	if br.R > 105 {
		t.Errorf("expected dark bottom-right, got %v", br)
	}
}

func TestAdditiveCirclesBrighten(t *testing.T) {
	h := New(50, 50)
	h.SetCompositeMode(scene.CompositeNormal)
	h.FillRect(0, 0, 50, 50, scene.RGBA{R: 40, G: 40, B: 40, A: 1})

	h.SetCompositeMode(scene.CompositeAdditive)
	white := scene.RGBA{R: 255, G: 255, B: 255, A: 0.2}
	h.FillCircle(25, 25, 10, white)
	once := h.Image().RGBAAt(25, 25)
	h.FillCircle(25, 25, 10, white)
	twice := h.Image().RGBAAt(25, 25)

	if once.R <= 40 {
		t.Errorf("expected additive circle to brighten, got %v", once)
	}
	if twice.R <= once.R {
		t.Errorf("expected overlap to brighten further, %v -> %v", once, twice)
	}
	if corner := h.Image().RGBAAt(0, 0); corner.R != 40 {
		t.Errorf("expected pixels outside the circle untouched, got %v", corner)
	}

	for i := 0; i < 20; i++ {
		h.FillCircle(25, 25, 10, white)
	}
	if c := h.Image().RGBAAt(25, 25); c.R != 255 {
		t.Errorf("expected saturation at 255, got %v", c)
	}
}

func TestAdditiveOffSurface(t *testing.T) {
	h := New(20, 20)
	h.SetCompositeMode(scene.CompositeAdditive)
	h.FillCircle(-100, -100, 5, scene.RGBA{R: 255, A: 1})
	h.FillCircle(10, 10, 0, scene.RGBA{R: 255, A: 1})
	if c := h.Image().RGBAAt(10, 10); c.R != 0 {
		t.Errorf("expected untouched image, got %v", c)
	}
}

func TestDriverFramesAndPNG(t *testing.T) {
	h := New(120, 80)
	d, err := scene.NewDriver(h, rand.New(rand.NewSource(1)), scene.Options{InitialColor: scene.DefaultColor, InitialBubbles: 4})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 15; i++ {
		if !h.RunFrame() {
			t.Fatalf("frame %d not scheduled", i)
		}
	}

	var buf bytes.Buffer
	if err := h.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Errorf("unexpected png bounds %v", img.Bounds())
	}
}

func TestRecorder(t *testing.T) {
	h := New(32, 32)
	rec := NewRecorder(0)
	if rec.Delay != 1 {
		t.Errorf("expected minimum delay 1, got %d", rec.Delay)
	}

	for i := 0; i < 3; i++ {
		h.FillRect(0, 0, 32, 32, scene.RGBA{R: uint8(i * 80), A: 1})
		rec.Capture(h.Image())
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(anim.Image))
	}
}
