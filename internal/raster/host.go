// Package raster renders the scene off-screen with gg.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"github.com/san-kum/bubblescape/internal/scene"
)

// Host is an in-memory RGBA scene host. Input is injected through the
// embedded Dispatcher and frames run when the caller asks for them.
type Host struct {
	scene.Dispatcher

	contentW, contentH int
	mode               scene.CompositeMode

	im      *image.RGBA
	dc      *gg.Context
	scratch *image.RGBA
	sc      *gg.Context
}

// New returns a host whose content area is width x height pixels.
func New(width, height int) *Host {
	h := &Host{contentW: width, contentH: height}
	h.Resize(width, height)
	return h
}

func (h *Host) ContentArea() (int, int) { return h.contentW, h.contentH }

func (h *Host) Resize(width, height int) {
	if h.im != nil && h.im.Bounds().Dx() == width && h.im.Bounds().Dy() == height {
		return
	}
	width, height = max(width, 1), max(height, 1)
	h.im = image.NewRGBA(image.Rect(0, 0, width, height))
	h.dc = gg.NewContextForRGBA(h.im)
	h.scratch = image.NewRGBA(h.im.Bounds())
	h.sc = gg.NewContextForRGBA(h.scratch)
}

func (h *Host) Size() (float64, float64) {
	return float64(h.dc.Width()), float64(h.dc.Height())
}

func (h *Host) SetCompositeMode(mode scene.CompositeMode) { h.mode = mode }

func (h *Host) FillRect(x, y, w, hgt float64, style scene.FillStyle) {
	h.fill(style, func(dc *gg.Context) { dc.DrawRectangle(x, y, w, hgt) },
		image.Rect(int(x)-1, int(y)-1, int(x+w)+1, int(y+hgt)+1))
}

func (h *Host) FillCircle(x, y, radius float64, style scene.FillStyle) {
	if radius <= 0 {
		return
	}
	h.fill(style, func(dc *gg.Context) { dc.DrawCircle(x, y, radius) },
		image.Rect(int(x-radius)-1, int(y-radius)-1, int(x+radius)+2, int(y+radius)+2))
}

// fill draws the path built by path. In additive mode the path is first
// rendered onto a cleared scratch region and then summed into the image.
func (h *Host) fill(style scene.FillStyle, path func(dc *gg.Context), bounds image.Rectangle) {
	pattern := toPattern(style)
	if pattern == nil {
		return
	}
	if h.mode != scene.CompositeAdditive {
		path(h.dc)
		h.dc.SetFillStyle(pattern)
		h.dc.Fill()
		return
	}

	bounds = bounds.Intersect(h.im.Bounds())
	if bounds.Empty() {
		return
	}
	draw.Draw(h.scratch, bounds, image.Transparent, image.Point{}, draw.Src)
	path(h.sc)
	h.sc.SetFillStyle(pattern)
	h.sc.Fill()
	addSaturate(h.im, h.scratch, bounds)
}

// addSaturate adds premultiplied src pixels into dst, clamping at 255.
func addSaturate(dst, src *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		j := src.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			for k := 0; k < 4; k++ {
				v := int(dst.Pix[i+k]) + int(src.Pix[j+k])
				if v > 255 {
					v = 255
				}
				dst.Pix[i+k] = uint8(v)
			}
			i += 4
			j += 4
		}
	}
}

func toPattern(style scene.FillStyle) gg.Pattern {
	switch s := style.(type) {
	case scene.RGBA:
		return gg.NewSolidPattern(toNRGBA(s))
	case *scene.LinearGradient:
		g := gg.NewLinearGradient(s.X0, s.Y0, s.X1, s.Y1)
		for _, stop := range s.Stops {
			g.AddColorStop(stop.Offset, toNRGBA(stop.Color.RGBA(1)))
		}
		return g
	}
	return nil
}

func toNRGBA(c scene.RGBA) color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Image returns the current frame. It is overwritten by later frames.
func (h *Host) Image() *image.RGBA { return h.im }

func (h *Host) SavePNG(path string) error { return h.dc.SavePNG(path) }

func (h *Host) EncodePNG(w io.Writer) error { return h.dc.EncodePNG(w) }
