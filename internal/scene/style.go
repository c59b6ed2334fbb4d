package scene

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// CompositeMode selects how newly drawn pixels combine with the surface.
type CompositeMode int

const (
	// CompositeNormal paints over existing pixels (source-over).
	CompositeNormal CompositeMode = iota
	// CompositeAdditive adds color to existing pixels so overlaps brighten.
	CompositeAdditive
)

func (m CompositeMode) String() string {
	switch m {
	case CompositeNormal:
		return "source-over"
	case CompositeAdditive:
		return "lighter"
	default:
		return "CompositeMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// FillStyle is either a solid RGBA or a *LinearGradient.
type FillStyle interface {
	fillStyle()
}

// RGB is an opaque color with integer channels in 0-255.
type RGB [3]int

// Scale multiplies every channel by f and floors the result.
func (c RGB) Scale(f float64) RGB {
	var out RGB
	for i, v := range c {
		out[i] = int(math.Floor(float64(v) * f))
	}
	return out
}

// RGBA converts c to a solid fill with the given alpha.
func (c RGB) RGBA(alpha float64) RGBA {
	return RGBA{R: clampByte(c[0]), G: clampByte(c[1]), B: clampByte(c[2]), A: alpha}
}

func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// RGBA is a solid fill. A is straight (non-premultiplied) alpha in 0-1.
type RGBA struct {
	R, G, B uint8
	A       float64
}

func (RGBA) fillStyle() {}

// CSS renders the color the way a 2D canvas fillStyle would accept it.
func (c RGBA) CSS() string {
	if c.R == c.G && c.G == c.B && c.R == 255 {
		return fmt.Sprintf("hsla(0, 0%%, 100%%, %.3f)", c.A)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, c.A)
}

// ColorStop is a gradient stop at Offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGB
}

// LinearGradient ramps between color stops along the line (X0,Y0)-(X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func (*LinearGradient) fillStyle() {}

func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset.
func (g *LinearGradient) AddColorStop(offset float64, c RGB) {
	offset = math.Max(0, math.Min(1, offset))
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	sort.SliceStable(g.Stops, func(i, j int) bool { return g.Stops[i].Offset < g.Stops[j].Offset })
}

// Project returns the gradient parameter t of point (x, y), clamped to [0, 1].
func (g *LinearGradient) Project(x, y float64) float64 {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / den
	return math.Max(0, math.Min(1, t))
}

// At samples the gradient at parameter t.
func (g *LinearGradient) At(t float64) RGBA {
	switch n := len(g.Stops); {
	case n == 0:
		return RGBA{}
	case t <= g.Stops[0].Offset:
		return g.Stops[0].Color.RGBA(1)
	case t >= g.Stops[n-1].Offset:
		return g.Stops[n-1].Color.RGBA(1)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span == 0 {
			return b.Color.RGBA(1)
		}
		f := (t - a.Offset) / span
		var c RGB
		for ch := range c {
			c[ch] = int(math.Round(float64(a.Color[ch]) + f*float64(b.Color[ch]-a.Color[ch])))
		}
		return c.RGBA(1)
	}
	return g.Stops[len(g.Stops)-1].Color.RGBA(1)
}

// AtPoint samples the gradient at surface point (x, y).
func (g *LinearGradient) AtPoint(x, y float64) RGBA {
	return g.At(g.Project(x, y))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Corners samples the gradient at the corners of rectangle (x, y, w, h).
// A linear ramp is reproduced exactly by interpolating these four colors.
func (g *LinearGradient) Corners(x, y, w, h float64) (topLeft, bottomLeft, bottomRight, topRight RGBA) {
	return g.AtPoint(x, y), g.AtPoint(x, y+h), g.AtPoint(x+w, y+h), g.AtPoint(x+w, y)
}
