package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/san-kum/bubblescape/internal/scene"
)

type shape struct {
	circle     bool
	mode       scene.CompositeMode
	x, y, w, h float64
	style      scene.FillStyle
}

// SVG is a scene host that keeps the draw calls of the latest frame and
// writes them as an SVG document.
type SVG struct {
	scene.Dispatcher

	width, height int
	mode          scene.CompositeMode
	shapes        []shape
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) ContentArea() (int, int) { return s.width, s.height }

func (s *SVG) Resize(width, height int) { s.width, s.height = width, height }

func (s *SVG) Size() (float64, float64) { return float64(s.width), float64(s.height) }

func (s *SVG) SetCompositeMode(mode scene.CompositeMode) { s.mode = mode }

func (s *SVG) FillRect(x, y, w, h float64, style scene.FillStyle) {
	s.shapes = append(s.shapes, shape{mode: s.mode, x: x, y: y, w: w, h: h, style: style})
}

func (s *SVG) FillCircle(x, y, radius float64, style scene.FillStyle) {
	s.shapes = append(s.shapes, shape{circle: true, mode: s.mode, x: x, y: y, w: radius, style: style})
}

// RunFrame discards the previous frame before running the next one.
func (s *SVG) RunFrame() bool {
	if !s.FramePending() {
		return false
	}
	s.shapes = s.shapes[:0]
	return s.Dispatcher.RunFrame()
}

// Shapes returns the number of recorded draw calls.
func (s *SVG) Shapes() int { return len(s.shapes) }

// Encode writes the recorded frame.
func (s *SVG) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.width, s.height)
	canvas.Title("bubblescape")

	canvas.Def()
	ids := make(map[*scene.LinearGradient]string)
	for _, sh := range s.shapes {
		g, ok := sh.style.(*scene.LinearGradient)
		if !ok || ids[g] != "" {
			continue
		}
		id := fmt.Sprintf("g%d", len(ids))
		ids[g] = id
		writeGradient(canvas.Writer, id, g)
	}
	canvas.DefEnd()

	for _, sh := range s.shapes {
		style := fillCSS(sh.style, ids)
		if style == "" {
			continue
		}
		if sh.mode == scene.CompositeAdditive {
			style += ";mix-blend-mode:plus-lighter"
		}
		if sh.circle {
			writeCircle(canvas.Writer, sh.x, sh.y, sh.w, style)
		} else {
			canvas.Rect(round(sh.x), round(sh.y), round(sh.w), round(sh.h), style)
		}
	}
	canvas.End()
	return ew.err
}

// writeGradient emits a gradient in user space so that it matches the
// surface coordinates; svgo only offers bounding-box percentages.
func writeGradient(w io.Writer, id string, g *scene.LinearGradient) {
	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%g" y1="%g" x2="%g" y2="%g">`+"\n",
		id, g.X0, g.Y0, g.X1, g.Y1)
	for _, stop := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%g" stop-color="%s"/>`+"\n", stop.Offset, stop.Color.CSS())
	}
	fmt.Fprintln(w, `</linearGradient>`)
}

// writeCircle keeps sub-pixel geometry; svgo's Circle takes ints, and a
// freshly spawned bubble is only a pixel or two across.
func writeCircle(w io.Writer, x, y, r float64, style string) {
	fmt.Fprintf(w, `<circle cx="%g" cy="%g" r="%g" style="%s"/>`+"\n", x, y, r, style)
}

func fillCSS(style scene.FillStyle, ids map[*scene.LinearGradient]string) string {
	switch st := style.(type) {
	case scene.RGBA:
		return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", st.R, st.G, st.B, st.A)
	case *scene.LinearGradient:
		return fmt.Sprintf("fill:url(#%s)", ids[st])
	}
	return ""
}

func round(v float64) int { return int(math.Round(v)) }

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}
