package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bubblescape/internal/scene"
)

// dotLift is how far a lit Braille dot is pushed toward white so that it
// stays visible on its cell background.
const dotLift = 0.35

// Terminal is a scene host drawing into a Braille canvas with one
// background color per character cell. Surface coordinates are Braille
// sub-pixels: two per column, four per row.
type Terminal struct {
	scene.Dispatcher

	canvas     *Canvas
	bg         [][]colorful.Color
	light      [][]float64
	mode       scene.CompositeMode
	cols, rows int

	contentCols, contentRows int
}

func NewTerminal(cols, rows int) *Terminal {
	t := &Terminal{}
	t.SetContentArea(cols, rows)
	t.resizeCells(cols, rows)
	return t
}

// SetContentArea records the visible terminal size in cells.
func (t *Terminal) SetContentArea(cols, rows int) {
	t.contentCols, t.contentRows = max(cols, 0), max(rows, 0)
}

// ContentArea reports the visible area in sub-pixels.
func (t *Terminal) ContentArea() (int, int) {
	return t.contentCols * 2, t.contentRows * 4
}

// Resize takes a sub-pixel size and rounds it up to whole cells.
func (t *Terminal) Resize(width, height int) {
	t.resizeCells((width+1)/2, (height+3)/4)
}

func (t *Terminal) resizeCells(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.canvas = NewCanvas(cols, rows)
	t.bg = make([][]colorful.Color, rows)
	t.light = make([][]float64, rows)
	for r := range t.bg {
		t.bg[r] = make([]colorful.Color, cols)
		t.light[r] = make([]float64, cols)
	}
}

func (t *Terminal) Size() (float64, float64) {
	return float64(t.cols * 2), float64(t.rows * 4)
}

func (t *Terminal) SetCompositeMode(mode scene.CompositeMode) { t.mode = mode }

// CellToPoint maps a terminal cell to the sub-pixel at its center.
func CellToPoint(col, row int) (float64, float64) {
	return float64(col*2) + 1, float64(row*4) + 2
}

// FillRect paints every cell whose center lies inside the rectangle.
func (t *Terminal) FillRect(x, y, w, h float64, style scene.FillStyle) {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			px, py := CellToPoint(col, row)
			if px < x || px >= x+w || py < y || py >= y+h {
				continue
			}
			c, ok := sample(style, px, py)
			if !ok {
				continue
			}
			if t.mode == scene.CompositeAdditive {
				t.light[row][col] += c.A
				continue
			}
			t.bg[row][col] = blend(t.bg[row][col], c)
			t.light[row][col] = 0
			t.canvas.ClearCell(col, row)
		}
	}
}

// FillCircle lights the sub-pixels whose centers fall inside the circle.
// In additive mode each lit sub-pixel adds its share of alpha to the cell.
func (t *Terminal) FillCircle(x, y, radius float64, style scene.FillStyle) {
	if radius <= 0 {
		return
	}
	x0, x1 := int(math.Floor(x-radius)), int(math.Ceil(x+radius))
	y0, y1 := int(math.Floor(y-radius)), int(math.Ceil(y+radius))
	w, h := t.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, int(w)-1), min(y1, int(h)-1)

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			c, ok := sample(style, float64(px), float64(py))
			if !ok {
				continue
			}
			col, row := px/2, py/4
			t.canvas.Set(px, py)
			if t.mode == scene.CompositeAdditive {
				t.light[row][col] += c.A / 8
			} else {
				t.bg[row][col] = blend(t.bg[row][col], scene.RGBA{R: c.R, G: c.G, B: c.B, A: c.A / 8})
			}
		}
	}
}

// Cell returns the displayed background and foreground of a cell.
func (t *Terminal) Cell(col, row int) (bg, fg colorful.Color) {
	base := t.bg[row][col]
	l := t.light[row][col]
	bg = colorful.Color{R: base.R + l, G: base.G + l, B: base.B + l}.Clamped()
	fg = bg.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, dotLift).Clamped()
	return bg, fg
}

// View renders the canvas, merging runs of equally colored cells.
func (t *Terminal) View() string {
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		var run strings.Builder
		var runBg, runFg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(runBg)).
				Foreground(lipgloss.Color(runFg))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < t.cols; col++ {
			bg, fg := t.Cell(col, row)
			bgHex, fgHex := bg.Hex(), fg.Hex()
			if bgHex != runBg || fgHex != runFg {
				flush()
				runBg, runFg = bgHex, fgHex
			}
			run.WriteRune(t.canvas.Grid[row][col])
		}
		flush()
		if row < t.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sample(style scene.FillStyle, x, y float64) (scene.RGBA, bool) {
	switch s := style.(type) {
	case scene.RGBA:
		return s, true
	case *scene.LinearGradient:
		return s.AtPoint(x, y), true
	}
	return scene.RGBA{}, false
}

// blend paints c over dst with source-over.
func blend(dst colorful.Color, c scene.RGBA) colorful.Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return dst.BlendRgb(src, math.Max(0, math.Min(1, c.A)))
}
