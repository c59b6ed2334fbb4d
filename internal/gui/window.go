package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bubblescape/internal/config"
	"github.com/san-kum/bubblescape/internal/scene"
)

// Window is a raylib window acting as a scene host.
type Window struct {
	scene.Dispatcher

	width, height int
	blending      bool
}

// Open creates the window. It returns scene.ErrNoSurface if raylib could
// not create a GL context.
func Open(cfg config.WindowConfig) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	if cfg.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, scene.ErrNoSurface
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyQ)

	return &Window{width: cfg.Width, height: cfg.Height}, nil
}

func (w *Window) Close() { rl.CloseWindow() }

func (w *Window) ContentArea() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	if rl.GetScreenWidth() != width || rl.GetScreenHeight() != height {
		rl.SetWindowSize(width, height)
	}
}

func (w *Window) Size() (float64, float64) {
	return float64(w.width), float64(w.height)
}

func (w *Window) SetCompositeMode(mode scene.CompositeMode) {
	switch {
	case mode == scene.CompositeAdditive && !w.blending:
		rl.BeginBlendMode(rl.BlendAdditive)
		w.blending = true
	case mode == scene.CompositeNormal && w.blending:
		rl.EndBlendMode()
		w.blending = false
	}
}

func (w *Window) FillRect(x, y, width, height float64, style scene.FillStyle) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(width), float32(height))
	switch s := style.(type) {
	case scene.RGBA:
		rl.DrawRectangleRec(rec, toColor(s))
	case *scene.LinearGradient:
		tl, bl, br, tr := s.Corners(x, y, width, height)
		// vertices are wound counter-clockwise from the top-left corner
		rl.DrawRectangleGradientEx(rec, toColor(tl), toColor(bl), toColor(br), toColor(tr))
	}
}

func (w *Window) FillCircle(x, y, radius float64, style scene.FillStyle) {
	center := rl.NewVector2(float32(x), float32(y))
	switch s := style.(type) {
	case scene.RGBA:
		rl.DrawCircleV(center, float32(radius), toColor(s))
	case *scene.LinearGradient:
		rl.DrawCircleV(center, float32(radius), toColor(s.AtPoint(x, y)))
	}
}

// Loop runs until the window is closed. Input is dispatched before each
// frame on the calling goroutine, which must be the one that called Open.
func (w *Window) Loop() {
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			w.width, w.height = rl.GetScreenWidth(), rl.GetScreenHeight()
		}

		mouse := rl.GetMousePosition()
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			w.Click(float64(mouse.X), float64(mouse.Y))
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			// raylib has no native context menu to suppress
			w.ContextMenu(float64(mouse.X), float64(mouse.Y))
		}

		rl.BeginDrawing()
		w.RunFrame()
		w.SetCompositeMode(scene.CompositeNormal)
		rl.EndDrawing()
	}
}

func toColor(c scene.RGBA) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, uint8(c.A*255+0.5))
}
