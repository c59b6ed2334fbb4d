package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bubblescape/internal/config"
	"github.com/san-kum/bubblescape/internal/export"
	"github.com/san-kum/bubblescape/internal/metrics"
	"github.com/san-kum/bubblescape/internal/raster"
	"github.com/san-kum/bubblescape/internal/scene"
	"github.com/spf13/cobra"
)

// startHeadless starts a driver on host using the command's configuration.
func startHeadless(cmd *cobra.Command, host scene.Host) (*scene.Driver, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	rng, opts, err := sceneSetup(cfg)
	if err != nil {
		return nil, err
	}
	driver, err := scene.NewDriver(host, rng, opts)
	if err != nil {
		return nil, err
	}
	if err := driver.Start(); err != nil {
		return nil, err
	}
	return driver, nil
}

// windowConfig reads the surface settings without starting anything.
func windowConfig(cmd *cobra.Command) (config.WindowConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.WindowConfig{}, err
	}
	return cfg.Window, nil
}

// gifDelay converts a capture interval in frames to a GIF frame delay in
// hundredths of a second.
func gifDelay(every, fps int) int {
	return every * 100 / fps
}

// frameRunner is a host whose frames run on demand.
type frameRunner interface {
	scene.Host
	RunFrame() bool
}

// runFrames runs n frames on host, calling capture after each one, and
// returns the statistics observed along the way.
func runFrames(host frameRunner, d *scene.Driver, n int, capture func(i int)) metrics.Set {
	stats := metrics.Set{metrics.NewBubbleCount(), metrics.NewCoverage(host), metrics.NewConvergence()}
	for i := 1; i <= n; i++ {
		host.RunFrame()
		stats.Observe(d)
		if capture != nil {
			capture(i)
		}
	}
	return stats
}

func printStats(stats metrics.Set) {
	for _, m := range stats {
		dim.Printf("  %-10s %.3f\n", m.Name(), m.Value())
	}
}

func outputPath(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	out := outputPath(args, "bubblescape.png")
	win, err := windowConfig(cmd)
	if err != nil {
		return err
	}
	w, h := win.Width, win.Height
	host := raster.New(w, h)
	driver, err := startHeadless(cmd, host)
	if err != nil {
		return err
	}

	stats := runFrames(host, driver, snapshotFrames, nil)
	if err := host.SavePNG(out); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	green.Printf("wrote %s ", out)
	dim.Printf("(%dx%d, %d frames)\n", w, h, driver.Frames())
	printStats(stats)
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	out := outputPath(args, "bubblescape.gif")
	win, err := windowConfig(cmd)
	if err != nil {
		return err
	}
	w, h := win.Width, win.Height
	if every < 1 {
		return fmt.Errorf("--every must be at least 1")
	}
	host := raster.New(w, h)
	driver, err := startHeadless(cmd, host)
	if err != nil {
		return err
	}

	rec := raster.NewRecorder(gifDelay(every, win.FPS))
	stats := runFrames(host, driver, recordFrames, func(i int) {
		if i%every == 0 {
			rec.Capture(host.Image())
		}
	})

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.Encode(f); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	green.Printf("wrote %s ", out)
	dim.Printf("(%d frames captured)\n", rec.Len())
	printStats(stats)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	out := outputPath(args, "bubblescape.svg")
	win, err := windowConfig(cmd)
	if err != nil {
		return err
	}
	w, h := win.Width, win.Height
	host := export.NewSVG(w, h)
	driver, err := startHeadless(cmd, host)
	if err != nil {
		return err
	}
	stats := runFrames(host, driver, svgFrames, nil)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := host.Encode(f); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	green.Printf("wrote %s ", out)
	dim.Printf("(%d shapes)\n", host.Shapes())
	printStats(stats)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rng, opts, err := sceneSetup(cfg)
	if err != nil {
		return err
	}

	bg := scene.NewBackground(raster.New(cfg.Window.Width, cfg.Window.Height), rng, opts.InitialColor)
	if target != "" {
		c, err := config.ParseColor(target)
		if err != nil {
			return err
		}
		bg.SetTarget(scene.RGB(c))
	} else {
		bg.Randomize()
	}

	series := traceBackground(bg, ticks)
	cyan.Printf("background %s -> %s\n", opts.InitialColor.CSS(), bg.Target().CSS())
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption("channel value per tick"),
	))
	if bg.Converged() {
		green.Printf("converged after %d ticks\n", len(series[0])-1)
	} else {
		dim.Printf("not converged after %d ticks\n", ticks)
	}
	return nil
}

// traceBackground ticks bg until it converges or limit ticks pass and returns
// the per-channel history, starting with the current color.
func traceBackground(bg *scene.Background, limit int) [][]float64 {
	series := make([][]float64, 3)
	record := func() {
		for i, v := range bg.Color() {
			series[i] = append(series[i], float64(v))
		}
	}
	record()
	for i := 0; i < limit && !bg.Converged(); i++ {
		bg.Tick()
		record()
	}
	return series
}
