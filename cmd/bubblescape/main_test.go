package main

import (
	"image/gif"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/bubblescape/internal/raster"
	"github.com/san-kum/bubblescape/internal/scene"
)

func TestTraceBackground(t *testing.T) {
	bg := scene.NewBackground(raster.New(10, 10), rand.New(rand.NewSource(1)), scene.RGB{0, 0, 0})
	bg.SetTarget(scene.RGB{25, 5, 0})

	series := traceBackground(bg, 100)
	want := [][]float64{
		{0, 10, 20, 25},
		{0, 5, 5, 5},
		{0, 0, 0, 0},
	}
	for ch := range want {
		if len(series[ch]) != len(want[ch]) {
			t.Fatalf("channel %d: expected %v, got %v", ch, want[ch], series[ch])
		}
		for i := range want[ch] {
			if series[ch][i] != want[ch][i] {
				t.Errorf("channel %d tick %d: expected %v, got %v", ch, i, want[ch][i], series[ch][i])
			}
		}
	}
}

func TestTraceBackgroundLimit(t *testing.T) {
	bg := scene.NewBackground(raster.New(10, 10), rand.New(rand.NewSource(1)), scene.RGB{0, 0, 0})
	bg.SetTarget(scene.RGB{255, 255, 255})

	series := traceBackground(bg, 3)
	if len(series[0]) != 4 {
		t.Errorf("expected initial value plus 3 ticks, got %d", len(series[0]))
	}
	if bg.Converged() {
		t.Error("should not converge in 3 ticks")
	}
}

func TestOutputPath(t *testing.T) {
	if outputPath(nil, "a.png") != "a.png" {
		t.Error("expected default path")
	}
	if outputPath([]string{"b.png"}, "a.png") != "b.png" {
		t.Error("expected explicit path")
	}
}

func TestRunFrames(t *testing.T) {
	host := raster.New(40, 30)
	d, err := scene.NewDriver(host, rand.New(rand.NewSource(2)), scene.Options{InitialColor: scene.RGB{10, 10, 10}, InitialBubbles: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}

	var captured []int
	stats := runFrames(host, d, 4, func(i int) { captured = append(captured, i) })

	if d.Frames() != 4 {
		t.Errorf("expected 4 frames, got %d", d.Frames())
	}
	if len(captured) != 4 || captured[0] != 1 || captured[3] != 4 {
		t.Errorf("unexpected capture calls %v", captured)
	}
	values := stats.Values()
	if values["bubbles"] != 2 {
		t.Errorf("expected 2 bubbles, got %f", values["bubbles"])
	}
	if values["converged"] != 1 {
		t.Errorf("expected a resting background, got %f", values["converged"])
	}
}

func TestFrameFlagDefaults(t *testing.T) {
	root := newRootCmd()
	want := map[string]int{"snapshot": 60, "record": 120, "svg": 60}
	for name, frames := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatal(err)
		}
		got, err := cmd.Flags().GetInt("frames")
		if err != nil {
			t.Fatal(err)
		}
		if got != frames {
			t.Errorf("%s: expected --frames default %d, got %d", name, frames, got)
		}
	}
	if snapshotFrames != 60 || recordFrames != 120 || svgFrames != 60 {
		t.Errorf("unexpected bound defaults %d/%d/%d", snapshotFrames, recordFrames, svgFrames)
	}
}

func TestRecordDefaultFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.gif")
	root := newRootCmd()
	root.SetArgs([]string{"record", "--width", "16", "--height", "12", "--seed", "1", out})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	// 120 frames, every second one captured
	if len(anim.Image) != 60 {
		t.Errorf("expected 60 captured frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != gifDelay(2, 60) {
		t.Errorf("expected delay %d, got %d", gifDelay(2, 60), anim.Delay[0])
	}
}

func TestGIFDelayFollowsFPS(t *testing.T) {
	tests := []struct {
		every, fps, want int
	}{
		{2, 60, 3},
		{1, 25, 4},
		{2, 25, 8},
		{1, 120, 0},
	}
	for _, tt := range tests {
		if got := gifDelay(tt.every, tt.fps); got != tt.want {
			t.Errorf("gifDelay(%d, %d) = %d, want %d", tt.every, tt.fps, got, tt.want)
		}
	}
}
