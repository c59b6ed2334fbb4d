package raster

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// Recorder collects frames for an animated GIF.
type Recorder struct {
	// Delay between frames in hundredths of a second.
	Delay  int
	frames []*image.Paletted
}

func NewRecorder(delay int) *Recorder {
	return &Recorder{Delay: max(delay, 1)}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture quantizes img to the Plan 9 palette and appends it.
func (r *Recorder) Capture(img image.Image) {
	frame := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, img.Bounds(), img, img.Bounds().Min)
	r.frames = append(r.frames, frame)
}

func (r *Recorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
