// Package export renders a dissolve offline into an animated GIF.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/benstone/3dmm-dissolve/internal/dissolve"
	"github.com/benstone/3dmm-dissolve/internal/imageio"
)

// GIF steps the transition at a fixed frame rate and writes every
// working frame, starting with the untouched source and ending with the
// fully revealed destination. It returns the number of frames written.
// The transition must be freshly constructed (or reset) over b.
func GIF(w io.Writer, b *imageio.Buffers, tr *dissolve.Transition, fps int) (int, error) {
	if fps < 1 {
		return 0, fmt.Errorf("export: fps must be at least 1, got %d", fps)
	}

	delta := time.Second / time.Duration(fps)
	delay := 100 / fps // centiseconds per frame
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{}
	appendFrame := func() {
		anim.Image = append(anim.Image, quantize(b.Working()))
		anim.Delay = append(anim.Delay, delay)
	}

	appendFrame()
	for running := true; running; {
		var err error
		running, err = tr.Update(delta)
		if err != nil {
			return 0, err
		}
		appendFrame()
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return 0, fmt.Errorf("export: encode gif: %w", err)
	}
	return len(anim.Image), nil
}

func quantize(src *image.RGBA) *image.Paletted {
	p := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, src.Bounds(), src, image.Point{})
	return p
}
