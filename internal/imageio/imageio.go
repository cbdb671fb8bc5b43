// Package imageio owns the pixel buffers on either side of a dissolve:
// the source image, the destination image, and the working frame that
// is shown while pixels migrate from one to the other.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrDimensionMismatch indicates the source and destination images
// differ in size. Equal dimensions are checked here, before any
// transition is constructed over the buffers.
var ErrDimensionMismatch = errors.New("imageio: source and destination dimensions differ")

// Buffers holds the three pixel planes of one dissolve. The working
// plane starts as a copy of the source and is mutated one pixel at a
// time through Swap.
type Buffers struct {
	Width  int
	Height int

	source  *image.RGBA
	dest    *image.RGBA
	working *image.RGBA
}

// Load reads and decodes both images and verifies they share
// dimensions.
func Load(srcPath, dstPath string) (*Buffers, error) {
	src, err := decode(srcPath)
	if err != nil {
		return nil, err
	}
	dst, err := decode(dstPath)
	if err != nil {
		return nil, err
	}
	return New(src, dst)
}

// New builds buffers from two decoded images of equal size.
func New(src, dst image.Image) (*Buffers, error) {
	sb, db := src.Bounds(), dst.Bounds()
	if sb.Dx() != db.Dx() || sb.Dy() != db.Dy() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, sb.Dx(), sb.Dy(), db.Dx(), db.Dy())
	}

	b := &Buffers{
		Width:  sb.Dx(),
		Height: sb.Dy(),
		source: toRGBA(src),
		dest:   toRGBA(dst),
	}
	b.working = image.NewRGBA(b.source.Bounds())
	copy(b.working.Pix, b.source.Pix)
	return b, nil
}

// Swap copies the destination pixel at (x, y) into the working frame.
// It satisfies the swap hook the transition expects.
func (b *Buffers) Swap(x, y int) {
	i := b.working.PixOffset(x, y)
	copy(b.working.Pix[i:i+4], b.dest.Pix[i:i+4])
}

// Restart recopies the source over the working frame, the buffer-side
// half of replaying a transition from the start.
func (b *Buffers) Restart() {
	copy(b.working.Pix, b.source.Pix)
}

// Working returns the frame to display.
func (b *Buffers) Working() *image.RGBA { return b.working }

// Destination returns the image being revealed.
func (b *Buffers) Destination() *image.RGBA { return b.dest }

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
