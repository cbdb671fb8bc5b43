package tui

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

const resetStyle = "\033[0m"

// Frame renders an image into a cols x rows cell grid using half-block
// characters, two vertical pixels per cell: the upper pixel colors the
// foreground of U+2580, the lower pixel the background. The image is
// scaled to fit while keeping its aspect ratio.
func Frame(img *image.RGBA, cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}

	tw, th := fit(img.Bounds().Dx(), img.Bounds().Dy(), cols, rows*2)
	scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	for cy := 0; cy < (th+1)/2; cy++ {
		for x := 0; x < tw; x++ {
			top := scaled.RGBAAt(x, cy*2)
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm", top.R, top.G, top.B)
			if cy*2+1 < th {
				bot := scaled.RGBAAt(x, cy*2+1)
				fmt.Fprintf(&b, "\033[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
			}
			b.WriteRune('▀')
		}
		b.WriteString(resetStyle)
		b.WriteString("\n")
	}
	return b.String()
}

// fit scales (w, h) down (or up) to the largest size inside the
// (maxW, maxH) pixel box with the same aspect ratio.
func fit(w, h, maxW, maxH int) (int, int) {
	sw := float64(maxW) / float64(w)
	sh := float64(maxH) / float64(h)
	s := sw
	if sh < s {
		s = sh
	}
	tw := int(float64(w) * s)
	th := int(float64(h) * s)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
