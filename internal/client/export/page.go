package export

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Page geometry in pixels. The face is monospaced, 7px per cell.
const (
	pageWidth  = 620
	pageHeight = 877
	margin     = 40
	lineHeight = 16
	cellWidth  = 7
)

var (
	columns  = (pageWidth - 2*margin) / cellWidth
	maxLines = (pageHeight - 2*margin) / lineHeight
)

// pageText wraps lines to the page width and cuts them to the page height,
// marking a cut with a trailing "...".
func pageText(lines []string) []string {
	var out []string
	for _, l := range lines {
		out = append(out, strings.Split(runewidth.Wrap(l, columns), "\n")...)
	}
	if len(out) > maxLines {
		out = append(out[:maxLines-1], "...")
	}
	return out
}

// renderPage draws lines black on white onto a single page.
func renderPage(lines []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pageWidth, pageHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, l := range pageText(lines) {
		d.Dot = fixed.P(margin, margin+(i+1)*lineHeight)
		d.DrawString(l)
	}
	return img
}
