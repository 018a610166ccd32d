// Package icon procedurally renders the storytelling app's placeholder
// icon: an open book with a spine, page edges, and a centered letter.
package icon

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette of the book glyph. Matches the app's Tailwind blues.
var (
	Background = color.RGBA{0x3b, 0x82, 0xf6, 0xff} // blue-500
	Paper      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Border     = color.RGBA{0x25, 0x63, 0xeb, 0xff} // blue-600
	PageEdge   = color.RGBA{0xe5, 0xe7, 0xeb, 0xff} // gray-200
)

// Stroke widths, in pixels, fixed across sizes.
const (
	outlineWidth = 2
	spineWidth   = 3
)

// Draw renders the square book icon at the given pixel size with the
// default letter and font. The output is a pure function of size and font
// availability, so repeated calls produce identical images.
func Draw(size int) *image.RGBA {
	return DrawLetter(size, DefaultLetter, DefaultFontPath)
}

// DrawLetter renders the icon with an explicit letter and font path.
// A font that cannot be loaded degrades to the built-in face; every other
// drawing step is infallible.
func DrawLetter(size int, letter, fontPath string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{Background}, image.Point{}, draw.Src)

	// Book rectangle: inset by size/8 on the left and right, 80% as tall
	// as it is wide, vertically centered.
	margin := size / 8
	bookW := size - 2*margin
	bookH := bookW * 4 / 5
	bookTop := (size - bookH) / 2
	bookBottom := bookTop + bookH

	fillRect(img, margin, bookTop, size-margin, bookBottom, Paper)
	strokeRect(img, margin, bookTop, size-margin, bookBottom, outlineWidth, Border)

	// Spine down the horizontal midpoint.
	spineX := size / 2
	fillRect(img, spineX-spineWidth/2, bookTop, spineX-spineWidth/2+spineWidth, bookBottom, Border)

	// Page edges: three pairs of short lines stepping in from the top
	// corners toward the spine.
	for i := 1; i <= 3; i++ {
		off := i * 3
		hline(img, margin+off, spineX-off, bookTop+off, PageEdge)
		hline(img, spineX+off, size-margin-off, bookTop+off, PageEdge)
	}

	drawCenteredLetter(img, letter, fontPath, size, bookTop, bookH)
	return img
}

// fillRect fills the half-open rectangle [x0,x1) x [y0,y1).
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{c}, image.Point{}, draw.Src)
}

// strokeRect draws a frame of width w just inside the rectangle bounds.
func strokeRect(img *image.RGBA, x0, y0, x1, y1, w int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+w, c)
	fillRect(img, x0, y1-w, x1, y1, c)
	fillRect(img, x0, y0, x0+w, y1, c)
	fillRect(img, x1-w, y0, x1, y1, c)
}

// hline draws a one-pixel horizontal line from x0 to x1 (exclusive) at y.
func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	fillRect(img, x0, y, x1, y+1, c)
}
