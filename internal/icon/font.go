package icon

import (
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultLetter is the capital drawn on the book cover.
	DefaultLetter = "S"

	// DefaultFontPath is the preferred bold face. Missing on most
	// non-Debian systems, which is fine — loadFace degrades.
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

// loadFace returns a face for the TTF at path scaled to the given pixel
// size. Any failure to read or parse the file falls back to the built-in
// basicfont face, so glyph rendering itself never fails.
func loadFace(path string, size int) font.Face {
	buf, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	f, err := truetype.Parse(buf)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawCenteredLetter measures the letter and draws it centered horizontally
// in the canvas and vertically within the book rectangle.
func drawCenteredLetter(img *image.RGBA, letter, fontPath string, size, bookTop, bookH int) {
	face := loadFace(fontPath, size/8)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Border),
		Face: face,
	}

	w := d.MeasureString(letter)
	m := face.Metrics()
	textH := m.Ascent + m.Descent

	d.Dot.X = (fixed.I(size) - w) / 2
	d.Dot.Y = fixed.I(bookTop) + (fixed.I(bookH)-textH)/2 + m.Ascent
	d.DrawString(letter)
}
