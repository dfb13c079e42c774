package text

import "image"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// Glyph is one positioned, rasterized glyph produced by Layout.
// It is immutable: the coverage mask may be shared with the source's
// glyph cache and must not be modified.
type Glyph struct {
	// Rune is the character this glyph represents.
	Rune rune

	// GID is the glyph index in the font.
	GID GlyphID

	// X, Y is the pen position the glyph was placed at; Y is the baseline.
	X, Y float64

	// Bounds is the glyph's pixel bounding box in image space.
	Bounds image.Rectangle

	mask *image.Alpha
}

// Width returns the pixel width of the bounding box.
func (g Glyph) Width() int { return g.Bounds.Dx() }

// Height returns the pixel height of the bounding box.
func (g Glyph) Height() int { return g.Bounds.Dy() }

// Coverage returns the ink coverage in [0, 1] at local offset (dx, dy)
// from Bounds.Min. Offsets outside the bounding box have zero coverage.
func (g Glyph) Coverage(dx, dy int) float64 {
	if g.mask == nil || dx < 0 || dy < 0 || dx >= g.Bounds.Dx() || dy >= g.Bounds.Dy() {
		return 0
	}
	return float64(g.mask.Pix[dy*g.mask.Stride+dx]) / 255
}
