package text

import (
	"image"
	"iter"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Layout places the glyphs of s on a single line starting at start.
//
// scale is the pixel height of the font (ascent to descent). The baseline
// sits at start.Y plus the ascent at that scale. Runes are visited in
// logical order: whitespace advances the pen by opts.SpaceWidth without
// producing a glyph, runes the font cannot draw are skipped without moving
// the pen, and every other glyph advances the pen by its pixel width plus
// opts.LetterSpacing.
//
// The returned sequence is lazy and restartable: each iteration lays the
// text out again and yields the same glyphs in the same order.
func Layout(src *FontSource, s string, scale float64, start Point, opts LayoutOptions) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		place(src, s, scale, start, opts, yield)
	}
}

// AppendLayout appends the glyphs of Layout to dst and returns the
// extended slice.
func AppendLayout(dst []Glyph, src *FontSource, s string, scale float64, start Point, opts LayoutOptions) []Glyph {
	place(src, s, scale, start, opts, func(g Glyph) bool {
		dst = append(dst, g)
		return true
	})
	return dst
}

// Extent describes the space a laid out line occupies.
type Extent struct {
	// Ink is the union of all glyph bounding boxes.
	Ink image.Rectangle

	// Advance is the pen travel from the start position, including
	// trailing whitespace and letter spacing.
	Advance float64

	// Glyphs is the number of glyphs drawn.
	Glyphs int
}

// Measure lays s out at the origin and reports its extent without
// drawing it.
func Measure(src *FontSource, s string, scale float64, opts LayoutOptions) Extent {
	var ext Extent
	ext.Advance = place(src, s, scale, Point{}, opts, func(g Glyph) bool {
		ext.Ink = ext.Ink.Union(g.Bounds)
		ext.Glyphs++
		return true
	})
	return ext
}

// place runs the layout loop, handing each glyph to yield until it
// returns false. It returns the final pen offset from start.X.
func place(src *FontSource, s string, scale float64, start Point, opts LayoutOptions, yield func(Glyph) bool) float64 {
	if src == nil || s == "" || !(scale > 0) {
		return 0
	}
	if opts.Normalize {
		s = norm.NFC.String(s)
	}

	ppem := src.PixelsPerEm(scale)
	x := start.X
	y := start.Y + src.parsed.Metrics(ppem).Ascent

	for _, r := range s {
		if unicode.IsSpace(r) {
			x += opts.SpaceWidth
			continue
		}
		g, ok := src.glyph(r, ppem, x, y)
		if !ok {
			continue
		}
		if !yield(g) {
			break
		}
		x += float64(g.Width()) + opts.LetterSpacing
	}
	return x - start.X
}
