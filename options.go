package siimg

import "github.com/zype-z/siimg/text"

// TextOptions controls how Image.Text spaces glyphs.
//
// Example:
//
//	opts := siimg.DefaultTextOptions()
//	opts.LetterSpacing = 4
//	img = img.Text("Hello", 48, 20, 20, "#fff", font, opts)
type TextOptions struct {
	// LetterSpacing is added after every drawn glyph, in pixels.
	LetterSpacing float64

	// SpaceWidth is the advance of a whitespace rune, in pixels.
	SpaceWidth float64

	// Normalize applies Unicode NFC to the text before layout.
	Normalize bool
}

// DefaultTextOptions returns letter spacing 2 and space width 10.
func DefaultTextOptions() TextOptions {
	d := text.DefaultLayoutOptions()
	return TextOptions{
		LetterSpacing: d.LetterSpacing,
		SpaceWidth:    d.SpaceWidth,
	}
}

func (o TextOptions) layout() text.LayoutOptions {
	return text.LayoutOptions{
		LetterSpacing: o.LetterSpacing,
		SpaceWidth:    o.SpaceWidth,
		Normalize:     o.Normalize,
	}
}
