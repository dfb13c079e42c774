package siimg

import (
	"github.com/zype-z/siimg/text"
)

// Font is a loaded font program. Font is a small value: copies share the
// same immutable font source and glyph cache, so a Font can be passed
// around and stored in a Bag freely.
//
// The zero Font has no glyphs; text drawn with it renders nothing.
type Font struct {
	src *text.FontSource
}

// NewFont wraps an existing font source.
func NewFont(src *text.FontSource) Font {
	return Font{src: src}
}

// Source returns the underlying font source, or nil for the zero Font.
func (f Font) Source() *text.FontSource { return f.src }

// IsZero reports whether f holds no font.
func (f Font) IsZero() bool { return f.src == nil }

// Name returns the font family name, or "" for the zero Font.
func (f Font) Name() string {
	if f.src == nil {
		return ""
	}
	return f.src.Name()
}

// Measure reports the extent s would occupy when drawn at scale.
func (f Font) Measure(s string, scale float64, opts TextOptions) text.Extent {
	return text.Measure(f.src, s, scale, opts.layout())
}
