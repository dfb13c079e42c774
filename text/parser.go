package text

import "sync"

// FontParser turns raw font bytes into a ParsedFont. Backends are
// registered by name and chosen per source with WithParser.
type FontParser interface {
	// Parse reads a TrueType or OpenType font.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the backend view of one font. Implementations must be
// safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// UnitsPerEm is the size of the em square in font units.
	UnitsPerEm() int

	// GlyphIndex returns the glyph for r. ok is false when the font has
	// no mapping for r.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// Metrics returns the font metrics at ppem pixels per em.
	Metrics(ppem float64) FontMetrics

	// GlyphOutline returns the glyph outline scaled to ppem, in pixels,
	// with Y growing downwards and the origin on the baseline.
	GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error)
}

// FontMetrics are the vertical metrics of a font at one size, in pixels.
type FontMetrics struct {
	// Ascent is how far the font rises above the baseline (positive).
	Ascent float64

	// Descent is how far the font reaches below it (negative).
	Descent float64

	// LineGap is the extra space the font asks for between lines.
	LineGap float64
}

// Height returns ascent - descent, the span a scale value maps to.
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent
}

// LineHeight returns the distance between consecutive baselines.
func (m FontMetrics) LineHeight() float64 {
	return m.Height() + m.LineGap
}

const defaultParserName = "ximage"

var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": ximageParser{},
		"gotext": gotextParser{},
	}
)

// RegisterParser registers a custom font parser under name, replacing any
// parser previously registered with that name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
