package text

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/zype-z/siimg/internal/cache"
)

// subpixelSteps is the number of horizontal and vertical sub-pixel
// positions a glyph mask is rasterized at. Pen positions are rounded to
// the nearest step, which bounds the glyph cache and keeps layout
// deterministic.
const subpixelSteps = 64

// FontSource represents a loaded font file: the parsed font program plus
// a cache of rasterized glyph masks. FontSource is heavyweight and should
// be shared across the application.
//
// A FontSource may be used from several goroutines at once. Share it by
// pointer: copies panic on first use.
type FontSource struct {
	// addr points back at the source; a mismatch means a copy.
	addr *FontSource

	data   []byte
	parsed ParsedFont
	name   string

	// unitsHeight is ascent - descent in font units; scale values map
	// this span to pixels.
	unitsHeight float64
	upem        float64

	masks  *cache.Cache[maskKey, *image.Alpha]
	config sourceConfig
}

// maskKey identifies one rasterization of a glyph.
type maskKey struct {
	gid    GlyphID
	ppem   uint64 // math.Float64bits of pixels per em
	fx, fy uint8  // sub-pixel offset in 1/subpixelSteps units
}

// NewFontSource parses TrueType or OpenType data. NewFontSource keeps a
// private copy of data, so the caller may reuse the slice.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		masks:  cache.New[maskKey, *image.Alpha](config.cacheLimit),
		config: config,
	}
	s.addr = s
	s.name = extractFontName(parsed)

	s.upem = float64(parsed.UnitsPerEm())
	if s.upem <= 0 {
		return nil, fmt.Errorf("text: font %q reports %v units per em", s.name, s.upem)
	}
	// At ppem == upem one pixel is one font unit.
	s.unitsHeight = parsed.Metrics(s.upem).Height()

	slogger().Debug("text: font source loaded",
		"name", s.name,
		"parser", config.parserName,
		"bytes", len(dataCopy))
	return s, nil
}

// NewFontSourceFromFile reads path and parses it with NewFontSource.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the family name, or "Unknown Font" when the backend
// cannot read the name table.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the parser backend that loaded the font.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// Parsed exposes the backend font, for metrics the source does not wrap.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// PixelsPerEm converts a scale (the pixel height that the font's
// ascent-to-descent span should occupy) to pixels per em.
func (s *FontSource) PixelsPerEm(scale float64) float64 {
	s.copyCheck()
	if s.unitsHeight <= 0 {
		return scale
	}
	return scale * s.upem / s.unitsHeight
}

// Metrics returns the font metrics at scale.
func (s *FontSource) Metrics(scale float64) FontMetrics {
	s.copyCheck()
	return s.parsed.Metrics(s.PixelsPerEm(scale))
}

// Ascent returns the baseline offset from the top of a line at scale.
func (s *FontSource) Ascent(scale float64) float64 {
	return s.Metrics(scale).Ascent
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()
	_, ok := s.parsed.GlyphIndex(r)
	return ok
}

// CacheStats returns statistics of the glyph mask cache.
func (s *FontSource) CacheStats() cache.Stats {
	s.copyCheck()
	return s.masks.Stats()
}

// glyph rasterizes r at ppem with its pen at (x, y).
// ok is false when the font has no glyph for r or the glyph draws nothing.
func (s *FontSource) glyph(r rune, ppem, x, y float64) (Glyph, bool) {
	gid, ok := s.parsed.GlyphIndex(r)
	if !ok {
		return Glyph{}, false
	}

	ix, fx := splitSubpixel(x)
	iy, fy := splitSubpixel(y)
	key := maskKey{gid: gid, ppem: math.Float64bits(ppem), fx: fx, fy: fy}

	mask := s.masks.GetOrCreate(key, func() *image.Alpha {
		outline, err := s.parsed.GlyphOutline(gid, ppem)
		if err != nil {
			slogger().Debug("text: glyph outline unavailable",
				"rune", string(r), "gid", gid, "err", err)
			return nil
		}
		if outline == nil {
			return nil
		}
		return Rasterize(outline, float64(fx)/subpixelSteps, float64(fy)/subpixelSteps)
	})
	if mask == nil {
		return Glyph{}, false
	}

	return Glyph{
		Rune:   r,
		GID:    gid,
		X:      x,
		Y:      y,
		Bounds: mask.Rect.Add(image.Pt(ix, iy)),
		mask:   mask,
	}, true
}

// Close drops the retained font bytes and cached glyph masks.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.masks.Clear()
	s.data = nil
	return nil
}

// copyCheck panics when called on a by-value copy.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// splitSubpixel splits v into an integer pixel and a sub-pixel step.
func splitSubpixel(v float64) (int, uint8) {
	i := math.Floor(v)
	f := math.Round((v - i) * subpixelSteps)
	if f >= subpixelSteps {
		i++
		f = 0
	}
	return int(i), uint8(f)
}

// extractFontName prefers the family name, then the full name.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
