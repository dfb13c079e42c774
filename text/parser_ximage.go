package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser is the default backend, built on golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont wraps an sfnt.Font.
// sfnt.Font is safe for concurrent use but its scratch sfnt.Buffer is not,
// so buffers come from a pool.
type ximageParsedFont struct {
	font *opentype.Font
	bufs sync.Pool
}

func (f *ximageParsedFont) buffer() *sfnt.Buffer {
	if b, ok := f.bufs.Get().(*sfnt.Buffer); ok {
		return b
	}
	return new(sfnt.Buffer)
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	if name, err := f.font.Name(buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	if name, err := f.font.Name(buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	buf := f.buffer()
	defer f.bufs.Put(buf)
	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	buf := f.buffer()
	defer f.bufs.Put(buf)

	m, err := f.font.Metrics(buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	ascent := fixedToFloat64(m.Ascent)
	descent := -fixedToFloat64(m.Descent)
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat64(m.Height) - ascent + descent,
	}
}

// GlyphOutline implements ParsedFont.GlyphOutline.
// sfnt already yields pixel coordinates with Y pointing down.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	buf := f.buffer()
	defer f.bufs.Put(buf)

	segs, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	segments := make([]OutlineSegment, 0, len(segs))
	for _, s := range segs {
		var seg OutlineSegment
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = OutlineOpCubicTo
		default:
			return nil, fmt.Errorf("text: glyph %d: unexpected segment op %d", gid, s.Op)
		}
		for j := range seg.Op.pointCount() {
			seg.Points[j] = OutlinePoint{
				X: fixedToFloat64(s.Args[j].X),
				Y: fixedToFloat64(s.Args[j].Y),
			}
		}
		segments = append(segments, seg)
	}

	return newGlyphOutline(gid, segments), nil
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
