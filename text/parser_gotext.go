package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using go-text/typesetting.
// Select it with WithParser("gotext").
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont on a go-text font.Face.
// font.Face keeps per-face caches and is not safe for concurrent use,
// so every access is serialized.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements ParsedFont.Name. The go-text backend does not expose
// the name table; FontSource falls back to a placeholder.
func (f *gotextParsedFont) Name() string { return "" }

// FullName implements ParsedFont.FullName.
func (f *gotextParsedFont) FullName() string { return "" }

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 || gid > 0xFFFF {
		return 0, false
	}
	return GlyphID(gid), true
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	scale := ppem / float64(f.face.Upem())
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: float64(ext.Descender) * scale,
		LineGap: float64(ext.LineGap) * scale,
	}
}

// GlyphOutline implements ParsedFont.GlyphOutline.
// go-text reports font units with Y pointing up; the result is scaled to
// ppem and flipped into image space.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	outline, ok := f.face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		// Bitmap and SVG glyphs carry no outline.
		return nil, nil
	}

	scale := ppem / float64(f.face.Upem())
	segments := make([]OutlineSegment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		var seg OutlineSegment
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = OutlineOpCubicTo
		default:
			return nil, fmt.Errorf("text: glyph %d: unexpected segment op %d", gid, s.Op)
		}
		for j := range seg.Op.pointCount() {
			seg.Points[j] = OutlinePoint{
				X: float64(s.Args[j].X) * scale,
				Y: -float64(s.Args[j].Y) * scale,
			}
		}
		segments = append(segments, seg)
	}

	return newGlyphOutline(gid, segments), nil
}
