package text

import "math"

// OutlinePoint is an outline coordinate in pixels.
type OutlinePoint = Point

// OutlineOp is a path command of a glyph outline.
type OutlineOp uint8

// Path commands, matching the segment ops of the font parsers.
const (
	OutlineOpMoveTo OutlineOp = iota
	OutlineOpLineTo
	OutlineOpQuadTo
	OutlineOpCubicTo
)

var outlineOpNames = [...]string{"MoveTo", "LineTo", "QuadTo", "CubicTo"}

func (op OutlineOp) String() string {
	if int(op) < len(outlineOpNames) {
		return outlineOpNames[op]
	}
	return "Unknown"
}

// pointCount returns how many entries of OutlineSegment.Points op uses:
// the end point, preceded by one or two control points for curves.
func (op OutlineOp) pointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// OutlineSegment is one path command with its points. The end point is
// always the last one used.
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]OutlinePoint
}

// GlyphOutline is a glyph's vector path scaled to pixels. Y grows
// downwards and the origin is the pen position on the baseline, so the
// outline drops straight into image space.
type GlyphOutline struct {
	GID      GlyphID
	Segments []OutlineSegment

	// Bounds encloses every on- and off-curve point.
	Bounds Rect
}

func newGlyphOutline(gid GlyphID, segments []OutlineSegment) *GlyphOutline {
	return &GlyphOutline{
		GID:      gid,
		Segments: segments,
		Bounds:   controlBounds(segments),
	}
}

// IsEmpty reports whether the outline draws nothing. Nil outlines and
// outlines made only of MoveTo commands are empty.
func (o *GlyphOutline) IsEmpty() bool {
	if o == nil {
		return true
	}
	for _, seg := range o.Segments {
		if seg.Op != OutlineOpMoveTo {
			return false
		}
	}
	return true
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float64) *GlyphOutline {
	if o == nil {
		return nil
	}
	d := Pt(dx, dy)
	moved := make([]OutlineSegment, len(o.Segments))
	for i, seg := range o.Segments {
		moved[i].Op = seg.Op
		for j := range seg.Op.pointCount() {
			moved[i].Points[j] = seg.Points[j].Add(d)
		}
	}
	return &GlyphOutline{GID: o.GID, Segments: moved, Bounds: o.Bounds.Add(d)}
}

// controlBounds returns the box around all points used by segments.
func controlBounds(segments []OutlineSegment) Rect {
	if len(segments) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, seg := range segments {
		for _, p := range seg.Points[:seg.Op.pointCount()] {
			r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
			r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)
		}
	}
	return r
}
