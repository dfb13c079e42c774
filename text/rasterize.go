package text

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize renders outline, placed with its origin at (x, y), into an
// alpha coverage mask. The mask's Rect is the glyph's pixel bounding box in
// the same coordinate space: the outline bounds shifted by (x, y), with the
// minimum corner floored and the maximum corner ceiled.
//
// Returns nil if the outline draws nothing.
func Rasterize(outline *GlyphOutline, x, y float64) *image.Alpha {
	if outline.IsEmpty() {
		return nil
	}

	placed := outline.Translate(x, y)
	px := placed.Bounds.Pixels()
	if px.Empty() {
		return nil
	}
	minX, minY := px.Min.X, px.Min.Y

	// x/image/vector works in the positive quadrant, so points are
	// normalized against the mask's minimum corner.
	pt := func(p OutlinePoint) (float32, float32) {
		return float32(p.X - float64(minX)), float32(p.Y - float64(minY))
	}

	r := vector.NewRasterizer(px.Dx(), px.Dy())
	open := false
	for _, seg := range placed.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Points[0]))
			open = true
		case OutlineOpLineTo:
			r.LineTo(pt(seg.Points[0]))
		case OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			tx, ty := pt(seg.Points[1])
			r.QuadTo(cx, cy, tx, ty)
		case OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			tx, ty := pt(seg.Points[2])
			r.CubeTo(c1x, c1y, c2x, c2y, tx, ty)
		}
	}
	if open {
		r.ClosePath()
	}

	mask := image.NewAlpha(r.Bounds())
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Pt(minX, minY))
	return mask
}
