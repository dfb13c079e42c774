package siimg

import (
	"image"
	"iter"
	"math"

	"github.com/zype-z/siimg/text"
)

// composite blends each glyph's coverage mask onto dst in color c.
//
// For a mask pixel with coverage a > 0 every color channel becomes
// round(c*a + p*(1-a)) where p is the existing pixel, and alpha becomes
// fully opaque. Pixels outside dst are skipped. Glyphs are applied in
// sequence order, so later glyphs blend over earlier ones.
func composite(dst *image.NRGBA, glyphs iter.Seq[text.Glyph], c RGB) {
	bounds := dst.Bounds()
	for g := range glyphs {
		area := g.Bounds.Intersect(bounds)
		if area.Empty() {
			continue
		}
		for y := area.Min.Y; y < area.Max.Y; y++ {
			dy := y - g.Bounds.Min.Y
			for x := area.Min.X; x < area.Max.X; x++ {
				a := g.Coverage(x-g.Bounds.Min.X, dy)
				if a <= 0 {
					continue
				}
				i := dst.PixOffset(x, y)
				p := dst.Pix[i : i+4 : i+4]
				p[0] = blend(c.R, p[0], a)
				p[1] = blend(c.G, p[1], a)
				p[2] = blend(c.B, p[2], a)
				p[3] = 0xff
			}
		}
	}
}

// blend mixes src over dst with coverage a in [0, 1].
func blend(src, dst uint8, a float64) uint8 {
	v := math.Round(float64(src)*a + float64(dst)*(1-a))
	return uint8(math.Min(math.Max(v, 0), 255))
}
