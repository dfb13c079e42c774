package text

import (
	"bytes"
	"image"
	"testing"
)

func square(x0, y0, x1, y1 float64) *GlyphOutline {
	seg := func(op OutlineOp, x, y float64) OutlineSegment {
		return OutlineSegment{Op: op, Points: [3]OutlinePoint{{X: x, Y: y}}}
	}
	return newGlyphOutline(1, []OutlineSegment{
		seg(OutlineOpMoveTo, x0, y0),
		seg(OutlineOpLineTo, x1, y0),
		seg(OutlineOpLineTo, x1, y1),
		seg(OutlineOpLineTo, x0, y1),
	})
}

func TestRasterize_Square(t *testing.T) {
	mask := Rasterize(square(0, 0, 4, 4), 2, 3)
	if mask == nil {
		t.Fatal("expected a mask")
	}
	if want := image.Rect(2, 3, 6, 7); mask.Rect != want {
		t.Fatalf("mask.Rect = %v, want %v", mask.Rect, want)
	}
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			if a := mask.AlphaAt(x, y).A; a < 0xfe {
				t.Errorf("coverage at (%d,%d) = %d, want full", x, y, a)
			}
		}
	}
}

func TestRasterize_FractionalOffset(t *testing.T) {
	mask := Rasterize(square(0, 0, 4, 4), 0.5, 0)
	if mask == nil {
		t.Fatal("expected a mask")
	}
	if want := image.Rect(0, 0, 5, 4); mask.Rect != want {
		t.Fatalf("mask.Rect = %v, want %v", mask.Rect, want)
	}
	edge := mask.AlphaAt(0, 1).A
	if edge < 0x70 || edge > 0x90 {
		t.Errorf("half-covered edge = %d, want about 0x80", edge)
	}
	if a := mask.AlphaAt(2, 1).A; a < 0xfe {
		t.Errorf("interior coverage = %d, want full", a)
	}
}

func TestRasterize_Empty(t *testing.T) {
	tests := []struct {
		name    string
		outline *GlyphOutline
	}{
		{"nil", nil},
		{"no segments", newGlyphOutline(1, nil)},
		{"move only", newGlyphOutline(1, []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: 1, Y: 1}}},
		})},
		{"degenerate", square(2, 2, 2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if mask := Rasterize(tt.outline, 0, 0); mask != nil {
				t.Errorf("expected nil mask, got %v", mask.Rect)
			}
		})
	}
}

func TestGlyphOutline_Translate(t *testing.T) {
	o := square(0, 0, 2, 3).Translate(10, -1)
	want := Rect{Min: Pt(10, -1), Max: Pt(12, 2)}
	if o.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", o.Bounds, want)
	}
	if p := o.Segments[2].Points[0]; p != (OutlinePoint{X: 12, Y: 2}) {
		t.Errorf("third point = %+v", p)
	}
	if (*GlyphOutline)(nil).Translate(1, 1) != nil {
		t.Error("nil outline must translate to nil")
	}
}

func TestOutlineOp_String(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestRasterize_OffsetMatchesTranslate(t *testing.T) {
	o := square(0.25, -1.5, 3.75, 2)
	offset := Rasterize(o, 7.5, 4.25)
	moved := Rasterize(o.Translate(7.5, 4.25), 0, 0)
	if offset == nil || moved == nil {
		t.Fatal("expected masks for a non-empty square")
	}
	if offset.Rect != moved.Rect {
		t.Fatalf("Rect = %v, want %v", offset.Rect, moved.Rect)
	}
	if !bytes.Equal(offset.Pix, moved.Pix) {
		t.Error("coverage differs between an offset and a pre-translated outline")
	}
	if o.Bounds != (Rect{Min: Pt(0.25, -1.5), Max: Pt(3.75, 2)}) {
		t.Errorf("Rasterize mutated the outline: bounds %v", o.Bounds)
	}
}
