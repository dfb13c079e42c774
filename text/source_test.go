package text

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testSource creates a FontSource over the Go Regular font.
func testSource(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewFontSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		opts    []SourceOption
		wantErr error
	}{
		{"empty data", nil, nil, ErrEmptyFontData},
		{"unknown parser", goregular.TTF, []SourceOption{WithParser("nope")}, ErrUnknownParser},
		{"garbage", []byte("not a font at all"), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontSource(tt.data, tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if !source.HasGlyph('A') {
		t.Error("expected glyph for 'A'")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFontSource_Name(t *testing.T) {
	if got := testSource(t).Name(); got == "" || got == "Unknown Font" {
		t.Errorf("ximage Name() = %q, want the family name", got)
	}
	if got := testSource(t, WithParser("gotext")).Name(); got != "Unknown Font" {
		t.Errorf("gotext Name() = %q, want placeholder", got)
	}
}

func TestFontSource_ScaleIsLineHeight(t *testing.T) {
	for _, parser := range []string{"ximage", "gotext"} {
		t.Run(parser, func(t *testing.T) {
			source := testSource(t, WithParser(parser))
			for _, scale := range []float64{12, 32, 64} {
				m := source.Metrics(scale)
				if math.Abs(m.Height()-scale) > 0.1 {
					t.Errorf("scale %v: ascent-descent = %v", scale, m.Height())
				}
				if m.Ascent <= 0 || m.Descent >= 0 {
					t.Errorf("scale %v: unexpected metrics %+v", scale, m)
				}
			}
		})
	}
}

func TestFontSource_HasGlyph(t *testing.T) {
	source := testSource(t)
	if !source.HasGlyph('A') {
		t.Error("expected glyph for 'A'")
	}
	if source.HasGlyph('一') {
		t.Error("Go Regular should not cover CJK")
	}
}

func TestFontSource_CopyPanics(t *testing.T) {
	source := testSource(t)
	copied := *source

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	copied.Name()
}

func TestSplitSubpixel(t *testing.T) {
	tests := []struct {
		v     float64
		wantI int
		wantF uint8
	}{
		{0, 0, 0},
		{1.5, 1, 32},
		{-0.25, -1, 48},
		{2.999, 3, 0},
	}
	for _, tt := range tests {
		i, f := splitSubpixel(tt.v)
		if i != tt.wantI || f != tt.wantF {
			t.Errorf("splitSubpixel(%v) = %d, %d; want %d, %d", tt.v, i, f, tt.wantI, tt.wantF)
		}
	}
}

func TestFontSource_GlyphCache(t *testing.T) {
	source := testSource(t, WithCacheLimit(8))

	for range 3 {
		AppendLayout(nil, source, "AAA", 24, Pt(0, 0), LayoutOptions{})
	}

	stats := source.CacheStats()
	if stats.Hits == 0 {
		t.Error("expected repeated glyphs to hit the mask cache")
	}
	if stats.Len > 8 {
		t.Errorf("cache Len = %d exceeds limit 8", stats.Len)
	}
}
