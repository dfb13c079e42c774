package siimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/zype-z/siimg/internal/codec"
	"github.com/zype-z/siimg/text"
)

// Image is an immutable raster image.
//
// Every operation returns a new Image and leaves the receiver untouched,
// so calls chain:
//
//	card := base.Resize(1200, 630).
//		Overlay(logo, 40, 40).
//		Text("Hello", 64, 40, 200, "#fff", font, siimg.DefaultTextOptions())
//
// The zero Image is empty (0x0).
type Image struct {
	buf *image.NRGBA
}

// Decode decodes an encoded image. PNG, JPEG, GIF, WebP, BMP and TIFF are
// recognized. Failures are reported as *DecodeError.
func Decode(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, &DecodeError{Err: ErrEmptyImage}
	}
	buf, format, err := codec.Decode(data)
	if err != nil {
		return Image{}, &DecodeError{Err: err}
	}
	Logger().Debug("siimg: image decoded", "format", format,
		"width", buf.Rect.Dx(), "height", buf.Rect.Dy())
	return Image{buf: buf}, nil
}

// DecodeReader decodes an encoded image read from r.
func DecodeReader(r io.Reader) (Image, error) {
	buf, _, err := codec.DecodeReader(r)
	if err != nil {
		return Image{}, &DecodeError{Err: err}
	}
	return Image{buf: buf}, nil
}

// LoadFile decodes the image file at path.
func LoadFile(path string) (Image, error) {
	// #nosec G304 -- Image file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("siimg: failed to read image file: %w", err)
	}
	return Decode(data)
}

// New creates a width x height image filled with bg.
// A nil bg leaves the image fully transparent.
func New(width, height int, bg color.Color) Image {
	buf := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if bg != nil {
		draw.Draw(buf, buf.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return Image{buf: buf}
}

// FromImage copies img into a new Image with its origin at (0, 0).
func FromImage(img image.Image) Image {
	return Image{buf: codec.ToNRGBA(img)}
}

// Width returns the image width in pixels.
func (m Image) Width() int {
	if m.buf == nil {
		return 0
	}
	return m.buf.Rect.Dx()
}

// Height returns the image height in pixels.
func (m Image) Height() int {
	if m.buf == nil {
		return 0
	}
	return m.buf.Rect.Dy()
}

// Bounds returns the image rectangle, which always starts at (0, 0).
func (m Image) Bounds() image.Rectangle {
	if m.buf == nil {
		return image.Rectangle{}
	}
	return m.buf.Rect
}

// At returns the pixel at (x, y), or transparent black outside the image.
func (m Image) At(x, y int) color.NRGBA {
	if m.buf == nil || !image.Pt(x, y).In(m.buf.Rect) {
		return color.NRGBA{}
	}
	return m.buf.NRGBAAt(x, y)
}

// Std returns a copy of the pixels as a standard library image.
func (m Image) Std() *image.NRGBA {
	return m.clone()
}

// Text draws s in one line with the top of the line box at (x, y).
//
// scale is the font's pixel height. hex is a color accepted by ParseHex;
// an empty or malformed color draws in black. Glyphs missing from f are
// skipped and whitespace advances by opts.SpaceWidth. Pixels falling
// outside the image are clipped.
func (m Image) Text(s string, scale, x, y float64, hex string, f Font, opts TextOptions) Image {
	out := m.clone()
	c := resolveColor(hex)
	composite(out, text.Layout(f.src, s, scale, text.Pt(x, y), opts.layout()), c)

	if f.src != nil {
		stats := f.src.CacheStats()
		Logger().Debug("siimg: text drawn",
			"runes", len([]rune(s)), "scale", scale, "color", c.Hex(),
			"cache_len", stats.Len, "cache_hit_rate", stats.HitRate)
	}
	return Image{buf: out}
}

// Overlay draws src over the image with its top-left corner at (x, y).
// Offsets may be negative; the parts of src outside the image are clipped.
func (m Image) Overlay(src Image, x, y int) Image {
	out := m.clone()
	if src.buf != nil {
		codec.Overlay(out, src.buf, x, y)
	}
	return Image{buf: out}
}

// Resize returns the image resampled to exactly width x height with a
// bilinear filter. A non-positive dimension returns the image unchanged.
func (m Image) Resize(width, height int) Image {
	if m.buf == nil || m.buf.Rect.Empty() {
		return New(width, height, nil)
	}
	buf, err := codec.Resize(m.buf, width, height)
	if err != nil {
		Logger().Warn("siimg: resize skipped", "width", width, "height", height, "err", err)
		return m
	}
	return Image{buf: buf}
}

// Bytes returns the image encoded as PNG.
func (m Image) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG writes the image to w as PNG.
func (m Image) EncodePNG(w io.Writer) error {
	return codec.EncodePNG(w, m.std())
}

// SavePNG writes the image to a PNG file at path.
func (m Image) SavePNG(path string) error {
	// #nosec G304 -- Output path is provided by the user
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("siimg: create %s: %w", path, err)
	}
	if err := m.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// std returns the buffer without copying. Callers must not modify it.
func (m Image) std() *image.NRGBA {
	if m.buf == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	return m.buf
}

func (m Image) clone() *image.NRGBA {
	return codec.Clone(m.std())
}
