// Package codec is the image container collaborator: it decodes any
// registered format into an NRGBA buffer, encodes PNG and resamples.
//
// Decode, ToNRGBA, Clone and Resize return freshly allocated buffers with
// their origin at (0, 0). Overlay is the one function that writes into
// its dst argument.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec errors.
var (
	// ErrEmptyData is returned when there are no bytes to decode.
	ErrEmptyData = errors.New("codec: empty data")

	// ErrInvalidDimensions is returned when a resize target is not positive.
	ErrInvalidDimensions = errors.New("codec: invalid dimensions")
)

// Decode decodes an image container from data, auto-detecting the format.
// It returns the pixels as NRGBA and the registered format name.
func Decode(data []byte) (*image.NRGBA, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes an image container from r, auto-detecting the format.
func DecodeReader(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	return ToNRGBA(img), format, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("codec: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA copies img into a new NRGBA buffer whose bounds start at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	// Fast path: same pixel layout, copy rows.
	if src, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			srcStart := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[srcStart:srcStart+b.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of img.
func Clone(img *image.NRGBA) *image.NRGBA {
	dst := &image.NRGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(dst.Pix, img.Pix)
	return dst
}

// Resize resamples src to exactly width x height using a bilinear
// (triangle) filter.
func Resize(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Overlay composites src over dst with its top-left corner at (x, y).
// Offsets may be negative; anything outside dst is clipped. Where dst is
// fully transparent the source pixel is copied exactly.
func Overlay(dst *image.NRGBA, src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rectangle{
		Min: image.Pt(x, y),
		Max: image.Pt(x+sb.Dx(), y+sb.Dy()),
	}.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	sp := sb.Min.Add(r.Min.Sub(image.Pt(x, y)))

	var blank []image.Point
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			if dst.Pix[dst.PixOffset(px, py)+3] == 0 {
				blank = append(blank, image.Pt(px, py))
			}
		}
	}

	xdraw.Draw(dst, r, src, sp, xdraw.Over)

	// Over round-trips through premultiplied alpha, which is lossy for
	// translucent pixels.
	for _, p := range blank {
		s := sp.Add(p.Sub(r.Min))
		dst.SetNRGBA(p.X, p.Y, color.NRGBAModel.Convert(src.At(s.X, s.Y)).(color.NRGBA))
	}
}
