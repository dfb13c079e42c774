package siimg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is the fallback color for text whose color cannot be parsed.
var Black = RGB{}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// ParseHex parses a CSS-style hex color.
// Supports formats: "RRGGBB" and "RGB", with or without a leading '#'.
// In the short form each digit is doubled, so "abc" is "aabbcc".
//
// A string of any other length yields Black and a nil error. A string of
// the right length with a non-hex digit yields a *ParseError.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Black, &ParseError{Input: s, Err: err}
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Black, &ParseError{Input: s, Err: err}
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
	default:
		return Black, nil
	}
}

// resolveColor parses hex for rendering. Empty and malformed strings fall
// back to Black; a malformed string is logged.
func resolveColor(hex string) RGB {
	if hex == "" {
		return Black
	}
	c, err := ParseHex(hex)
	if err != nil {
		Logger().Warn("siimg: invalid text color, using black", "color", hex, "err", err)
		return Black
	}
	return c
}
