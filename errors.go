package siimg

import (
	"errors"
	"fmt"
)

// Sentinel errors for siimg package.
var (
	// ErrEmptyImage is returned when an image is decoded from empty data.
	ErrEmptyImage = errors.New("siimg: empty image data")

	// ErrNilFont is returned when a template or preset renders text
	// with a zero Font.
	ErrNilFont = errors.New("siimg: font not loaded")
)

// ParseError reports a color string with invalid hex digits.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("siimg: invalid hex color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DecodeError reports image data that no registered codec recognizes.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "siimg: decode image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FontParseError reports font data the parser backend rejected.
type FontParseError struct {
	Err error
}

func (e *FontParseError) Error() string {
	return "siimg: parse font: " + e.Err.Error()
}

func (e *FontParseError) Unwrap() error { return e.Err }

// MissingParameterError is returned when a preset is applied to a bag
// that lacks one of its declared parameters.
type MissingParameterError struct {
	Preset string
	Name   string
}

func (e *MissingParameterError) Error() string {
	if e.Preset == "" {
		return fmt.Sprintf("siimg: missing parameter %q", e.Name)
	}
	return fmt.Sprintf("siimg: preset %q: missing parameter %q", e.Preset, e.Name)
}

// TypeMismatchError is returned when a bag entry holds a different kind
// of value than the preset declares.
type TypeMismatchError struct {
	Preset   string
	Name     string
	Expected Kind
	Found    Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Preset == "" {
		return fmt.Sprintf("siimg: parameter %q: expected %s, found %s", e.Name, e.Expected, e.Found)
	}
	return fmt.Sprintf("siimg: preset %q: parameter %q: expected %s, found %s",
		e.Preset, e.Name, e.Expected, e.Found)
}
