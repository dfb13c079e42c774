package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned by NewFontSource when WithParser names
	// a backend that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")
)
