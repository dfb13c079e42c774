// Package siimg renders text and images onto a base image, producing a
// new image value after every operation. It is meant for generated
// graphics such as social cards and banners.
//
// # Quick Start
//
//	import "github.com/zype-z/siimg"
//
//	base, err := siimg.LoadFile("background.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	font, err := siimg.LoadFontFile("Inter-Bold.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	card := base.
//		Resize(1200, 630).
//		Text("Hello, world", 72, 60, 240, "#ffffff", font, siimg.DefaultTextOptions())
//
//	if err := card.SavePNG("card.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Images
//
// Image is immutable. Text, Overlay, Resize and ApplyPreset return a new
// Image and never modify the receiver, so an Image can be shared between
// goroutines and reused as the base of many renders.
//
// # Text
//
// Text is drawn on a single line without shaping: every rune maps to one
// glyph, whitespace advances by TextOptions.SpaceWidth and every glyph
// advances by its pixel width plus TextOptions.LetterSpacing. The scale
// argument is the pixel height of the font from ascent to descent, and
// (x, y) is the top-left corner of the line box. Runes missing from the
// font are skipped.
//
// Colors are CSS-style hex strings ("#rgb" or "#rrggbb"). A malformed
// color falls back to black and is logged at warn level.
//
// # Presets
//
// A Preset is a reusable render function that declares the parameters it
// reads from a Bag. ApplyPreset checks every declared parameter before
// calling the function and reports *MissingParameterError or
// *TypeMismatchError instead of rendering a half-finished image.
// Presets can also be written as JSON templates, see Template.
//
// # Logging
//
// siimg is silent by default. SetLogger installs a log/slog logger for
// siimg and its sub-packages.
package siimg
