// Package text loads fonts and lays text out as positioned, rasterized
// glyphs ready to be blended into an image.
//
// The pipeline has three parts:
//
//   - FontSource: heavyweight, shared font resource. It parses TTF/OTF
//     data through a pluggable FontParser and caches rasterized glyphs.
//   - Layout: walks a string and yields one Glyph per drawable rune,
//     advancing the pen by glyph width plus letter spacing.
//   - Glyph: a pixel bounding box and an alpha coverage mask.
//
// # Example usage
//
//	source, err := text.NewFontSource(ttf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for g := range text.Layout(source, "Hello", 32, text.Pt(10, 10), text.DefaultLayoutOptions()) {
//	    for dy := range g.Height() {
//	        for dx := range g.Width() {
//	            a := g.Coverage(dx, dy)
//	            // blend into g.Bounds.Min.Add(image.Pt(dx, dy))
//	        }
//	    }
//	}
//
// # Pluggable Parser Backend
//
// By default golang.org/x/image/font/sfnt is used. The go-text/typesetting
// backend is available as "gotext", and custom parsers can be registered:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
