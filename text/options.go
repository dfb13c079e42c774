package text

// SourceOption tunes a FontSource at creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	cacheLimit int
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 1024,
		parserName: defaultParserName,
	}
}

// WithCacheLimit sets the maximum number of rasterized glyph masks kept
// by the source. Values <= 0 select the cache default.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser picks the parser backend by name.
// Built in: "ximage" (golang.org/x/image/font/sfnt, the default) and
// "gotext" (github.com/go-text/typesetting).
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// LayoutOptions controls glyph placement.
type LayoutOptions struct {
	// LetterSpacing is added after each glyph's pixel width.
	LetterSpacing float64

	// SpaceWidth is the advance used for every whitespace rune.
	SpaceWidth float64

	// Normalize applies Unicode NFC before layout so that combining
	// sequences map to precomposed glyphs when the font has them.
	Normalize bool
}

// DefaultLayoutOptions returns letter spacing 2 and space width 10.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		LetterSpacing: 2,
		SpaceWidth:    10,
	}
}
