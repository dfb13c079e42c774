package siimg

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zype-z/siimg/fetch"
	"github.com/zype-z/siimg/text"
)

// LoadFont parses TrueType or OpenType data into a Font.
// The data is copied and may be reused after the call. Parser failures
// are reported as *FontParseError.
func LoadFont(data []byte, opts ...text.SourceOption) (Font, error) {
	src, err := text.NewFontSource(data, opts...)
	if err != nil {
		return Font{}, &FontParseError{Err: err}
	}
	return Font{src: src}, nil
}

// LoadFontFile reads and parses the font file at path.
func LoadFontFile(path string, opts ...text.SourceOption) (Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Font{}, fmt.Errorf("siimg: failed to read font file: %w", err)
	}
	return LoadFont(data, opts...)
}

// LoadImageFile is an alias for LoadFile.
func LoadImageFile(path string) (Image, error) {
	return LoadFile(path)
}

// FetchFont downloads and parses a font.
// Download failures are returned as *fetch.Error.
func FetchFont(ctx context.Context, f fetch.Fetcher, url string, opts ...text.SourceOption) (Font, error) {
	data, err := fetchBytes(ctx, f, url)
	if err != nil {
		return Font{}, err
	}
	return LoadFont(data, opts...)
}

// FetchImage downloads and decodes an image.
// Download failures are returned as *fetch.Error.
func FetchImage(ctx context.Context, f fetch.Fetcher, url string) (Image, error) {
	data, err := fetchBytes(ctx, f, url)
	if err != nil {
		return Image{}, err
	}
	return Decode(data)
}

// FetchFontAsync runs FetchFont in the background. Exactly one result is
// delivered on the returned channel.
func FetchFontAsync(ctx context.Context, f fetch.Fetcher, url string, opts ...text.SourceOption) <-chan fetch.Result[Font] {
	return fetch.Go(ctx, func(ctx context.Context) (Font, error) {
		return FetchFont(ctx, f, url, opts...)
	})
}

// FetchImageAsync runs FetchImage in the background. Exactly one result
// is delivered on the returned channel.
func FetchImageAsync(ctx context.Context, f fetch.Fetcher, url string) <-chan fetch.Result[Image] {
	return fetch.Go(ctx, func(ctx context.Context) (Image, error) {
		return FetchImage(ctx, f, url)
	})
}

// fetchBytes calls f and makes sure failures carry the URL.
func fetchBytes(ctx context.Context, f fetch.Fetcher, url string) ([]byte, error) {
	if f == nil {
		f = fetch.NewHTTP()
	}
	data, err := f.Fetch(ctx, url)
	if err != nil {
		var fe *fetch.Error
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, &fetch.Error{URL: url, Err: err}
	}
	return data, nil
}
