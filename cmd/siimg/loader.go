package main

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/zype-z/siimg"
	"github.com/zype-z/siimg/fetch"
	"github.com/zype-z/siimg/text"
)

// loader resolves command line sources, which are file paths or URLs.
type loader struct {
	fetcher fetch.Fetcher
	parser  string
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func (l *loader) base(ctx context.Context, src string, w, h int, bg string) (siimg.Image, error) {
	if src == "" {
		c, err := siimg.ParseHex(bg)
		if err != nil {
			return siimg.Image{}, err
		}
		return siimg.New(w, h, c), nil
	}
	return l.image(ctx, src)
}

func (l *loader) image(ctx context.Context, src string) (siimg.Image, error) {
	if isURL(src) {
		return siimg.FetchImage(ctx, l.fetcher, src)
	}
	return siimg.LoadImageFile(src)
}

func (l *loader) font(ctx context.Context, src string) (siimg.Font, error) {
	opt := text.WithParser(l.parser)
	switch {
	case src == "":
		return siimg.LoadFont(goregular.TTF, opt)
	case isURL(src):
		return siimg.FetchFont(ctx, l.fetcher, src, opt)
	default:
		return siimg.LoadFontFile(src, opt)
	}
}

// bag builds the preset parameters from -set flags. Font parameters
// without a -set value receive the -font font; image and font values
// are loaded from the given path or URL.
func (l *loader) bag(ctx context.Context, params []siimg.Param, sets map[string]string, font siimg.Font) (siimg.Bag, error) {
	bag := siimg.NewBag()
	for _, p := range params {
		raw, ok := sets[p.Name]
		switch {
		case !ok && p.Kind == siimg.KindFont:
			bag.With(p.Name, siimg.FontValue(font))
		case !ok:
			// Left for ApplyPreset to report.
		case p.Kind == siimg.KindFont:
			f, err := l.font(ctx, raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name, err)
			}
			bag.With(p.Name, siimg.FontValue(f))
		case p.Kind == siimg.KindImage:
			img, err := l.image(ctx, raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name, err)
			}
			bag.With(p.Name, siimg.ImageValue(img))
		default:
			v, err := siimg.ParseValue(p.Kind, raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name, err)
			}
			bag.With(p.Name, v)
		}
	}
	return bag, nil
}
