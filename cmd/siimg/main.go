// Command siimg renders a card: it draws a preset template onto a base
// image and writes the result as PNG.
//
//	siimg -base bg.png -font Inter.ttf -template card.json \
//		-set title="Hello, world" -set logo=https://example.com/logo.png \
//		-out card.png
//
// Without -template a single line of text is drawn using -text, -scale,
// -x, -y and -color. Images and fonts may be given as file paths or
// http(s) URLs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zype-z/siimg"
	"github.com/zype-z/siimg/fetch"
)

// setFlags collects repeated -set key=value flags.
type setFlags map[string]string

func (s setFlags) String() string {
	pairs := make([]string, 0, len(s))
	for k, v := range s {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (s setFlags) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	s[key] = value
	return nil
}

func main() {
	sets := setFlags{}
	var (
		base     = flag.String("base", "", "base image file or URL (blank canvas if empty)")
		width    = flag.Int("width", 1200, "canvas width when no base image is given")
		height   = flag.Int("height", 630, "canvas height when no base image is given")
		bg       = flag.String("bg", "#ffffff", "canvas color when no base image is given")
		fontSrc  = flag.String("font", "", "font file or URL (Go Regular if empty)")
		parser   = flag.String("parser", "ximage", "font parser backend: ximage or gotext")
		tmplPath = flag.String("template", "", "preset template JSON file")
		txt      = flag.String("text", "", "text to draw without a template")
		scale    = flag.Float64("scale", 64, "text pixel height without a template")
		x        = flag.Float64("x", 40, "text x without a template")
		y        = flag.Float64("y", 40, "text y without a template")
		color    = flag.String("color", "#000000", "text color without a template")
		output   = flag.String("out", "out.png", "output PNG file")
		redis    = flag.String("redis", "", "Redis address for caching downloads")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall timeout")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Var(sets, "set", "template parameter as key=value (repeatable)")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	siimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	l := &loader{fetcher: newFetcher(ctx, *redis), parser: *parser}

	img, err := l.base(ctx, *base, *width, *height, *bg)
	if err != nil {
		log.Fatalf("Failed to load base image: %v", err)
	}

	font, err := l.font(ctx, *fontSrc)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	if *tmplPath == "" {
		img = img.Text(*txt, *scale, *x, *y, *color, font, siimg.DefaultTextOptions())
	} else {
		tmpl, err := siimg.LoadTemplate(*tmplPath)
		if err != nil {
			log.Fatalf("Failed to load template: %v", err)
		}
		preset, err := tmpl.Preset()
		if err != nil {
			log.Fatalf("Invalid template: %v", err)
		}
		bag, err := l.bag(ctx, preset.Params(), sets, font)
		if err != nil {
			log.Fatalf("Invalid parameters: %v", err)
		}
		if img, err = img.ApplyPreset(preset, bag); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	if err := img.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d)\n", *output, img.Width(), img.Height())
}

// newFetcher returns an HTTP fetcher cached in Redis when addr is set,
// in memory otherwise.
func newFetcher(ctx context.Context, addr string) fetch.Fetcher {
	var store fetch.Store = fetch.NewMemoryStore(0)
	if addr != "" {
		rs, err := fetch.DialRedis(ctx, addr, os.Getenv("SIIMG_REDIS_PASSWORD"), 0)
		if err != nil {
			log.Printf("Redis unavailable, caching in memory: %v", err)
		} else {
			store = rs
		}
	}
	return fetch.Cached{
		Fetcher: fetch.NewHTTP(fetch.WithUserAgent("siimg-cli")),
		Store:   store,
		TTL:     24 * time.Hour,
	}
}
