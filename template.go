package siimg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Template is a declarative preset: a list of layers drawn in order,
// reading their dynamic parts from the Bag. Templates are usually stored
// as JSON:
//
//	{
//	  "name": "card",
//	  "params": [
//	    {"name": "title", "kind": "text"},
//	    {"name": "font", "kind": "font"},
//	    {"name": "logo", "kind": "image"}
//	  ],
//	  "layers": [
//	    {"type": "image", "param": "logo", "x": 40, "y": 40, "width": 96, "height": 96},
//	    {"type": "text", "param": "title", "font": "font", "scale": 64, "x": 40, "y": 180, "color": "#ffffff"}
//	  ]
//	}
type Template struct {
	Name   string  `json:"name"`
	Params []Param `json:"params"`
	Layers []Layer `json:"layers"`
}

// LayerType selects what a Layer draws.
type LayerType string

// Layer types.
const (
	LayerText  LayerType = "text"
	LayerImage LayerType = "image"
)

// Layer is one drawing step of a Template.
type Layer struct {
	Type LayerType `json:"type"`

	// Text is the literal string drawn by a text layer. Param, when set,
	// names a text parameter that takes precedence.
	Text  string `json:"text,omitempty"`
	Param string `json:"param,omitempty"`

	// Font names the font parameter of a text layer.
	Font string `json:"font,omitempty"`

	Scale float64 `json:"scale,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`

	// Color is a literal hex color; ColorParam names a color parameter
	// that takes precedence.
	Color      string `json:"color,omitempty"`
	ColorParam string `json:"colorParam,omitempty"`

	// LetterSpacing and SpaceWidth override DefaultTextOptions when set.
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	SpaceWidth    *float64 `json:"spaceWidth,omitempty"`

	// Width and Height resize an image layer before it is drawn. Set both
	// or neither.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Param JSON form: {"name": "title", "kind": "text"}.
type paramJSON struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// MarshalJSON implements json.Marshaler.
func (p Param) MarshalJSON() ([]byte, error) {
	return json.Marshal(paramJSON(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Param) UnmarshalJSON(b []byte) error {
	var v paramJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Param(v)
	return nil
}

// ParseTemplate decodes a JSON template and checks it for consistency.
// Unknown fields are rejected.
func ParseTemplate(data []byte) (*Template, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var t Template
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("siimg: parse template: %w", err)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTemplate reads and parses the JSON template at path.
func LoadTemplate(path string) (*Template, error) {
	// #nosec G304 -- Template path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("siimg: failed to read template: %w", err)
	}
	return ParseTemplate(data)
}

// Preset compiles the template into a Preset. Every parameter a layer
// refers to must be declared with a matching kind.
func (t *Template) Preset() (*Preset, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	layers := append([]Layer(nil), t.Layers...)
	return DefinePreset(t.Name, func(img Image, bag Bag) (Image, error) {
		var err error
		for i, l := range layers {
			img, err = l.draw(img, bag)
			if err != nil {
				return img, fmt.Errorf("layer %d: %w", i, err)
			}
		}
		return img, nil
	}, t.Params...), nil
}

// check verifies that layer references match the declared parameters.
func (t *Template) check() error {
	if t.Name == "" {
		return errors.New("siimg: template has no name")
	}
	kinds := make(map[string]Kind, len(t.Params))
	for _, p := range t.Params {
		if p.Name == "" || p.Kind == KindInvalid {
			return fmt.Errorf("siimg: template %q: invalid parameter %+v", t.Name, p)
		}
		if _, dup := kinds[p.Name]; dup {
			return fmt.Errorf("siimg: template %q: duplicate parameter %q", t.Name, p.Name)
		}
		kinds[p.Name] = p.Kind
	}

	ref := func(i int, name string, want Kind) error {
		if name == "" {
			return nil
		}
		got, ok := kinds[name]
		if !ok {
			return fmt.Errorf("siimg: template %q: layer %d uses undeclared parameter %q", t.Name, i, name)
		}
		if got != want {
			return fmt.Errorf("siimg: template %q: layer %d uses %s parameter %q as %s", t.Name, i, got, name, want)
		}
		return nil
	}

	for i, l := range t.Layers {
		switch l.Type {
		case LayerText:
			if l.Font == "" {
				return fmt.Errorf("siimg: template %q: text layer %d has no font", t.Name, i)
			}
			if err := errors.Join(
				ref(i, l.Param, KindText),
				ref(i, l.Font, KindFont),
				ref(i, l.ColorParam, KindColor),
			); err != nil {
				return err
			}
		case LayerImage:
			if l.Param == "" {
				return fmt.Errorf("siimg: template %q: image layer %d has no param", t.Name, i)
			}
			if err := ref(i, l.Param, KindImage); err != nil {
				return err
			}
			if l.Width < 0 || l.Height < 0 || (l.Width == 0) != (l.Height == 0) {
				return fmt.Errorf("siimg: template %q: image layer %d has invalid size %dx%d", t.Name, i, l.Width, l.Height)
			}
		default:
			return fmt.Errorf("siimg: template %q: layer %d has unknown type %q", t.Name, i, l.Type)
		}
	}
	return nil
}

func (l Layer) draw(img Image, bag Bag) (Image, error) {
	switch l.Type {
	case LayerImage:
		src, err := bag.Image(l.Param)
		if err != nil {
			return img, err
		}
		if l.Width > 0 {
			src = src.Resize(l.Width, l.Height)
		}
		return img.Overlay(src, int(l.X), int(l.Y)), nil

	case LayerText:
		s := l.Text
		if l.Param != "" {
			var err error
			if s, err = bag.Text(l.Param); err != nil {
				return img, err
			}
		}
		font, err := bag.Font(l.Font)
		if err != nil {
			return img, err
		}
		if font.IsZero() {
			return img, ErrNilFont
		}
		hex := l.Color
		if l.ColorParam != "" {
			c, err := bag.Color(l.ColorParam)
			if err != nil {
				return img, err
			}
			hex = c.Hex()
		}
		opts := DefaultTextOptions()
		if l.LetterSpacing != nil {
			opts.LetterSpacing = *l.LetterSpacing
		}
		if l.SpaceWidth != nil {
			opts.SpaceWidth = *l.SpaceWidth
		}
		return img.Text(s, l.Scale, l.X, l.Y, hex, font, opts), nil
	}
	return img, fmt.Errorf("siimg: unknown layer type %q", l.Type)
}
