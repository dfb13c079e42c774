package siimg

import (
	"errors"
	"fmt"
	"slices"
)

// PresetFunc renders a preset onto img using the parameters in bag.
type PresetFunc func(img Image, bag Bag) (Image, error)

// Param declares one parameter a preset reads from its Bag.
type Param struct {
	Name string
	Kind Kind
}

// P is shorthand for Param{Name: name, Kind: kind}.
func P(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind}
}

// Preset is a named, reusable rendering recipe. A preset declares the
// parameters it needs; ApplyPreset checks them before running it.
type Preset struct {
	name   string
	params []Param
	fn     PresetFunc
}

// DefinePreset creates a preset named name that runs fn with the
// declared params.
//
// Example:
//
//	card := siimg.DefinePreset("card",
//		func(img siimg.Image, bag siimg.Bag) (siimg.Image, error) {
//			title, err := bag.Text("title")
//			if err != nil {
//				return img, err
//			}
//			font, err := bag.Font("font")
//			if err != nil {
//				return img, err
//			}
//			return img.Text(title, 64, 40, 40, "#fff", font, siimg.DefaultTextOptions()), nil
//		},
//		siimg.P("title", siimg.KindText),
//		siimg.P("font", siimg.KindFont),
//	)
//
// DefinePreset panics if fn is nil.
func DefinePreset(name string, fn PresetFunc, params ...Param) *Preset {
	if fn == nil {
		panic("siimg: DefinePreset with nil func")
	}
	return &Preset{
		name:   name,
		params: slices.Clone(params),
		fn:     fn,
	}
}

// Name returns the preset name.
func (p *Preset) Name() string { return p.name }

// Params returns a copy of the declared parameters.
func (p *Preset) Params() []Param { return slices.Clone(p.params) }

// Validate checks that bag holds every declared parameter with the
// declared kind. Extra entries are ignored.
func (p *Preset) Validate(bag Bag) error {
	for _, param := range p.params {
		if _, err := bag.lookup(p.name, param.Name, param.Kind); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPreset validates bag against p and, if every parameter is present
// with the right kind, runs p exactly once on a copy of the image.
//
// Parameter problems are reported as *MissingParameterError or
// *TypeMismatchError naming the preset. Errors returned by the preset
// function are wrapped with the preset name.
//
// ApplyPreset panics if p is nil.
func (m Image) ApplyPreset(p *Preset, bag Bag) (Image, error) {
	if p == nil {
		panic("siimg: ApplyPreset with nil preset")
	}
	if err := p.Validate(bag); err != nil {
		return m, err
	}

	Logger().Debug("siimg: applying preset", "preset", p.name, "params", len(p.params))

	out, err := p.fn(Image{buf: m.clone()}, bag)
	if err != nil {
		return m, p.annotate(err)
	}
	return out, nil
}

// annotate attaches the preset name to err. Parameter errors raised by
// the Bag accessors inside the preset function get the name filled in;
// anything else is wrapped.
func (p *Preset) annotate(err error) error {
	var missing *MissingParameterError
	if errors.As(err, &missing) && missing.Preset == "" {
		missing.Preset = p.name
		return err
	}
	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) && mismatch.Preset == "" {
		mismatch.Preset = p.name
		return err
	}
	return fmt.Errorf("siimg: preset %q: %w", p.name, err)
}
