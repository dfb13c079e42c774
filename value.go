package siimg

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the type of value held in a Bag.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindText
	KindNumber
	KindBool
	KindColor
	KindFont
	KindImage
	KindOptions
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindText:    "text",
	KindNumber:  "number",
	KindBool:    "bool",
	KindColor:   "color",
	KindFont:    "font",
	KindImage:   "image",
	KindOptions: "options",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the kind named s, as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != int(KindInvalid) && strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("siimg: unknown value kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Value is one runtime-typed entry of a Bag. Build values with the
// TextValue, NumberValue, ... constructors; the zero Value is invalid.
type Value struct {
	kind Kind
	val  any
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// Any returns the held value as an interface.
func (v Value) Any() any { return v.val }

// String implements fmt.Stringer.
func (v Value) String() string {
	switch x := v.val.(type) {
	case Font:
		return fmt.Sprintf("font(%s)", x.Name())
	case Image:
		return fmt.Sprintf("image(%dx%d)", x.Width(), x.Height())
	default:
		return fmt.Sprintf("%s(%v)", v.kind, x)
	}
}

// TextValue wraps a string.
func TextValue(s string) Value { return Value{kind: KindText, val: s} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, val: n} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, val: b} }

// ColorValue wraps a color.
func ColorValue(c RGB) Value { return Value{kind: KindColor, val: c} }

// FontValue wraps a font.
func FontValue(f Font) Value { return Value{kind: KindFont, val: f} }

// ImageValue wraps an image.
func ImageValue(img Image) Value { return Value{kind: KindImage, val: img} }

// OptionsValue wraps text options.
func OptionsValue(o TextOptions) Value { return Value{kind: KindOptions, val: o} }

// ParseValue parses s as a value of kind k. It accepts what a user would
// type on a command line: numbers, booleans, hex colors and plain text.
// Fonts, images and options cannot be parsed from a string.
func ParseValue(k Kind, s string) (Value, error) {
	switch k {
	case KindText:
		return TextValue(s), nil
	case KindNumber:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("siimg: parse number %q: %w", s, err)
		}
		return NumberValue(n), nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, fmt.Errorf("siimg: parse bool %q: %w", s, err)
		}
		return BoolValue(b), nil
	case KindColor:
		c, err := ParseHex(s)
		if err != nil {
			return Value{}, err
		}
		return ColorValue(c), nil
	default:
		return Value{}, fmt.Errorf("siimg: cannot parse %s value from a string", k)
	}
}

// Bag maps parameter names to runtime-typed values. A Bag is handed to a
// preset, which reads its parameters through the typed accessors.
//
// Example:
//
//	bag := siimg.NewBag().
//		With("title", siimg.TextValue("Hello")).
//		With("font", siimg.FontValue(font))
type Bag map[string]Value

// NewBag returns an empty bag.
func NewBag() Bag { return make(Bag) }

// With sets name to v and returns the bag for chaining.
// Calling With on a nil Bag allocates a new one.
func (b Bag) With(name string, v Value) Bag {
	if b == nil {
		b = make(Bag)
	}
	b[name] = v
	return b
}

// Lookup returns the value stored under name checked against kind k.
// It fails with *MissingParameterError or *TypeMismatchError.
func (b Bag) Lookup(name string, k Kind) (Value, error) {
	return b.lookup("", name, k)
}

func (b Bag) lookup(preset, name string, k Kind) (Value, error) {
	v, ok := b[name]
	if !ok {
		return Value{}, &MissingParameterError{Preset: preset, Name: name}
	}
	if v.kind != k {
		return Value{}, &TypeMismatchError{Preset: preset, Name: name, Expected: k, Found: v.kind}
	}
	return v, nil
}

// Text returns the string stored under name.
func (b Bag) Text(name string) (string, error) {
	return get[string](b, name, KindText)
}

// Number returns the number stored under name.
func (b Bag) Number(name string) (float64, error) {
	return get[float64](b, name, KindNumber)
}

// Bool returns the boolean stored under name.
func (b Bag) Bool(name string) (bool, error) {
	return get[bool](b, name, KindBool)
}

// Color returns the color stored under name.
func (b Bag) Color(name string) (RGB, error) {
	return get[RGB](b, name, KindColor)
}

// Font returns the font stored under name.
func (b Bag) Font(name string) (Font, error) {
	return get[Font](b, name, KindFont)
}

// Image returns the image stored under name.
func (b Bag) Image(name string) (Image, error) {
	return get[Image](b, name, KindImage)
}

// Options returns the text options stored under name.
func (b Bag) Options(name string) (TextOptions, error) {
	return get[TextOptions](b, name, KindOptions)
}

func get[T any](b Bag, name string, k Kind) (T, error) {
	var zero T
	v, err := b.Lookup(name, k)
	if err != nil {
		return zero, err
	}
	t, ok := v.val.(T)
	if !ok {
		return zero, &TypeMismatchError{Name: name, Expected: k, Found: v.kind}
	}
	return t, nil
}
