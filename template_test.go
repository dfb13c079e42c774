package siimg

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cardTemplate = `{
  "name": "card",
  "params": [
    {"name": "title", "kind": "text"},
    {"name": "font", "kind": "font"},
    {"name": "logo", "kind": "image"},
    {"name": "accent", "kind": "color"}
  ],
  "layers": [
    {"type": "image", "param": "logo", "x": 2, "y": 2, "width": 8, "height": 8},
    {"type": "text", "param": "title", "font": "font", "scale": 24, "x": 14, "y": 2, "colorParam": "accent"},
    {"type": "text", "text": "v1", "font": "font", "scale": 12, "x": 2, "y": 28, "color": "#000", "letterSpacing": 0}
  ]
}`

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(cardTemplate))
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	if tmpl.Name != "card" || len(tmpl.Params) != 4 || len(tmpl.Layers) != 3 {
		t.Fatalf("template = %+v", tmpl)
	}
	if tmpl.Params[3] != P("accent", KindColor) {
		t.Errorf("param 3 = %+v", tmpl.Params[3])
	}
	if ls := tmpl.Layers[2].LetterSpacing; ls == nil || *ls != 0 {
		t.Errorf("explicit zero letter spacing lost: %v", ls)
	}
	if tmpl.Layers[1].LetterSpacing != nil {
		t.Error("omitted letter spacing must stay nil")
	}
}

func TestTemplate_Preset(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(cardTemplate))
	if err != nil {
		t.Fatal(err)
	}
	p, err := tmpl.Preset()
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	base := New(120, 48, white)
	out, err := base.ApplyPreset(p, NewBag().
		With("title", TextValue("Hi")).
		With("font", FontValue(testFont(t))).
		With("logo", ImageValue(New(4, 4, red))).
		With("accent", ColorValue(RGB{0, 0, 255})))
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	if got := out.At(5, 5); got != red {
		t.Errorf("logo pixel = %v, want red", got)
	}
	if got := out.At(10, 5); got != white {
		t.Errorf("pixel right of the resized logo = %v, want white", got)
	}

	var blue bool
	for y := range 30 {
		for x := 14; x < 120; x++ {
			if p := out.At(x, y); p.B == 255 && p.R < 128 {
				blue = true
			}
		}
	}
	if !blue {
		t.Error("title was not drawn in the accent color")
	}

	_, err = base.ApplyPreset(p, NewBag().With("title", TextValue("x")))
	var missing *MissingParameterError
	if !errors.As(err, &missing) || missing.Preset != "card" {
		t.Errorf("err = %v, want missing parameter of card", err)
	}
}

func TestTemplate_ZeroFont(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`{"name": "t",
		"params": [{"name": "f", "kind": "font"}],
		"layers": [{"type": "text", "text": "x", "font": "f", "scale": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	p, err := tmpl.Preset()
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(4, 4, nil).ApplyPreset(p, NewBag().With("f", FontValue(Font{})))
	if !errors.Is(err, ErrNilFont) {
		t.Errorf("err = %v, want ErrNilFont", err)
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"syntax", `{"name":`, "parse template"},
		{"unknown field", `{"name": "x", "colour": "red"}`, "unknown field"},
		{"no name", `{"layers": []}`, "no name"},
		{"bad kind", `{"name": "x", "params": [{"name": "a", "kind": "shape"}]}`, "unknown value kind"},
		{"missing kind", `{"name": "x", "params": [{"name": "a"}]}`, "invalid parameter"},
		{"duplicate", `{"name": "x", "params": [{"name": "a", "kind": "text"}, {"name": "a", "kind": "text"}]}`, "duplicate"},
		{"undeclared", `{"name": "x", "params": [{"name": "f", "kind": "font"}],
			"layers": [{"type": "text", "param": "title", "font": "f"}]}`, "undeclared parameter \"title\""},
		{"wrong kind", `{"name": "x", "params": [{"name": "f", "kind": "text"}],
			"layers": [{"type": "text", "text": "a", "font": "f"}]}`, "uses text parameter \"f\" as font"},
		{"text without font", `{"name": "x", "layers": [{"type": "text", "text": "a"}]}`, "has no font"},
		{"image without param", `{"name": "x", "layers": [{"type": "image"}]}`, "has no param"},
		{"unknown layer", `{"name": "x", "layers": [{"type": "circle"}]}`, "unknown type"},
		{"width only", `{"name": "x", "params": [{"name": "logo", "kind": "image"}],
			"layers": [{"type": "image", "param": "logo", "width": 40}]}`, "invalid size 40x0"},
		{"height only", `{"name": "x", "params": [{"name": "logo", "kind": "image"}],
			"layers": [{"type": "image", "param": "logo", "height": 12}]}`, "invalid size 0x12"},
		{"negative size", `{"name": "x", "params": [{"name": "logo", "kind": "image"}],
			"layers": [{"type": "image", "param": "logo", "width": -4, "height": 4}]}`, "invalid size -4x4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	if err := os.WriteFile(path, []byte(cardTemplate), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplate(path); err != nil {
		t.Errorf("LoadTemplate: %v", err)
	}
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParam_JSON(t *testing.T) {
	data, err := json.Marshal(P("title", KindText))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"title","kind":"text"}` {
		t.Errorf("Marshal = %s", data)
	}
}
