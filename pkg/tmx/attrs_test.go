package tmx

import (
	"encoding/xml"
	"errors"
	"testing"
)

func makeAttrs(pairs ...string) []xml.Attr {
	if len(pairs)%2 != 0 {
		panic("makeAttrs needs name/value pairs")
	}
	attrs := make([]xml.Attr, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs = append(attrs, xml.Attr{
			Name:  xml.Name{Local: pairs[i]},
			Value: pairs[i+1],
		})
	}
	return attrs
}

func TestDecodeAttrs_RequiredPresent(t *testing.T) {
	var x, y float32
	var name string
	err := decodeAttrs(makeAttrs("x", "10.5", "y", "20", "name", "spawn"),
		"test element attributes",
		optional("name", toString(&name)),
		required("x", toF32(&x)),
		required("y", toF32(&y)),
	)
	if err != nil {
		t.Fatalf("decodeAttrs failed: %v", err)
	}
	if x != 10.5 {
		t.Errorf("expected x 10.5, got %f", x)
	}
	if y != 20 {
		t.Errorf("expected y 20, got %f", y)
	}
	if name != "spawn" {
		t.Errorf("expected name 'spawn', got %q", name)
	}
}

func TestDecodeAttrs_RequiredMissing(t *testing.T) {
	var x float32
	err := decodeAttrs(makeAttrs("y", "20"),
		"element must have an x",
		required("x", toF32(&x)),
	)
	if err == nil {
		t.Fatal("expected error for missing required attribute")
	}
	if !errors.Is(err, ErrMalformedAttributes) {
		t.Errorf("expected ErrMalformedAttributes, got %v", err)
	}
}

func TestDecodeAttrs_RequiredBadCoercion(t *testing.T) {
	var x float32
	err := decodeAttrs(makeAttrs("x", "not a number"),
		"element must have an x",
		required("x", toF32(&x)),
	)
	if !errors.Is(err, ErrMalformedAttributes) {
		t.Errorf("expected ErrMalformedAttributes, got %v", err)
	}
}

func TestDecodeAttrs_OptionalBadCoercionDegrades(t *testing.T) {
	opacity := float32(1)
	visible := true
	err := decodeAttrs(makeAttrs("opacity", "cloudy", "visible", "maybe"),
		"test element attributes",
		optional("opacity", toF32(&opacity)),
		optional("visible", toVisible(&visible)),
	)
	if err != nil {
		t.Fatalf("optional coercion failure must not error, got %v", err)
	}
	if opacity != 1 {
		t.Errorf("expected default opacity 1, got %f", opacity)
	}
	if !visible {
		t.Error("expected default visible true")
	}
}

func TestDecodeAttrs_OptionalAbsent(t *testing.T) {
	spacing := uint32(0)
	err := decodeAttrs(makeAttrs("margin", "2"),
		"test element attributes",
		optional("spacing", toU32(&spacing)),
	)
	if err != nil {
		t.Fatalf("decodeAttrs failed: %v", err)
	}
	if spacing != 0 {
		t.Errorf("expected spacing to keep its default, got %d", spacing)
	}
}

func TestToVisible(t *testing.T) {
	tests := []struct {
		value    string
		ok       bool
		expected bool
	}{
		{"1", true, true},
		{"0", true, false},
		{"2", true, false},
		{"true", false, false},
		{"", false, false},
	}

	for _, tc := range tests {
		visible := false
		ok := toVisible(&visible)(tc.value)
		if ok != tc.ok {
			t.Errorf("toVisible(%q): expected ok=%v, got %v", tc.value, tc.ok, ok)
			continue
		}
		if ok && visible != tc.expected {
			t.Errorf("toVisible(%q): expected %v, got %v", tc.value, tc.expected, visible)
		}
	}
}

func TestToColour(t *testing.T) {
	var c *Colour
	if !toColour(&c)("#FF8000") {
		t.Fatal("expected #FF8000 to parse")
	}
	if c == nil || c.Red != 0xFF || c.Green != 0x80 || c.Blue != 0 {
		t.Errorf("unexpected colour %+v", c)
	}

	c = nil
	if toColour(&c)("notacolour") {
		t.Error("expected bad colour to be rejected")
	}
	if c != nil {
		t.Error("failed coercion must not write the destination")
	}
}
