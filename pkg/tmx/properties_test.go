package tmx

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
)

func parsePropertiesDoc(t *testing.T, doc string) (Properties, error) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(doc))
	if _, err := findElement(d, "properties"); err != nil {
		t.Fatalf("findElement failed: %v", err)
	}
	return parseProperties(d)
}

func TestParseProperties_TypedValues(t *testing.T) {
	doc := `<properties>
		<property name="open" type="bool" value="false"/>
		<property name="level" type="int" value="-3"/>
		<property name="speed" type="float" value="1.75"/>
		<property name="tint" type="color" value="#336699"/>
		<property name="label" value="entrance"/>
	</properties>`
	props, err := parsePropertiesDoc(t, doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(props) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(props))
	}

	if pv := props["open"]; pv.Kind != PropertyBool || pv.Bool {
		t.Errorf("unexpected bool property %+v", pv)
	}
	if pv := props["level"]; pv.Kind != PropertyInt || pv.Int != -3 {
		t.Errorf("unexpected int property %+v", pv)
	}
	if pv := props["speed"]; pv.Kind != PropertyFloat || pv.Float != 1.75 {
		t.Errorf("unexpected float property %+v", pv)
	}
	if pv := props["tint"]; pv.Kind != PropertyColour || pv.Colour != (Colour{0x33, 0x66, 0x99}) {
		t.Errorf("unexpected colour property %+v", pv)
	}
	if pv := props["label"]; pv.Kind != PropertyString || pv.String != "entrance" {
		t.Errorf("unexpected string property %+v", pv)
	}
}

func TestParseProperties_UnknownTypeFallsBackToString(t *testing.T) {
	props, err := parsePropertiesDoc(t, `<properties><property name="p" type="file" value="a.png"/></properties>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if pv := props["p"]; pv.Kind != PropertyString || pv.String != "a.png" {
		t.Errorf("unexpected property %+v", pv)
	}
}

func TestParseProperties_BadTypedValue(t *testing.T) {
	docs := []string{
		`<properties><property name="p" type="int" value="many"/></properties>`,
		`<properties><property name="p" type="bool" value="perhaps"/></properties>`,
		`<properties><property name="p" type="float" value=""/></properties>`,
	}
	for _, doc := range docs {
		if _, err := parsePropertiesDoc(t, doc); !errors.Is(err, ErrMalformedAttributes) {
			t.Errorf("expected ErrMalformedAttributes for %s, got %v", doc, err)
		}
	}
}

func TestParseProperties_MissingName(t *testing.T) {
	_, err := parsePropertiesDoc(t, `<properties><property value="orphan"/></properties>`)
	if !errors.Is(err, ErrMalformedAttributes) {
		t.Fatalf("expected ErrMalformedAttributes, got %v", err)
	}
}
