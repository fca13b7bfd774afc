package tmx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// PropertyKind discriminates PropertyValue variants.
type PropertyKind int

// Property value kinds.
const (
	PropertyString PropertyKind = iota
	PropertyBool
	PropertyInt
	PropertyFloat
	PropertyColour
)

// String returns a human-readable kind name.
func (k PropertyKind) String() string {
	switch k {
	case PropertyString:
		return "string"
	case PropertyBool:
		return "bool"
	case PropertyInt:
		return "int"
	case PropertyFloat:
		return "float"
	case PropertyColour:
		return "colour"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// PropertyValue is one typed property. Kind selects which field is set.
type PropertyValue struct {
	Kind   PropertyKind
	Bool   bool
	Int    int64
	Float  float64
	Colour Colour
	String string
}

// Properties maps property names to their typed values. Keys are unique; no
// iteration order is defined.
type Properties map[string]PropertyValue

// parseProperties consumes a properties element through its end tag and
// returns the decoded map.
func parseProperties(d *xml.Decoder) (Properties, error) {
	props := make(Properties)
	err := parseTag(d, "properties", map[string]tagHandler{
		"property": func(se xml.StartElement) error {
			var name, typ, value string
			if err := decodeAttrs(se.Attr, "property must have a name and a value",
				optional("type", toString(&typ)),
				required("name", toString(&name)),
				required("value", toString(&value)),
			); err != nil {
				return err
			}
			pv, err := parsePropertyValue(typ, value)
			if err != nil {
				return err
			}
			props[name] = pv
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

// parsePropertyValue decodes a property value according to its declared
// type. Unrecognized type names fall back to string.
func parsePropertyValue(typ, value string) (PropertyValue, error) {
	switch typ {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return PropertyValue{}, fmt.Errorf("%w: bool property has value %q", ErrMalformedAttributes, value)
		}
		return PropertyValue{Kind: PropertyBool, Bool: b}, nil
	case "int":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return PropertyValue{}, fmt.Errorf("%w: int property has value %q", ErrMalformedAttributes, value)
		}
		return PropertyValue{Kind: PropertyInt, Int: n}, nil
	case "float":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return PropertyValue{}, fmt.Errorf("%w: float property has value %q", ErrMalformedAttributes, value)
		}
		return PropertyValue{Kind: PropertyFloat, Float: f}, nil
	case "color":
		c, err := ParseColour(value)
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: PropertyColour, Colour: c}, nil
	default:
		return PropertyValue{Kind: PropertyString, String: value}, nil
	}
}
