package tmx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// attrField describes one attribute to extract from a start tag. parse
// receives the raw value and reports whether it was accepted; it must only
// write through its captured destination on success.
type attrField struct {
	name     string
	required bool
	parse    func(string) bool
}

func required(name string, parse func(string) bool) attrField {
	return attrField{name: name, required: true, parse: parse}
}

func optional(name string, parse func(string) bool) attrField {
	return attrField{name: name, parse: parse}
}

// decodeAttrs validates one element's attribute list against the given field
// specs. A required field that is missing or fails to parse aborts with
// ErrMalformedAttributes and the supplied message. An optional field that
// fails to parse is treated as absent, leaving the caller's default in place.
func decodeAttrs(attrs []xml.Attr, errMsg string, fields ...attrField) error {
	for _, f := range fields {
		value, ok := lookupAttr(attrs, f.name)
		if !ok {
			if f.required {
				return fmt.Errorf("%w: %s", ErrMalformedAttributes, errMsg)
			}
			continue
		}
		if !f.parse(value) && f.required {
			return fmt.Errorf("%w: %s", ErrMalformedAttributes, errMsg)
		}
	}
	return nil
}

func lookupAttr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attribute coercions. Each returns a parse func writing into dst.

func toString(dst *string) func(string) bool {
	return func(v string) bool {
		*dst = v
		return true
	}
}

func toF32(dst *float32) func(string) bool {
	return func(v string) bool {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return false
		}
		*dst = float32(f)
		return true
	}
}

func toU32(dst *uint32) func(string) bool {
	return func(v string) bool {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return false
		}
		*dst = uint32(n)
		return true
	}
}

func toI32(dst *int32) func(string) bool {
	return func(v string) bool {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return false
		}
		*dst = int32(n)
		return true
	}
}

// toVisible parses the 0/1 visibility flag. The same integer parse applies
// to every element carrying a visible attribute, objects included; values
// like "true" are rejected, leaving the optional attribute's default in
// place.
func toVisible(dst *bool) func(string) bool {
	return func(v string) bool {
		n, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		*dst = n == 1
		return true
	}
}

func toColour(dst **Colour) func(string) bool {
	return func(v string) bool {
		c, err := ParseColour(v)
		if err != nil {
			return false
		}
		*dst = &c
		return true
	}
}
