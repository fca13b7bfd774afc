package tmx

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is an opaque RGB colour as written in map documents.
type Colour struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// String returns the colour as "#RRGGBB".
func (c Colour) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// ParseColour parses an RRGGBB hex colour with an optional leading '#'.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("%w: colour %q is not RRGGBB", ErrMalformedAttributes, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: colour %q is not RRGGBB", ErrMalformedAttributes, s)
	}
	return Colour{
		Red:   uint8(n >> 16),
		Green: uint8(n >> 8),
		Blue:  uint8(n),
	}, nil
}
