package tmx

import "errors"

// Parse errors. Call sites wrap these with fmt.Errorf("%w: ...") so callers
// can test the failure class with errors.Is.
var (
	// ErrMalformedAttributes marks an element whose required attributes are
	// missing or have the wrong type.
	ErrMalformedAttributes = errors.New("malformed attributes")

	// ErrPrematureEnd marks a document that ended before an open element
	// was closed.
	ErrPrematureEnd = errors.New("document ended prematurely")

	// ErrXMLDecoding wraps low-level XML syntax errors from the decoder.
	ErrXMLDecoding = errors.New("xml decoding failed")

	// ErrMissingMapPath is returned when a map references an external
	// tileset but was parsed without a known file location.
	ErrMissingMapPath = errors.New("maps with external tilesets must know their file location")

	// ErrExternalTileset marks an external tileset file that could not be
	// opened.
	ErrExternalTileset = errors.New("external tileset file not found")

	// ErrUnsupportedEncoding marks a layer data encoding or compression
	// this package does not decode.
	ErrUnsupportedEncoding = errors.New("unsupported layer data encoding")
)
