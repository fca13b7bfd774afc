package tmx

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Layer is a grid of tile references.
type Layer struct {
	Name    string
	Opacity float32
	Visible bool
	// Tiles is row-major: Tiles[y][x] holds the GID at that cell, 0 for an
	// empty cell.
	Tiles      [][]uint32
	Properties Properties
}

func newLayer(d *xml.Decoder, se xml.StartElement, width uint32) (Layer, error) {
	layer := Layer{Opacity: 1, Visible: true, Properties: make(Properties)}
	if err := decodeAttrs(se.Attr, "layers must have a name",
		optional("opacity", toF32(&layer.Opacity)),
		optional("visible", toVisible(&layer.Visible)),
		required("name", toString(&layer.Name)),
	); err != nil {
		return Layer{}, err
	}
	err := parseTag(d, "layer", map[string]tagHandler{
		"data": func(se xml.StartElement) error {
			tiles, err := newLayerData(d, se, width)
			if err != nil {
				return err
			}
			layer.Tiles = tiles
			return nil
		},
		"properties": func(xml.StartElement) error {
			props, err := parseProperties(d)
			if err != nil {
				return err
			}
			layer.Properties = props
			return nil
		},
	})
	if err != nil {
		return Layer{}, err
	}
	return layer, nil
}

// newLayerData decodes a data element into rows of GIDs. The encoding and
// compression attributes select between csv, base64 (raw, gzip, or zlib
// compressed), and plain <tile> child elements.
func newLayerData(d *xml.Decoder, se xml.StartElement, width uint32) ([][]uint32, error) {
	var encoding, compression string
	if err := decodeAttrs(se.Attr, "data attributes have the wrong types",
		optional("encoding", toString(&encoding)),
		optional("compression", toString(&compression)),
	); err != nil {
		return nil, err
	}

	switch encoding {
	case "":
		if compression != "" {
			return nil, fmt.Errorf("%w: compression %q without an encoding", ErrUnsupportedEncoding, compression)
		}
		return parseTileChildren(d, width)
	case "csv":
		if compression != "" {
			return nil, fmt.Errorf("%w: csv data cannot be %q compressed", ErrUnsupportedEncoding, compression)
		}
		text, err := elementText(d, "data")
		if err != nil {
			return nil, err
		}
		return parseCSVData(text, width)
	case "base64":
		text, err := elementText(d, "data")
		if err != nil {
			return nil, err
		}
		raw, err := decodeBase64Data(text, compression)
		if err != nil {
			return nil, err
		}
		return gidRowsFromBytes(raw, width)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}
}

// parseTileChildren reads uncompressed <tile gid="..."/> children.
func parseTileChildren(d *xml.Decoder, width uint32) ([][]uint32, error) {
	var cells []uint32
	err := parseTag(d, "data", map[string]tagHandler{
		"tile": func(se xml.StartElement) error {
			var gid uint32
			if err := decodeAttrs(se.Attr, "tile must have a numeric gid",
				optional("gid", toU32(&gid)),
			); err != nil {
				return err
			}
			cells = append(cells, gid)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return gidRows(cells, width)
}

func parseCSVData(text string, width uint32) ([][]uint32, error) {
	var cells []uint32
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		var gid uint32
		if !toU32(&gid)(tok) {
			return nil, fmt.Errorf("%w: csv cell %q is not a tile gid", ErrMalformedAttributes, tok)
		}
		cells = append(cells, gid)
	}
	return gidRows(cells, width)
}

func decodeBase64Data(text, compression string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 layer data: %v", ErrMalformedAttributes, err)
	}
	switch compression {
	case "":
		return raw, nil
	case "zlib":
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid zlib layer data: %v", ErrMalformedAttributes, err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "gzip":
		gr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid gzip layer data: %v", ErrMalformedAttributes, err)
		}
		defer gr.Close()
		return io.ReadAll(gr)
	default:
		return nil, fmt.Errorf("%w: compression %q", ErrUnsupportedEncoding, compression)
	}
}

func gidRowsFromBytes(raw []byte, width uint32) ([][]uint32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: layer data is not a whole number of tiles", ErrMalformedAttributes)
	}
	cells := make([]uint32, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		cells = append(cells, binary.LittleEndian.Uint32(raw[i:]))
	}
	return gidRows(cells, width)
}

// gidRows reshapes a flat cell list into rows of the map's width.
func gidRows(cells []uint32, width uint32) ([][]uint32, error) {
	if len(cells) == 0 {
		return nil, nil
	}
	if width == 0 || uint32(len(cells))%width != 0 {
		return nil, fmt.Errorf("%w: layer has %d cells, not a multiple of the map width %d",
			ErrMalformedAttributes, len(cells), width)
	}
	rows := make([][]uint32, 0, uint32(len(cells))/width)
	for i := uint32(0); i < uint32(len(cells)); i += width {
		rows = append(rows, cells[i:i+width])
	}
	return rows, nil
}
