package tmx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Orientation is the tile arrangement of a map.
type Orientation int

// Map orientations.
const (
	Orthogonal Orientation = iota
	Isometric
	Staggered
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	case Staggered:
		return "staggered"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

func toOrientation(dst *Orientation) func(string) bool {
	return func(v string) bool {
		switch v {
		case "orthogonal":
			*dst = Orthogonal
		case "isometric":
			*dst = Isometric
		case "staggered":
			*dst = Staggered
		default:
			return false
		}
		return true
	}
}

// Map is a fully decoded map document.
type Map struct {
	Version      string
	Orientation  Orientation
	Width        uint32
	Height       uint32
	TileWidth    uint32
	TileHeight   uint32
	Tilesets     []Tileset
	Layers       []Layer
	ObjectGroups []ObjectGroup
	Properties   Properties
}

// ParseMap decodes a map document from r. Maps that reference external
// tilesets need a known file location; use ParseMapWithPath or ParseMapFile
// for those.
func ParseMap(r io.Reader) (*Map, error) {
	return parseMap(r, "")
}

// ParseMapWithPath decodes a map document from r, resolving external tileset
// references as siblings of path.
func ParseMapWithPath(r io.Reader, path string) (*Map, error) {
	return parseMap(r, path)
}

// ParseMapFile opens and decodes the map document at path. External tileset
// references resolve relative to it.
func ParseMapFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer f.Close()
	return parseMap(f, path)
}

func parseMap(r io.Reader, mapPath string) (*Map, error) {
	d := xml.NewDecoder(r)
	se, err := findElement(d, "map")
	if err != nil {
		return nil, err
	}
	return newMap(d, se, mapPath)
}

func newMap(d *xml.Decoder, se xml.StartElement, mapPath string) (*Map, error) {
	m := &Map{Properties: make(Properties)}
	if err := decodeAttrs(se.Attr, "map must have a version, orientation, width and height with correct types",
		required("version", toString(&m.Version)),
		required("orientation", toOrientation(&m.Orientation)),
		required("width", toU32(&m.Width)),
		required("height", toU32(&m.Height)),
		required("tilewidth", toU32(&m.TileWidth)),
		required("tileheight", toU32(&m.TileHeight)),
	); err != nil {
		return nil, err
	}
	err := parseTag(d, "map", map[string]tagHandler{
		"tileset": func(se xml.StartElement) error {
			ts, err := newTileset(d, se, mapPath)
			if err != nil {
				return err
			}
			m.Tilesets = append(m.Tilesets, ts)
			return nil
		},
		"layer": func(se xml.StartElement) error {
			layer, err := newLayer(d, se, m.Width)
			if err != nil {
				return err
			}
			m.Layers = append(m.Layers, layer)
			return nil
		},
		"objectgroup": func(se xml.StartElement) error {
			group, err := newObjectGroup(d, se)
			if err != nil {
				return err
			}
			m.ObjectGroups = append(m.ObjectGroups, group)
			return nil
		},
		"properties": func(xml.StartElement) error {
			props, err := parseProperties(d)
			if err != nil {
				return err
			}
			m.Properties = props
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
