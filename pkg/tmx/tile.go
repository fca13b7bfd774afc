package tmx

import "encoding/xml"

// Tile carries per-tile metadata declared inside a tileset. ID is local to
// the tileset; add the tileset's FirstGID to obtain the global id.
type Tile struct {
	ID         uint32
	Images     []Image
	Properties Properties
}

func newTile(d *xml.Decoder, se xml.StartElement) (Tile, error) {
	tile := Tile{Properties: make(Properties)}
	if err := decodeAttrs(se.Attr, "tile must have an id with the correct type",
		required("id", toU32(&tile.ID)),
	); err != nil {
		return Tile{}, err
	}
	err := parseTag(d, "tile", map[string]tagHandler{
		"image": func(se xml.StartElement) error {
			img, err := newImage(se.Attr)
			if err != nil {
				return err
			}
			tile.Images = append(tile.Images, img)
			return nil
		},
		"properties": func(xml.StartElement) error {
			props, err := parseProperties(d)
			if err != nil {
				return err
			}
			tile.Properties = props
			return nil
		},
	})
	if err != nil {
		return Tile{}, err
	}
	return tile, nil
}
