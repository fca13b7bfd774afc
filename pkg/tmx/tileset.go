package tmx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tileset is a named collection of tiles addressed by global tile ids from
// FirstGID upward.
type Tileset struct {
	// FirstGID is the global tile id of the first tile in this set.
	FirstGID   uint32
	Name       string
	TileWidth  uint32
	TileHeight uint32
	Spacing    uint32
	Margin     uint32
	// Images holds the tilesheet images. The format permits several per
	// tileset; most maps use exactly one.
	Images []Image
	Tiles  []Tile
}

// newTileset decodes a tileset element either as an embedded definition or,
// when the embedded attempt fails, as a reference to an external tileset
// document resolved as a sibling of the map file at mapPath. The embedded
// attempt's error is discarded; only the reference attempt's error surfaces.
func newTileset(d *xml.Decoder, se xml.StartElement, mapPath string) (Tileset, error) {
	ts, err := newEmbeddedTileset(d, se.Attr)
	if err != nil {
		return newTilesetReference(se.Attr, mapPath)
	}
	return ts, nil
}

func newEmbeddedTileset(d *xml.Decoder, attrs []xml.Attr) (Tileset, error) {
	var ts Tileset
	if err := decodeAttrs(attrs, "tileset must have a firstgid, name, tile width and height with correct types",
		optional("spacing", toU32(&ts.Spacing)),
		optional("margin", toU32(&ts.Margin)),
		required("firstgid", toU32(&ts.FirstGID)),
		required("name", toString(&ts.Name)),
		required("tilewidth", toU32(&ts.TileWidth)),
		required("tileheight", toU32(&ts.TileHeight)),
	); err != nil {
		return Tileset{}, err
	}
	if err := parseTilesetBody(d, &ts); err != nil {
		return Tileset{}, err
	}
	return ts, nil
}

func newTilesetReference(attrs []xml.Attr, mapPath string) (Tileset, error) {
	var firstGID uint32
	var source string
	if err := decodeAttrs(attrs, "tileset must have a firstgid, name, tile width and height with correct types",
		required("firstgid", toU32(&firstGID)),
		required("source", toString(&source)),
	); err != nil {
		return Tileset{}, err
	}
	if mapPath == "" {
		return Tileset{}, fmt.Errorf("%w: use ParseMapWithPath or ParseMapFile", ErrMissingMapPath)
	}
	path := filepath.Join(filepath.Dir(mapPath), source)
	f, err := os.Open(path)
	if err != nil {
		return Tileset{}, fmt.Errorf("%w: %s", ErrExternalTileset, path)
	}
	defer f.Close()
	return parseExternalTileset(f, firstGID)
}

// parseExternalTileset decodes a standalone tileset document. firstGID is
// injected from the referencing map; the external document carries none.
func parseExternalTileset(r io.Reader, firstGID uint32) (Tileset, error) {
	d := xml.NewDecoder(r)
	se, err := findElement(d, "tileset")
	if err != nil {
		return Tileset{}, err
	}
	ts := Tileset{FirstGID: firstGID}
	if err := decodeAttrs(se.Attr, "tileset must have a name, tile width and height with correct types",
		optional("spacing", toU32(&ts.Spacing)),
		optional("margin", toU32(&ts.Margin)),
		required("name", toString(&ts.Name)),
		required("tilewidth", toU32(&ts.TileWidth)),
		required("tileheight", toU32(&ts.TileHeight)),
	); err != nil {
		return Tileset{}, err
	}
	if err := parseTilesetBody(d, &ts); err != nil {
		return Tileset{}, err
	}
	return ts, nil
}

// parseTilesetBody consumes image and tile children through </tileset>.
func parseTilesetBody(d *xml.Decoder, ts *Tileset) error {
	return parseTag(d, "tileset", map[string]tagHandler{
		"image": func(se xml.StartElement) error {
			img, err := newImage(se.Attr)
			if err != nil {
				return err
			}
			ts.Images = append(ts.Images, img)
			return nil
		},
		"tile": func(se xml.StartElement) error {
			tile, err := newTile(d, se)
			if err != nil {
				return err
			}
			ts.Tiles = append(ts.Tiles, tile)
			return nil
		},
	})
}
