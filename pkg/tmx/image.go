package tmx

import "encoding/xml"

// Image describes a tilesheet or per-tile source image.
type Image struct {
	// Source is the image file path exactly as written in the document,
	// relative to the file that declared it.
	Source string
	Width  int32
	Height int32
	// Transparent is the colour to treat as transparent, when declared.
	Transparent *Colour
}

func newImage(attrs []xml.Attr) (Image, error) {
	var img Image
	if err := decodeAttrs(attrs, "image must have a source, width and height with correct types",
		optional("trans", toColour(&img.Transparent)),
		required("source", toString(&img.Source)),
		required("width", toI32(&img.Width)),
		required("height", toI32(&img.Height)),
	); err != nil {
		return Image{}, err
	}
	return img, nil
}
