package tmx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// ShapeKind discriminates ObjectShape variants.
type ShapeKind int

// Object shape kinds.
const (
	ShapeRect ShapeKind = iota
	ShapeEllipse
	ShapePolyline
	ShapePolygon
)

// String returns a human-readable shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "Rect"
	case ShapeEllipse:
		return "Ellipse"
	case ShapePolyline:
		return "Polyline"
	case ShapePolygon:
		return "Polygon"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Point is a single vertex of a polyline or polygon outline.
type Point struct {
	X float32
	Y float32
}

// ObjectShape is the geometry of an Object. Kind selects the variant: Width
// and Height are set for rectangles and ellipses, Points for polylines and
// polygons. Points keep document order, which defines the path.
type ObjectShape struct {
	Kind   ShapeKind
	Width  float32
	Height float32
	Points []Point
}

// ObjectGroup is an ordered, layer-like container of objects.
type ObjectGroup struct {
	Name    string
	Opacity float32
	Visible bool
	Objects []Object
	Colour  *Colour
}

// Object is a freeform positioned annotation placed within an object group.
type Object struct {
	ID       uint32
	GID      uint32
	Name     string
	Type     string
	X        float32
	Y        float32
	Rotation float32
	Visible  bool
	// Shape is never unset: an object without an explicit shape child
	// decodes as a rectangle using its own width and height. When several
	// shape children appear the last one wins.
	Shape      ObjectShape
	Properties Properties
}

func newObjectGroup(d *xml.Decoder, se xml.StartElement) (ObjectGroup, error) {
	group := ObjectGroup{Opacity: 1, Visible: true}
	if err := decodeAttrs(se.Attr, "object group attributes have the wrong types",
		optional("opacity", toF32(&group.Opacity)),
		optional("visible", toVisible(&group.Visible)),
		optional("color", toColour(&group.Colour)),
		optional("name", toString(&group.Name)),
	); err != nil {
		return ObjectGroup{}, err
	}
	err := parseTag(d, "objectgroup", map[string]tagHandler{
		"object": func(se xml.StartElement) error {
			obj, err := newObject(d, se)
			if err != nil {
				return err
			}
			group.Objects = append(group.Objects, obj)
			return nil
		},
	})
	if err != nil {
		return ObjectGroup{}, err
	}
	return group, nil
}

func newObject(d *xml.Decoder, se xml.StartElement) (Object, error) {
	obj := Object{Visible: true, Properties: make(Properties)}
	var width, height float32
	if err := decodeAttrs(se.Attr, "objects must have an x and a y number",
		optional("id", toU32(&obj.ID)),
		optional("gid", toU32(&obj.GID)),
		optional("name", toString(&obj.Name)),
		optional("type", toString(&obj.Type)),
		optional("width", toF32(&width)),
		optional("height", toF32(&height)),
		optional("visible", toVisible(&obj.Visible)),
		optional("rotation", toF32(&obj.Rotation)),
		required("x", toF32(&obj.X)),
		required("y", toF32(&obj.Y)),
	); err != nil {
		return Object{}, err
	}

	var shape *ObjectShape
	err := parseTag(d, "object", map[string]tagHandler{
		"ellipse": func(xml.StartElement) error {
			shape = &ObjectShape{Kind: ShapeEllipse, Width: width, Height: height}
			return nil
		},
		"polyline": func(se xml.StartElement) error {
			s, err := newPolyShape(ShapePolyline, se.Attr)
			if err != nil {
				return err
			}
			shape = &s
			return nil
		},
		"polygon": func(se xml.StartElement) error {
			s, err := newPolyShape(ShapePolygon, se.Attr)
			if err != nil {
				return err
			}
			shape = &s
			return nil
		},
		"properties": func(xml.StartElement) error {
			props, err := parseProperties(d)
			if err != nil {
				return err
			}
			obj.Properties = props
			return nil
		},
	})
	if err != nil {
		return Object{}, err
	}

	if shape == nil {
		shape = &ObjectShape{Kind: ShapeRect, Width: width, Height: height}
	}
	obj.Shape = *shape
	return obj, nil
}

func newPolyShape(kind ShapeKind, attrs []xml.Attr) (ObjectShape, error) {
	errMsg := "a polyline must have points"
	if kind == ShapePolygon {
		errMsg = "a polygon must have points"
	}
	var raw string
	if err := decodeAttrs(attrs, errMsg,
		required("points", toString(&raw)),
	); err != nil {
		return ObjectShape{}, err
	}
	points, err := parsePoints(raw)
	if err != nil {
		return ObjectShape{}, err
	}
	return ObjectShape{Kind: kind, Points: points}, nil
}

// parsePoints decodes a "x1,y1 x2,y2 ..." attribute value, keeping pair
// order. Any malformed pair fails the whole decode.
func parsePoints(s string) ([]Point, error) {
	var points []Point
	for _, pair := range strings.Split(s, " ") {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("%w: point %q does not have an x and a y coordinate", ErrMalformedAttributes, pair)
		}
		x, errX := strconv.ParseFloat(coords[0], 32)
		y, errY := strconv.ParseFloat(coords[1], 32)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: point %q does not have numeric coordinates", ErrMalformedAttributes, pair)
		}
		points = append(points, Point{X: float32(x), Y: float32(y)})
	}
	return points, nil
}
