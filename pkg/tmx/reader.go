package tmx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// tagHandler consumes one child element. A handler that recurses into the
// child must leave the decoder positioned past the child's end tag; a
// handler that only reads attributes may leave the element open, its end tag
// is ignored by the dispatch loop.
type tagHandler func(xml.StartElement) error

// atDocumentEnd reports whether a decoder error means the input ran out.
// With an element still open the decoder reports truncation as a syntax
// error rather than io.EOF; both map to the premature-end class.
func atDocumentEnd(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var syntaxErr *xml.SyntaxError
	return errors.As(err, &syntaxErr) && strings.Contains(syntaxErr.Msg, "unexpected EOF")
}

// parseTag dispatches the children of the open element named name until its
// matching end tag. Children without a registered handler are skipped whole,
// so vendor extensions and unknown tags cannot desynchronize the cursor.
func parseTag(d *xml.Decoder, name string, handlers map[string]tagHandler) error {
	for {
		tok, err := d.Token()
		if atDocumentEnd(err) {
			return fmt.Errorf("%w: %s tag not closed", ErrPrematureEnd, name)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrXMLDecoding, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			h, ok := handlers[t.Name.Local]
			if !ok {
				if err := d.Skip(); err != nil {
					if atDocumentEnd(err) {
						return fmt.Errorf("%w: %s tag not closed", ErrPrematureEnd, name)
					}
					return fmt.Errorf("%w: %v", ErrXMLDecoding, err)
				}
				continue
			}
			if err := h(t); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == name {
				return nil
			}
		}
	}
}

// findElement advances the decoder to the first start tag with the given
// name, skipping the prolog and any unrelated content before it.
func findElement(d *xml.Decoder, name string) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if atDocumentEnd(err) {
			return xml.StartElement{}, fmt.Errorf("%w: no <%s> element found", ErrPrematureEnd, name)
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("%w: %v", ErrXMLDecoding, err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == name {
			return se, nil
		}
	}
}

// elementText collects the character data of the open element named name
// through its end tag, skipping any nested elements.
func elementText(d *xml.Decoder, name string) (string, error) {
	var text []byte
	for {
		tok, err := d.Token()
		if atDocumentEnd(err) {
			return "", fmt.Errorf("%w: %s tag not closed", ErrPrematureEnd, name)
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrXMLDecoding, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text = append(text, t...)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				if atDocumentEnd(err) {
					return "", fmt.Errorf("%w: %s tag not closed", ErrPrematureEnd, name)
				}
				return "", fmt.Errorf("%w: %v", ErrXMLDecoding, err)
			}
		case xml.EndElement:
			if t.Name.Local == name {
				return string(text), nil
			}
		}
	}
}
