package wire

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/openpayments/iso20022"
)

// XML encodes and decodes messages in the ISO 20022 XML representation.
// Each field maps to an element named by its xml tag; amount leaves carry
// a currency attribute plus character data. Optional fields are omitted
// entirely when absent, never emitted empty.
type XML struct{}

// Name returns "xml".
func (XML) Name() string {
	return "xml"
}

// Encode renders v as a single XML element named tag.
func (XML) Encode(tag string, v any) ([]byte, error) {
	buf := acquireBuffer()
	defer releaseBuffer(buf)

	enc := xml.NewEncoder(buf)
	start := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := enc.EncodeElement(v, start); err != nil {
		return nil, fmt.Errorf("encode %s: %w", tag, err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode parses the element named tag from data into v. The standard ISO
// "Document" wrapper element, when present, is skipped transparently.
func (XML) Decode(tag string, data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	start, err := bodyElement(dec)
	if err != nil {
		return err
	}
	if start.Name.Local != tag {
		return iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("root element %q does not match tag %q", start.Name.Local, tag))
	}
	if err := dec.DecodeElement(v, &start); err != nil {
		return iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("malformed %s payload: %v", tag, err))
	}
	return nil
}

// Peek reports the message root tag without decoding the body.
func (XML) Peek(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	start, err := bodyElement(dec)
	if err != nil {
		return "", err
	}
	return start.Name.Local, nil
}

// bodyElement returns the first start element of the message body,
// descending through the outer "Document" wrapper if one is present.
func bodyElement(dec *xml.Decoder) (xml.StartElement, error) {
	wrapped := false
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, iso20022.NewDecodeError(
					iso20022.CodeMalformedWire, "payload has no root element")
			}
			return xml.StartElement{}, iso20022.NewDecodeError(
				iso20022.CodeMalformedWire, fmt.Sprintf("malformed payload: %v", err))
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local == "Document" && !wrapped {
			wrapped = true
			continue
		}
		return start, nil
	}
}
