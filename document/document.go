// Package document implements the envelope over every registered message
// type. A Document pairs a decoded message body with the root tag it
// arrived under, so encoding always re-emits the exact originating tag.
//
// The tag-to-schema catalog is closed and immutable after package
// initialization: dispatch is a map lookup, never reflection over
// unregistered types, and an unknown tag is a stable DecodeError rather
// than a panic.
package document

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/admi"
	"github.com/openpayments/iso20022/camt"
	"github.com/openpayments/iso20022/pacs"
	"github.com/openpayments/iso20022/pain"
	"github.com/openpayments/iso20022/validate"
	"github.com/openpayments/iso20022/wire"
)

// Document is one message body together with its dispatch tag.
type Document struct {
	tag string
	msg any
}

// variant registers one message type under its root tag.
type variant struct {
	tag        string
	identifier string
	newMessage func() any
}

// Most members key their root element by the XML mnemonic; admi.002.001.01
// is keyed by its full identifier, as published.
var variants = []variant{
	{"CstmrCdtTrfInitn", "pain.001.001.12", func() any { return new(pain.CustomerCreditTransferInitiationV12) }},
	{"FIDrctDbt", "pacs.010.001.06", func() any { return new(pacs.FinancialInstitutionDirectDebitV06) }},
	{"PayInEvtAck", "camt.063.001.02", func() any { return new(camt.PayInEventAcknowledgementV02) }},
	{"admi.002.001.01", "admi.002.001.01", func() any { return new(admi.MessageRejectV01) }},
}

var (
	byTag  = make(map[string]variant, len(variants))
	byType = make(map[reflect.Type]variant, len(variants))
)

func init() {
	for _, v := range variants {
		byTag[v.tag] = v
		byType[reflect.TypeOf(v.newMessage()).Elem()] = v
	}
}

// Tags lists every registered root tag in lexical order.
func Tags() []string {
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Supports reports whether tag has a registered schema.
func Supports(tag string) bool {
	_, ok := byTag[tag]
	return ok
}

// New wraps an already-built message body in its envelope. The message type
// must be registered; a pointer to a registered type is accepted.
func New(msg any) (*Document, error) {
	t := reflect.TypeOf(msg)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	v, ok := byType[t]
	if !ok {
		return nil, iso20022.NewDecodeError(iso20022.CodeUnknownMessageType,
			fmt.Sprintf("no schema registered for message type %T", msg))
	}
	return &Document{tag: v.tag, msg: msg}, nil
}

// Decode builds a Document from a tagged payload. The tag selects the
// schema; an unregistered tag yields a DecodeError with code 9999 and no
// document. A payload missing required fields is rejected the same way a
// malformed one is: no partial document is returned.
func Decode(codec wire.Codec, tag string, data []byte) (*Document, error) {
	v, ok := byTag[tag]
	if !ok {
		return nil, iso20022.NewDecodeError(iso20022.CodeUnknownMessageType,
			fmt.Sprintf("unknown message type %q", tag))
	}
	msg := v.newMessage()
	if err := codec.Decode(tag, data, msg); err != nil {
		return nil, err
	}
	if err := validate.Required(msg); err != nil {
		return nil, err
	}
	return &Document{tag: tag, msg: msg}, nil
}

// Encode serializes the document under the tag it was built with.
func Encode(codec wire.Codec, d *Document) ([]byte, error) {
	return codec.Encode(d.tag, d.msg)
}

// Tag returns the root tag the document dispatches under.
func (d *Document) Tag() string {
	return d.tag
}

// Identifier returns the message definition identifier, such as
// "pain.001.001.12".
func (d *Document) Identifier() string {
	return byTag[d.tag].identifier
}

// Set returns the business area the document belongs to.
func (d *Document) Set() iso20022.MessageSet {
	return iso20022.SetOf(d.Identifier())
}

// Namespace returns the XML namespace of the document's schema.
func (d *Document) Namespace() string {
	return iso20022.NamespaceURI(d.Identifier())
}

// Message returns the typed message body. Callers type-switch on the
// registered message types.
func (d *Document) Message() any {
	return d.msg
}

// Validate walks the message body with a lenient propagator and reports
// the first constraint violation.
func (d *Document) Validate() error {
	return validate.Record(d.msg)
}

// ValidateWith walks the message body with the given propagator.
func (d *Document) ValidateWith(p validate.Propagator) error {
	return p.Record(d.msg)
}
