package common

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openpayments/iso20022/constraint"
)

var nonNegative = constraint.MinValue(decimal.Zero)

// ActiveCurrencyAndAmount is a monetary amount carrying its currency as an
// attribute on the wire: <Amt Ccy="EUR">1234.56</Amt>.
type ActiveCurrencyAndAmount struct {
	Ccy   string  `xml:"Ccy,attr" json:"Ccy"`
	Value float64 `xml:"-" json:"$value"`
}

func (a ActiveCurrencyAndAmount) Validate() error {
	if err := constraint.String("ActiveCurrencyAndAmount.Ccy", a.Ccy, currencyPattern); err != nil {
		return err
	}
	return constraint.Float("ActiveCurrencyAndAmount", a.Value, nonNegative)
}

func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalAmount(e, start, a.Ccy, a.Value)
}

func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalAmount(d, start, &a.Ccy, &a.Value)
}

// ActiveOrHistoricCurrencyAndAmount is the amount form allowing withdrawn
// currencies, with the same wire shape as ActiveCurrencyAndAmount.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   string  `xml:"Ccy,attr" json:"Ccy"`
	Value float64 `xml:"-" json:"$value"`
}

func (a ActiveOrHistoricCurrencyAndAmount) Validate() error {
	if err := constraint.String("ActiveOrHistoricCurrencyAndAmount.Ccy", a.Ccy, currencyPattern); err != nil {
		return err
	}
	return constraint.Float("ActiveOrHistoricCurrencyAndAmount", a.Value, nonNegative)
}

func (a ActiveOrHistoricCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalAmount(e, start, a.Ccy, a.Value)
}

func (a *ActiveOrHistoricCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalAmount(d, start, &a.Ccy, &a.Value)
}

// encoding/xml only accumulates character data into string and []byte
// fields, so amounts convert their numeric payload by hand.
func marshalAmount(e *xml.Encoder, start xml.StartElement, ccy string, value float64) error {
	start.Attr = append(start.Attr, xml.Attr{
		Name:  xml.Name{Local: "Ccy"},
		Value: ccy,
	})
	body := strconv.FormatFloat(value, 'f', -1, 64)
	return e.EncodeElement(body, start)
}

func unmarshalAmount(d *xml.Decoder, start xml.StartElement, ccy *string, value *float64) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "Ccy" {
			*ccy = attr.Value
		}
	}
	var body string
	if err := d.DecodeElement(&body, &start); err != nil {
		return err
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return err
	}
	*value = parsed
	return nil
}
