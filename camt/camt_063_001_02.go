// Package camt binds the cash management messages. The catalog currently
// carries camt.063.001.02, the pay-in event acknowledgement.
package camt

import (
	"github.com/openpayments/iso20022/common"
)

// PayInEventAcknowledgementV02 is the camt.063.001.02 message body: a
// settlement member acknowledges a pay-in schedule or pay-in call.
type PayInEventAcknowledgementV02 struct {
	MsgId       common.Max35Text               `xml:"MsgId" json:"MsgId"`
	SttlmSsnIdr *common.Exact4AlphaNumericText `xml:"SttlmSsnIdr,omitempty" json:"SttlmSsnIdr,omitempty"`
	AckDtls     AcknowledgementDetails1Choice  `xml:"AckDtls" json:"AckDtls"`
	SplmtryData []common.SupplementaryData1    `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

// AcknowledgementDetails1Choice references the acknowledged event: a pay-in
// schedule or a pay-in call.
type AcknowledgementDetails1Choice struct {
	PayInSchdlRef *common.Max35Text `xml:"PayInSchdlRef,omitempty" json:"PayInSchdlRef,omitempty"`
	PayInCallRef  *common.Max35Text `xml:"PayInCallRef,omitempty" json:"PayInCallRef,omitempty"`
}

func (AcknowledgementDetails1Choice) IsChoice() {}
