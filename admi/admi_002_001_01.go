// Package admi binds the administration messages. The catalog currently
// carries admi.002.001.01, the message reject.
package admi

import (
	"github.com/openpayments/iso20022/common"
)

// MessageRejectV01 is the admi.002.001.01 message body: a system notifies a
// participant that a previous message was rejected, with the reason.
type MessageRejectV01 struct {
	RltdRef MessageReference `xml:"RltdRef" json:"RltdRef"`
	Rsn     RejectionReason2 `xml:"Rsn" json:"Rsn"`
}

// MessageReference points at the rejected message.
type MessageReference struct {
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

// RejectionReason2 explains why the referenced message was rejected.
type RejectionReason2 struct {
	RjctgPtyRsn common.Max35Text     `xml:"RjctgPtyRsn" json:"RjctgPtyRsn"`
	RjctnDtTm   *string              `xml:"RjctnDtTm,omitempty" json:"RjctnDtTm,omitempty"`
	ErrLctn     *common.Max350Text   `xml:"ErrLctn,omitempty" json:"ErrLctn,omitempty"`
	RsnDesc     *common.Max350Text   `xml:"RsnDesc,omitempty" json:"RsnDesc,omitempty"`
	AddtlData   *common.Max20000Text `xml:"AddtlData,omitempty" json:"AddtlData,omitempty"`
}
