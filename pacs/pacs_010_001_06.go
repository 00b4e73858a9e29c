// Package pacs binds the interbank clearing and settlement messages. The
// catalog currently carries pacs.010.001.06, the financial institution
// direct debit.
package pacs

import (
	"github.com/openpayments/iso20022/common"
	"github.com/openpayments/iso20022/constraint"
)

// FinancialInstitutionDirectDebitV06 is the pacs.010.001.06 message body:
// a creditor agent collects funds from debtor agents on behalf of a
// creditor financial institution.
type FinancialInstitutionDirectDebitV06 struct {
	GrpHdr      GroupHeader119                `xml:"GrpHdr" json:"GrpHdr"`
	CdtInstr    []CreditTransferTransaction66 `xml:"CdtInstr" json:"CdtInstr"`
	SplmtryData []common.SupplementaryData1   `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

// GroupHeader119 is the set of characteristics shared by every instruction
// in the message.
type GroupHeader119 struct {
	MsgId    common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm  string                                               `xml:"CreDtTm" json:"CreDtTm"`
	NbOfTxs  common.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum  *float64                                             `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	InstgAgt *common.BranchAndFinancialInstitutionIdentification8 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt *common.BranchAndFinancialInstitutionIdentification8 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

// ClearingChannel2Code selects the channel an instruction clears through.
type ClearingChannel2Code string

func (v ClearingChannel2Code) Validate() error {
	return constraint.String("ClearingChannel2Code", string(v),
		constraint.Enumeration("RTGS", "RTNS", "MPNS", "BOOK"))
}

// Priority3Code is the settlement urgency of an interbank instruction.
type Priority3Code string

func (v Priority3Code) Validate() error {
	return constraint.String("Priority3Code", string(v),
		constraint.Enumeration("URGT", "HIGH", "NORM"))
}

// PaymentTypeInformation28 qualifies the processing of an interbank
// instruction.
type PaymentTypeInformation28 struct {
	InstrPrty *common.Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannel2Code          `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []common.ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *common.LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *common.CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

// PaymentIdentification13 carries the references that travel with an
// interbank transaction, including the clearing system reference.
type PaymentIdentification13 struct {
	InstrId    *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId common.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *common.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	ClrSysRef  *common.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

// SettlementDateTimeIndication1 reports when an instruction was debited
// and credited.
type SettlementDateTimeIndication1 struct {
	DbtDtTm *string `xml:"DbtDtTm,omitempty" json:"DbtDtTm,omitempty"`
	CdtDtTm *string `xml:"CdtDtTm,omitempty" json:"CdtDtTm,omitempty"`
}

// SettlementTimeRequest2 asks for processing within specific times of the
// settlement day.
type SettlementTimeRequest2 struct {
	CLSTm  *string `xml:"CLSTm,omitempty" json:"CLSTm,omitempty"`
	TillTm *string `xml:"TillTm,omitempty" json:"TillTm,omitempty"`
	FrTm   *string `xml:"FrTm,omitempty" json:"FrTm,omitempty"`
	RjctTm *string `xml:"RjctTm,omitempty" json:"RjctTm,omitempty"`
}

// RemittanceInformation2 matches a collection to the obligation it
// settles, in unstructured form.
type RemittanceInformation2 struct {
	Ustrd []common.Max140Text `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

// CreditTransferTransaction66 groups the direct debits drawn for one
// creditor financial institution.
type CreditTransferTransaction66 struct {
	CdtId             common.Max35Text                                     `xml:"CdtId" json:"CdtId"`
	BtchBookg         *bool                                                `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	PmtTpInf          *PaymentTypeInformation28                            `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	TtlIntrBkSttlmAmt *common.ActiveCurrencyAndAmount                      `xml:"TtlIntrBkSttlmAmt,omitempty" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *string                                              `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmTmIndctn     *SettlementDateTimeIndication1                       `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification8 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification8 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	CdtrAgt           *common.BranchAndFinancialInstitutionIdentification8 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct       *common.CashAccount40                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              common.BranchAndFinancialInstitutionIdentification8  `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *common.CashAccount40                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr         *common.BranchAndFinancialInstitutionIdentification8 `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	DrctDbtTxInf      []DirectDebitTransactionInformation33                `xml:"DrctDbtTxInf" json:"DrctDbtTxInf"`
	SplmtryData       []common.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

// DirectDebitTransactionInformation33 is a single collection from one
// debtor financial institution.
type DirectDebitTransactionInformation33 struct {
	PmtId           PaymentIdentification13                              `xml:"PmtId" json:"PmtId"`
	PmtTpInf        *PaymentTypeInformation28                            `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt  common.ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt   *string                                              `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmPrty       *Priority3Code                                       `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn   *SettlementDateTimeIndication1                       `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	SttlmTmReq      *SettlementTimeRequest2                              `xml:"SttlmTmReq,omitempty" json:"SttlmTmReq,omitempty"`
	UltmtDbtr       *common.BranchAndFinancialInstitutionIdentification8 `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr            common.BranchAndFinancialInstitutionIdentification8  `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct        *common.CashAccount40                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt         *common.BranchAndFinancialInstitutionIdentification8 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct     *common.CashAccount40                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	InstrForDbtrAgt *common.Max210Text                                   `xml:"InstrForDbtrAgt,omitempty" json:"InstrForDbtrAgt,omitempty"`
	Purp            *common.Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf          *RemittanceInformation2                              `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
}
