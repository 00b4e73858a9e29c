// Package pain binds the payment initiation messages. The catalog currently
// carries pain.001.001.12, the customer credit transfer initiation.
package pain

import (
	"github.com/openpayments/iso20022/common"
	"github.com/openpayments/iso20022/constraint"
)

// CustomerCreditTransferInitiationV12 is the pain.001.001.12 message body:
// an initiating party instructs its agent to move funds from debtor
// accounts to creditors.
type CustomerCreditTransferInitiationV12 struct {
	GrpHdr      GroupHeader114              `xml:"GrpHdr" json:"GrpHdr"`
	PmtInf      []PaymentInstruction44      `xml:"PmtInf" json:"PmtInf"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

// GroupHeader114 is the set of characteristics shared by every instruction
// in the message.
type GroupHeader114 struct {
	MsgId    common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm  string                                               `xml:"CreDtTm" json:"CreDtTm"`
	NbOfTxs  common.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum  *float64                                             `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	InitgPty common.PartyIdentification272                        `xml:"InitgPty" json:"InitgPty"`
	FwdgAgt  *common.BranchAndFinancialInstitutionIdentification8 `xml:"FwdgAgt,omitempty" json:"FwdgAgt,omitempty"`
}

// PaymentMethod3Code selects the means of payment for an instruction.
type PaymentMethod3Code string

const (
	PaymentMethodCheque   PaymentMethod3Code = "CHK"
	PaymentMethodTransfer PaymentMethod3Code = "TRF"
	PaymentMethodAdvice   PaymentMethod3Code = "TRA"
)

func (v PaymentMethod3Code) Validate() error {
	return constraint.String("PaymentMethod3Code", string(v),
		constraint.Enumeration("CHK", "TRF", "TRA"))
}

// ChargeBearerType1Code states which party bears the transaction charges.
type ChargeBearerType1Code string

func (v ChargeBearerType1Code) Validate() error {
	return constraint.String("ChargeBearerType1Code", string(v),
		constraint.Enumeration("DEBT", "CRED", "SHAR", "SLEV"))
}

// PaymentTypeInformation26 qualifies the processing of an instruction.
type PaymentTypeInformation26 struct {
	InstrPrty *common.Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	SvcLvl    []common.ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *common.LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *common.CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

// PaymentIdentification6 carries the references that travel with a
// transaction end to end.
type PaymentIdentification6 struct {
	InstrId    *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId common.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	UETR       *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
}

// RemittanceInformation22 lets the debtor tell the creditor what the
// payment settles. Only the unstructured form is bound.
type RemittanceInformation22 struct {
	Ustrd []common.Max140Text `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

// PaymentInstruction44 groups transactions drawn on one debtor account for
// one requested execution date.
type PaymentInstruction44 struct {
	PmtInfId    common.Max35Text                                     `xml:"PmtInfId" json:"PmtInfId"`
	PmtMtd      PaymentMethod3Code                                   `xml:"PmtMtd" json:"PmtMtd"`
	BtchBookg   *bool                                                `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs     *common.Max15NumericText                             `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum     *float64                                             `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	PmtTpInf    *PaymentTypeInformation26                            `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	ReqdExctnDt common.DateAndDateTime2Choice                        `xml:"ReqdExctnDt" json:"ReqdExctnDt"`
	Dbtr        common.PartyIdentification272                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct    common.CashAccount40                                 `xml:"DbtrAcct" json:"DbtrAcct"`
	DbtrAgt     common.BranchAndFinancialInstitutionIdentification8  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct *common.CashAccount40                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	UltmtDbtr   *common.PartyIdentification272                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	ChrgBr      *ChargeBearerType1Code                               `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	ChrgsAcct   *common.CashAccount40                                `xml:"ChrgsAcct,omitempty" json:"ChrgsAcct,omitempty"`
	CdtTrfTxInf []CreditTransferTransaction61                        `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

// CreditTransferTransaction61 is a single credit to one creditor within an
// instruction.
type CreditTransferTransaction61 struct {
	PmtId          PaymentIdentification6                                `xml:"PmtId" json:"PmtId"`
	PmtTpInf       *PaymentTypeInformation26                             `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	Amt            common.AmountType4Choice                              `xml:"Amt" json:"Amt"`
	ChrgBr         *ChargeBearerType1Code                                `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	UltmtDbtr      *common.PartyIdentification272                        `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	IntrmyAgt1     *common.BranchAndFinancialInstitutionIdentification8  `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct *common.CashAccount40                                 `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	CdtrAgt        *common.BranchAndFinancialInstitutionIdentification8  `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct    *common.CashAccount40                                 `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr           *common.PartyIdentification272                        `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct       *common.CashAccount40                                 `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr      *common.PartyIdentification272                        `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	Purp           *common.Purpose2Choice                                `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf         *RemittanceInformation22                              `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	SplmtryData    []common.SupplementaryData1                           `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}
