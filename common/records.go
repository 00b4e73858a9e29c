package common

// SupplementaryData1 carries additional information as a schema-defined
// envelope next to the structured message content.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

// SupplementaryDataEnvelope1 is a free-form extension point. Its content is
// defined by the supplementary data schema, not by the message catalog, so
// it binds to nothing here.
type SupplementaryDataEnvelope1 struct{}

// AccountIdentification4Choice identifies an account by IBAN or by a
// domestic scheme.
type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier            `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (AccountIdentification4Choice) IsChoice() {}

// AccountSchemeName1Choice names the scheme behind a domestic account
// identification.
type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (AccountSchemeName1Choice) IsChoice() {}

// GenericAccountIdentification1 is an account identification under a
// domestic or proprietary scheme.
type GenericAccountIdentification1 struct {
	Id      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

// FinancialIdentificationSchemeName1Choice names the scheme behind a
// financial institution identification.
type FinancialIdentificationSchemeName1Choice struct {
	Cd    *ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (FinancialIdentificationSchemeName1Choice) IsChoice() {}

// GenericFinancialIdentification1 identifies a financial institution under
// a scheme other than BIC or LEI.
type GenericFinancialIdentification1 struct {
	Id      Max35Text                                 `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

// ClearingSystemIdentification2Choice names a clearing system by registered
// code or proprietary identification.
type ClearingSystemIdentification2Choice struct {
	Cd    *ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ClearingSystemIdentification2Choice) IsChoice() {}

// ClearingSystemMemberIdentification2 identifies a member of a clearing
// system.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

// PostalAddress27 locates a party by postal address.
type PostalAddress27 struct {
	Dept        *Max70Text   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	StrtNm      *Max140Text  `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text   `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *Max16Text   `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max140Text  `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text   `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text  `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

// BranchData5 identifies a specific branch of a financial institution.
type BranchData5 struct {
	Id      *Max35Text       `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *LEIIdentifier   `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress27 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

// FinancialInstitutionIdentification23 identifies a financial institution
// by BIC, clearing system membership, LEI, name and address, or a
// proprietary scheme.
type FinancialInstitutionIdentification23 struct {
	BICFI       *BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *Max140Text                          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress27                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

// BranchAndFinancialInstitutionIdentification8 identifies an agent,
// optionally down to the branch.
type BranchAndFinancialInstitutionIdentification8 struct {
	FinInstnId FinancialInstitutionIdentification23 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData5                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

// CashAccountType2Choice names the nature of a cash account.
type CashAccountType2Choice struct {
	Cd    *ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (CashAccountType2Choice) IsChoice() {}

// ProxyAccountType1Choice names the scheme of a proxy account identifier.
type ProxyAccountType1Choice struct {
	Cd    *ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ProxyAccountType1Choice) IsChoice() {}

// ProxyAccountIdentification1 is an alias for an account, such as a phone
// number or email address registered with a proxy service.
type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text              `xml:"Id" json:"Id"`
}

// CashAccount40 describes a cash account held at a financial institution.
type CashAccount40 struct {
	Id   *AccountIdentification4Choice `xml:"Id,omitempty" json:"Id,omitempty"`
	Tp   *CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

// OrganisationIdentification39 identifies an organisation by BIC or LEI.
type OrganisationIdentification39 struct {
	AnyBIC *AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier           `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

// DateAndPlaceOfBirth1 identifies a person by date and place of birth.
type DateAndPlaceOfBirth1 struct {
	BirthDt     string      `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

// PersonIdentification18 identifies a private person.
type PersonIdentification18 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1 `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
}

// Party52Choice identifies a party as an organisation or a private person.
type Party52Choice struct {
	OrgId  *OrganisationIdentification39 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification18       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (Party52Choice) IsChoice() {}

// PartyIdentification272 identifies a party to a payment.
type PartyIdentification272 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress27 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party52Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
}

// DateAndDateTime2Choice expresses a point in time as a date or a full
// timestamp.
type DateAndDateTime2Choice struct {
	Dt   *string `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *string `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (DateAndDateTime2Choice) IsChoice() {}

// EquivalentAmount2 instructs an amount in the account currency to be
// transferred in another currency.
type EquivalentAmount2 struct {
	Amt      ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyOfTrf ActiveOrHistoricCurrencyCode      `xml:"CcyOfTrf" json:"CcyOfTrf"`
}

// AmountType4Choice expresses the instructed amount directly or as an
// equivalent in another currency.
type AmountType4Choice struct {
	InstdAmt *ActiveOrHistoricCurrencyAndAmount `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	EqvtAmt  *EquivalentAmount2                 `xml:"EqvtAmt,omitempty" json:"EqvtAmt,omitempty"`
}

func (AmountType4Choice) IsChoice() {}

// ServiceLevel8Choice names the agreed service level of an instruction.
type ServiceLevel8Choice struct {
	Cd    *ExternalServiceLevel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (ServiceLevel8Choice) IsChoice() {}

// LocalInstrument2Choice names the local instrument governing an
// instruction.
type LocalInstrument2Choice struct {
	Cd    *ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (LocalInstrument2Choice) IsChoice() {}

// CategoryPurpose1Choice names the high-level purpose of an instruction.
type CategoryPurpose1Choice struct {
	Cd    *ExternalCategoryPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (CategoryPurpose1Choice) IsChoice() {}

// Purpose2Choice names the underlying reason for a payment.
type Purpose2Choice struct {
	Cd    *ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (Purpose2Choice) IsChoice() {}
