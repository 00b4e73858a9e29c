// Package common holds the leaf types and shared building blocks that the
// message catalogs are composed from: bounded text, registered identifiers,
// currency codes, amounts, party and account records.
//
// Leaf types carry their own constraints through a Validate method; the
// validate package stops its walk at any type implementing it. Records and
// choices carry no method and are walked field by field.
package common

import (
	"github.com/openpayments/iso20022/constraint"
)

// Max15NumericText is a digit string of 1 to 15 characters.
type Max15NumericText string

func (v Max15NumericText) Validate() error {
	return constraint.String("Max15NumericText", string(v), max15NumericTextPattern)
}

var max15NumericTextPattern = constraint.MustPattern(`[0-9]{1,15}`)

// Max16Text is free text of 1 to 16 characters.
type Max16Text string

func (v Max16Text) Validate() error {
	return constraint.String("Max16Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(16))
}

// Max34Text is free text of 1 to 34 characters.
type Max34Text string

func (v Max34Text) Validate() error {
	return constraint.String("Max34Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(34))
}

// Max35Text is free text of 1 to 35 characters.
type Max35Text string

func (v Max35Text) Validate() error {
	return constraint.String("Max35Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(35))
}

// Max70Text is free text of 1 to 70 characters.
type Max70Text string

func (v Max70Text) Validate() error {
	return constraint.String("Max70Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(70))
}

// Max140Text is free text of 1 to 140 characters.
type Max140Text string

func (v Max140Text) Validate() error {
	return constraint.String("Max140Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(140))
}

// Max210Text is free text of 1 to 210 characters.
type Max210Text string

func (v Max210Text) Validate() error {
	return constraint.String("Max210Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(210))
}

// Max350Text is free text of 1 to 350 characters.
type Max350Text string

func (v Max350Text) Validate() error {
	return constraint.String("Max350Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(350))
}

// Max2048Text is free text of 1 to 2048 characters.
type Max2048Text string

func (v Max2048Text) Validate() error {
	return constraint.String("Max2048Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(2048))
}

// Max20000Text is free text of 1 to 20000 characters.
type Max20000Text string

func (v Max20000Text) Validate() error {
	return constraint.String("Max20000Text", string(v),
		constraint.MinLength(1), constraint.MaxLength(20000))
}

// Exact4AlphaNumericText is exactly four alphanumeric characters.
type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate() error {
	return constraint.String("Exact4AlphaNumericText", string(v), exact4AlphaNumericPattern)
}

var exact4AlphaNumericPattern = constraint.MustPattern(`[a-zA-Z0-9]{4}`)

// IBAN2007Identifier is an international bank account number per ISO 13616.
type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate() error {
	return constraint.String("IBAN2007Identifier", string(v), ibanPattern)
}

var ibanPattern = constraint.MustPattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)

// BICFIDec2014Identifier is a financial institution BIC per ISO 9362.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate() error {
	return constraint.String("BICFIDec2014Identifier", string(v), bicPattern)
}

// AnyBICDec2014Identifier is a BIC of a financial or non-financial
// institution per ISO 9362.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate() error {
	return constraint.String("AnyBICDec2014Identifier", string(v), bicPattern)
}

var bicPattern = constraint.MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)

// LEIIdentifier is a legal entity identifier per ISO 17442.
type LEIIdentifier string

func (v LEIIdentifier) Validate() error {
	return constraint.String("LEIIdentifier", string(v), leiPattern)
}

var leiPattern = constraint.MustPattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)

// CountryCode is a two-letter country code per ISO 3166.
type CountryCode string

func (v CountryCode) Validate() error {
	return constraint.String("CountryCode", string(v), countryPattern)
}

var countryPattern = constraint.MustPattern(`[A-Z]{2,2}`)

// ActiveCurrencyCode is a three-letter code of a currency in active use,
// per ISO 4217.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate() error {
	return constraint.String("ActiveCurrencyCode", string(v), currencyPattern)
}

// ActiveOrHistoricCurrencyCode is a three-letter code of a current or
// withdrawn currency, per ISO 4217.
type ActiveOrHistoricCurrencyCode string

func (v ActiveOrHistoricCurrencyCode) Validate() error {
	return constraint.String("ActiveOrHistoricCurrencyCode", string(v), currencyPattern)
}

var currencyPattern = constraint.MustPattern(`[A-Z]{3,3}`)

// UUIDv4Identifier is a lowercase version-4 UUID, used for the UETR of a
// payment transaction.
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate() error {
	return constraint.String("UUIDv4Identifier", string(v), uuidPattern)
}

var uuidPattern = constraint.MustPattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`)

// ExternalAccountIdentification1Code is a code from the external account
// identification scheme list.
type ExternalAccountIdentification1Code string

func (v ExternalAccountIdentification1Code) Validate() error {
	return constraint.String("ExternalAccountIdentification1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalCashAccountType1Code is a code from the external cash account
// type list.
type ExternalCashAccountType1Code string

func (v ExternalCashAccountType1Code) Validate() error {
	return constraint.String("ExternalCashAccountType1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalCategoryPurpose1Code is a code from the external category
// purpose list.
type ExternalCategoryPurpose1Code string

func (v ExternalCategoryPurpose1Code) Validate() error {
	return constraint.String("ExternalCategoryPurpose1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalClearingSystemIdentification1Code is a code from the external
// clearing system identification list.
type ExternalClearingSystemIdentification1Code string

func (v ExternalClearingSystemIdentification1Code) Validate() error {
	return constraint.String("ExternalClearingSystemIdentification1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(5))
}

// ExternalFinancialInstitutionIdentification1Code is a code from the
// external financial institution identification list.
type ExternalFinancialInstitutionIdentification1Code string

func (v ExternalFinancialInstitutionIdentification1Code) Validate() error {
	return constraint.String("ExternalFinancialInstitutionIdentification1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalLocalInstrument1Code is a code from the external local
// instrument list.
type ExternalLocalInstrument1Code string

func (v ExternalLocalInstrument1Code) Validate() error {
	return constraint.String("ExternalLocalInstrument1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(35))
}

// ExternalProxyAccountType1Code is a code from the external proxy account
// type list.
type ExternalProxyAccountType1Code string

func (v ExternalProxyAccountType1Code) Validate() error {
	return constraint.String("ExternalProxyAccountType1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalPurpose1Code is a code from the external purpose list.
type ExternalPurpose1Code string

func (v ExternalPurpose1Code) Validate() error {
	return constraint.String("ExternalPurpose1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// ExternalServiceLevel1Code is a code from the external service level list.
type ExternalServiceLevel1Code string

func (v ExternalServiceLevel1Code) Validate() error {
	return constraint.String("ExternalServiceLevel1Code", string(v),
		constraint.MinLength(1), constraint.MaxLength(4))
}

// Priority2Code is the urgency a party gives an instruction.
type Priority2Code string

const (
	PriorityHigh Priority2Code = "HIGH"
	PriorityNorm Priority2Code = "NORM"
)

func (v Priority2Code) Validate() error {
	return constraint.String("Priority2Code", string(v),
		constraint.Enumeration("HIGH", "NORM"))
}
