package common

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/validate"
)

func constraintCode(t *testing.T, err error) iso20022.ErrorCode {
	t.Helper()
	var ce *iso20022.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not a ConstraintError", err)
	}
	return ce.Code
}

func TestTextBounds(t *testing.T) {
	tests := []struct {
		name  string
		value iso20022.Validator
		want  iso20022.ErrorCode // 0 means valid
	}{
		{"Max35Text ok", Max35Text("ACME-REF-0001"), 0},
		{"Max35Text empty", Max35Text(""), iso20022.CodeTooShort},
		{"Max35Text over", Max35Text(strings.Repeat("x", 36)), iso20022.CodeTooLong},
		{"Max35Text at bound", Max35Text(strings.Repeat("x", 35)), 0},
		{"Max140Text over", Max140Text(strings.Repeat("x", 141)), iso20022.CodeTooLong},
		{"Max2048Text ok", Max2048Text(strings.Repeat("x", 2048)), 0},
		{"Max15NumericText ok", Max15NumericText("42"), 0},
		{"Max15NumericText alpha", Max15NumericText("42a"), iso20022.CodePatternMismatch},
		{"Max15NumericText over", Max15NumericText("1234567890123456"), iso20022.CodePatternMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.want == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if code := constraintCode(t, err); code != tt.want {
				t.Errorf("code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestIdentifierPatterns(t *testing.T) {
	tests := []struct {
		name  string
		value iso20022.Validator
		ok    bool
	}{
		{"IBAN ok", IBAN2007Identifier("DE89370400440532013000"), true},
		{"IBAN lowercase country", IBAN2007Identifier("de89370400440532013000"), false},
		{"IBAN too short", IBAN2007Identifier("DE89"), false},
		{"BICFI 8", BICFIDec2014Identifier("DEUTDEFF"), true},
		{"BICFI 11", BICFIDec2014Identifier("DEUTDEFF500"), true},
		{"BICFI 9", BICFIDec2014Identifier("DEUTDEFF5"), false},
		{"AnyBIC ok", AnyBICDec2014Identifier("CHASUS33"), true},
		{"LEI ok", LEIIdentifier("529900T8BM49AURSDO55"), true},
		{"LEI bad check digits", LEIIdentifier("529900T8BM49AURSDOXX"), false},
		{"Country ok", CountryCode("DE"), true},
		{"Country three letters", CountryCode("DEU"), false},
		{"Currency ok", ActiveOrHistoricCurrencyCode("EUR"), true},
		{"Currency empty", ActiveOrHistoricCurrencyCode(""), false},
		{"UUID ok", UUIDv4Identifier("7a3c9f44-1b2c-4d5e-8f9a-0b1c2d3e4f5a"), true},
		{"UUID uppercase", UUIDv4Identifier("7A3C9F44-1B2C-4D5E-8F9A-0B1C2D3E4F5A"), false},
		{"UUID version 1", UUIDv4Identifier("7a3c9f44-1b2c-1d5e-8f9a-0b1c2d3e4f5a"), false},
		{"Exact4 ok", Exact4AlphaNumericText("RTG1"), true},
		{"Exact4 three", Exact4AlphaNumericText("RTG"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if code := constraintCode(t, err); code != iso20022.CodePatternMismatch {
					t.Errorf("code = %d, want %d", code, iso20022.CodePatternMismatch)
				}
			}
		})
	}
}

func TestPriority2Code(t *testing.T) {
	if err := PriorityHigh.Validate(); err != nil {
		t.Errorf("HIGH: %v", err)
	}
	err := Priority2Code("URGENT").Validate()
	if err == nil {
		t.Fatal("URGENT accepted")
	}
	if code := constraintCode(t, err); code != iso20022.CodeInvalidEnum {
		t.Errorf("code = %d, want %d", code, iso20022.CodeInvalidEnum)
	}
}

func TestAmountValidate(t *testing.T) {
	tests := []struct {
		name string
		amt  ActiveOrHistoricCurrencyAndAmount
		want iso20022.ErrorCode
	}{
		{"ok", ActiveOrHistoricCurrencyAndAmount{Ccy: "EUR", Value: 1234.56}, 0},
		{"zero ok", ActiveOrHistoricCurrencyAndAmount{Ccy: "JPY", Value: 0}, 0},
		{"empty currency", ActiveOrHistoricCurrencyAndAmount{Value: 10}, iso20022.CodePatternMismatch},
		{"negative", ActiveOrHistoricCurrencyAndAmount{Ccy: "EUR", Value: -0.01}, iso20022.CodeBelowMinimum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.amt.Validate()
			if tt.want == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if code := constraintCode(t, err); code != tt.want {
				t.Errorf("code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestAmountXMLRoundTrip(t *testing.T) {
	in := ActiveCurrencyAndAmount{Ccy: "USD", Value: 500000.25}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(in, xml.StartElement{Name: xml.Name{Local: "IntrBkSttlmAmt"}}); err != nil {
		t.Fatalf("EncodeElement: %v", err)
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := buf.String()
	if want := `<IntrBkSttlmAmt Ccy="USD">500000.25</IntrBkSttlmAmt>`; got != want {
		t.Errorf("encoded %s, want %s", got, want)
	}

	var out ActiveCurrencyAndAmount
	if err := xml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch:\n%s", diff)
	}
}

// A constraint failure deep inside a shared record surfaces through the
// propagator exactly as the leaf reports it in isolation.
func TestRecordPropagation(t *testing.T) {
	badIBAN := IBAN2007Identifier("not-an-iban")
	acct := CashAccount40{
		Id: &AccountIdentification4Choice{IBAN: &badIBAN},
	}

	err := validate.Record(acct)
	if err == nil {
		t.Fatal("invalid IBAN passed record validation")
	}
	var ve *iso20022.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	if got, want := ve.Error(), badIBAN.Validate().Error(); !strings.Contains(got, want) {
		t.Errorf("record error %q does not carry leaf error %q", got, want)
	}
}

func TestPartyIdentificationOptionalDepth(t *testing.T) {
	name := Max140Text("ACME Corporation")
	ctry := CountryCode("DE")
	bic := AnyBICDec2014Identifier("CHASUS33")
	party := PartyIdentification272{
		Nm:        &name,
		CtryOfRes: &ctry,
		Id:        &Party52Choice{OrgId: &OrganisationIdentification39{AnyBIC: &bic}},
	}

	if err := validate.Record(party); err != nil {
		t.Fatalf("valid party rejected: %v", err)
	}

	bad := LEIIdentifier("short")
	party.Id.OrgId.LEI = &bad
	if err := validate.Record(party); err == nil {
		t.Error("invalid LEI inside nested choice passed")
	}
}

func TestStrictChoiceOnSharedRecords(t *testing.T) {
	iban := IBAN2007Identifier("DE89370400440532013000")
	id := AccountIdentification4Choice{
		IBAN: &iban,
		Othr: &GenericAccountIdentification1{Id: Max34Text("12345")},
	}

	if err := validate.Record(id); err != nil {
		t.Fatalf("lenient propagator rejected double population: %v", err)
	}

	err := validate.Propagator{StrictChoices: true}.Record(id)
	if err == nil {
		t.Fatal("strict propagator accepted double population")
	}
	if code := constraintCode(t, err); code != iso20022.CodeChoiceConflict {
		t.Errorf("code = %d, want %d", code, iso20022.CodeChoiceConflict)
	}
}

func TestRequiredFieldsOnRecords(t *testing.T) {
	// MmbId is the only mandatory element of the member identification.
	err := validate.Required(ClearingSystemMemberIdentification2{})
	if err == nil {
		t.Fatal("empty member identification passed the required check")
	}
	var de *iso20022.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DecodeError", err)
	}
	if de.Code != iso20022.CodeMissingRequired {
		t.Errorf("code = %d, want %d", de.Code, iso20022.CodeMissingRequired)
	}
	if !strings.Contains(de.Error(), "MmbId") {
		t.Errorf("error %q does not name the missing field", de.Error())
	}
}
