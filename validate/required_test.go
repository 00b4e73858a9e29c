package validate

import (
	"errors"
	"testing"

	"github.com/openpayments/iso20022"
)

type reqInner struct {
	Ref  string  `xml:"Ref"`
	Note *string `xml:"Note,omitempty"`
}

type reqRecord struct {
	ID    string     `xml:"Id"`
	Inner reqInner   `xml:"Innr"`
	Opt   *reqInner  `xml:"Opt,omitempty"`
	Items []reqInner `xml:"Itm"`
	Extra []reqInner `xml:"Xtra,omitempty"`
}

func decodeCause(t *testing.T, err error) *iso20022.DecodeError {
	t.Helper()
	var de *iso20022.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DecodeError", err)
	}
	return de
}

func TestRequiredComplete(t *testing.T) {
	rec := reqRecord{
		ID:    "1",
		Inner: reqInner{Ref: "r"},
		Items: []reqInner{{Ref: "a"}},
	}
	if err := Required(rec); err != nil {
		t.Errorf("Required = %v, want nil", err)
	}
}

func TestRequiredViolations(t *testing.T) {
	complete := func() reqRecord {
		return reqRecord{
			ID:    "1",
			Inner: reqInner{Ref: "r"},
			Items: []reqInner{{Ref: "a"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*reqRecord)
		message string
	}{
		{
			name:    "missing top-level scalar",
			mutate:  func(r *reqRecord) { r.ID = "" },
			message: "reqRecord.Id is required",
		},
		{
			name:    "missing nested scalar",
			mutate:  func(r *reqRecord) { r.Inner.Ref = "" },
			message: "reqInner.Ref is required",
		},
		{
			name:    "empty required list",
			mutate:  func(r *reqRecord) { r.Items = nil },
			message: "reqRecord.Itm is required",
		},
		{
			name:    "missing scalar inside list element",
			mutate:  func(r *reqRecord) { r.Items = []reqInner{{Ref: "a"}, {}} },
			message: "reqInner.Ref is required",
		},
		{
			name:    "missing scalar inside populated optional",
			mutate:  func(r *reqRecord) { r.Opt = &reqInner{} },
			message: "reqInner.Ref is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := complete()
			tt.mutate(&rec)

			err := Required(rec)
			if err == nil {
				t.Fatal("Required = nil, want DecodeError")
			}
			de := decodeCause(t, err)
			if de.Code != iso20022.CodeMissingRequired {
				t.Errorf("code = %d, want %d", de.Code, iso20022.CodeMissingRequired)
			}
			if de.Message != tt.message {
				t.Errorf("message = %q, want %q", de.Message, tt.message)
			}
		})
	}
}

func TestRequiredOptionalAbsent(t *testing.T) {
	rec := reqRecord{
		ID:    "1",
		Inner: reqInner{Ref: "r"},
		Items: []reqInner{{Ref: "a"}},
		// Opt and Extra absent, Note absent inside Inner
	}
	if err := Required(rec); err != nil {
		t.Errorf("absent optionals flagged: %v", err)
	}
}

func TestRequiredNil(t *testing.T) {
	if err := Required(nil); err != nil {
		t.Errorf("Required(nil) = %v, want nil", err)
	}
}
