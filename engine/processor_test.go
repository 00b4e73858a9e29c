package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/camt"
	"github.com/openpayments/iso20022/common"
	"github.com/openpayments/iso20022/document"
	"github.com/openpayments/iso20022/wire"
)

func ackPayload(t *testing.T, codec wire.Codec, schedule string) []byte {
	t.Helper()
	ref := common.Max35Text(schedule)
	doc, err := document.New(&camt.PayInEventAcknowledgementV02{
		MsgId:   "ACK-0001",
		AckDtls: camt.AcknowledgementDetails1Choice{PayInSchdlRef: &ref},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	payload, err := codec.Encode(doc.Tag(), doc.Message())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return payload
}

func TestProcessorRoundTrip(t *testing.T) {
	for _, codec := range []wire.Codec{wire.XML{}, wire.JSON{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			p := New(codec)
			payload := ackPayload(t, codec, "SCHDL-01")

			doc, err := p.DecodeBytes(payload)
			if err != nil {
				t.Fatalf("DecodeBytes: %v", err)
			}
			if doc.Tag() != "PayInEvtAck" {
				t.Errorf("Tag = %q", doc.Tag())
			}
			if err := p.Validate(doc); err != nil {
				t.Errorf("Validate: %v", err)
			}

			out, err := p.Encode(doc)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			tag, err := codec.Peek(out)
			if err != nil || tag != "PayInEvtAck" {
				t.Errorf("re-encoded tag = %q, err = %v", tag, err)
			}
		})
	}
}

func TestProcessorMetrics(t *testing.T) {
	p := New(wire.XML{})
	payload := ackPayload(t, wire.XML{}, "SCHDL-01")

	doc, err := p.DecodeBytes(payload)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if _, err := p.DecodeBytes([]byte("<nope")); err == nil {
		t.Fatal("malformed payload decoded")
	}
	if err := p.Validate(doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := p.Encode(doc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	s := p.Metrics().Snapshot()
	if s.DecodesTotal != 2 || s.DecodeFailures != 1 {
		t.Errorf("decodes = %d/%d failures, want 2/1", s.DecodesTotal, s.DecodeFailures)
	}
	if s.ValidationsTotal != 1 || s.ValidationsValid != 1 {
		t.Errorf("validations = %d/%d valid, want 1/1", s.ValidationsTotal, s.ValidationsValid)
	}
	if s.EncodesTotal != 1 || s.EncodeFailures != 0 {
		t.Errorf("encodes = %d/%d failures, want 1/0", s.EncodesTotal, s.EncodeFailures)
	}
}

func TestProcessorMetricsDisabled(t *testing.T) {
	p := New(wire.XML{}, iso20022.WithMetrics(false))
	payload := ackPayload(t, wire.XML{}, "SCHDL-01")

	if _, err := p.DecodeBytes(payload); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if s := p.Metrics().Snapshot(); s.DecodesTotal != 0 {
		t.Errorf("metrics recorded while disabled: %+v", s)
	}
}

func TestProcessorStrictChoices(t *testing.T) {
	schedule := common.Max35Text("SCHDL-01")
	call := common.Max35Text("CALL-01")
	doc, err := document.New(&camt.PayInEventAcknowledgementV02{
		MsgId: "ACK-0001",
		AckDtls: camt.AcknowledgementDetails1Choice{
			PayInSchdlRef: &schedule,
			PayInCallRef:  &call,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := New(wire.XML{}).Validate(doc); err != nil {
		t.Fatalf("lenient processor rejected document: %v", err)
	}

	err = New(wire.XML{}, iso20022.WithStrictChoices(true)).Validate(doc)
	var ve *iso20022.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	if ve.Code() != iso20022.CodeChoiceConflict {
		t.Errorf("code = %d, want %d", ve.Code(), iso20022.CodeChoiceConflict)
	}
}

func TestValidateBytes(t *testing.T) {
	p := New(wire.JSON{})
	payload := ackPayload(t, wire.JSON{}, "SCHDL-01")

	if err := p.ValidateBytes(context.Background(), payload); err != nil {
		t.Errorf("ValidateBytes: %v", err)
	}

	bad := ackPayload(t, wire.JSON{}, "") // empty schedule reference
	err := p.ValidateBytes(context.Background(), bad)
	var ve *iso20022.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	if ve.Code() != iso20022.CodeTooShort {
		t.Errorf("code = %d, want %d", ve.Code(), iso20022.CodeTooShort)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.ValidateBytes(ctx, payload); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context returned %v", err)
	}
}
