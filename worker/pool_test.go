package worker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/camt"
	"github.com/openpayments/iso20022/common"
	"github.com/openpayments/iso20022/document"
	"github.com/openpayments/iso20022/engine"
	"github.com/openpayments/iso20022/wire"
)

func ackPayload(t *testing.T, schedule string) []byte {
	t.Helper()
	ref := common.Max35Text(schedule)
	doc, err := document.New(&camt.PayInEventAcknowledgementV02{
		MsgId:   "ACK-0001",
		AckDtls: camt.AcknowledgementDetails1Choice{PayInSchdlRef: &ref},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	payload, err := wire.JSON{}.Encode(doc.Tag(), doc.Message())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return payload
}

func TestPoolProcessesBatch(t *testing.T) {
	proc := engine.New(wire.JSON{})
	pool := NewPool(proc, 4)

	const good, bad = 8, 3
	for i := 0; i < good; i++ {
		if !pool.Submit(Job{ID: fmt.Sprintf("good-%d", i), Payload: ackPayload(t, "SCHDL-01")}) {
			t.Fatalf("Submit rejected job %d", i)
		}
	}
	for i := 0; i < bad; i++ {
		// Empty schedule reference fails the minimum length constraint.
		if !pool.Submit(Job{ID: fmt.Sprintf("bad-%d", i), Payload: ackPayload(t, "")}) {
			t.Fatalf("Submit rejected job %d", i)
		}
	}

	batch := pool.CloseAndWait()

	if batch.TotalJobs != good+bad || batch.CompletedJobs != good+bad {
		t.Errorf("jobs = %d submitted / %d completed, want %d", batch.TotalJobs, batch.CompletedJobs, good+bad)
	}
	if batch.FailedJobs != bad {
		t.Errorf("FailedJobs = %d, want %d", batch.FailedJobs, bad)
	}
	if !batch.HasFailures() {
		t.Error("HasFailures() = false")
	}

	for _, r := range batch.Results {
		if r.Err == nil {
			continue
		}
		var ve *iso20022.ValidationError
		if !errors.As(r.Err, &ve) {
			t.Errorf("job %s failed with %v, want ValidationError", r.ID, r.Err)
		}
	}
}

func TestPoolRejectsAfterClose(t *testing.T) {
	pool := NewPool(engine.New(wire.JSON{}), 1)
	pool.Close()

	if pool.Submit(Job{ID: "late", Payload: ackPayload(t, "SCHDL-01")}) {
		t.Error("Submit accepted a job after Close")
	}
	if pool.SubmitAsync(Job{ID: "late", Payload: ackPayload(t, "SCHDL-01")}) {
		t.Error("SubmitAsync accepted a job after Close")
	}
}

func TestPoolWithoutProcessor(t *testing.T) {
	pool := NewPool(nil, 1)
	pool.Submit(Job{ID: "orphan", Payload: []byte("{}")})

	batch := pool.CloseAndWait()
	if len(batch.Results) != 1 || !errors.Is(batch.Results[0].Err, ErrNoProcessor) {
		t.Errorf("results = %+v, want single ErrNoProcessor", batch.Results)
	}
}

func TestPoolWorkerCountFromProcessorOptions(t *testing.T) {
	proc := engine.New(wire.JSON{}, iso20022.WithWorkerCount(3))
	pool := NewPool(proc, 0)
	defer pool.Close()

	if got := pool.Stats().Workers; got != 3 {
		t.Errorf("Workers = %d, want 3 from processor options", got)
	}
}

func TestPoolStats(t *testing.T) {
	pool := NewPool(engine.New(wire.JSON{}), 2)
	for i := 0; i < 4; i++ {
		pool.Submit(Job{ID: fmt.Sprintf("j-%d", i), Payload: ackPayload(t, "SCHDL-01")})
	}
	pool.CloseAndWait()

	stats := pool.Stats()
	if stats.Workers != 2 {
		t.Errorf("Workers = %d, want 2", stats.Workers)
	}
	if stats.JobsSubmitted != 4 || stats.JobsCompleted != 4 {
		t.Errorf("jobs = %d submitted / %d completed, want 4/4", stats.JobsSubmitted, stats.JobsCompleted)
	}
	if stats.JobsFailed != 0 {
		t.Errorf("JobsFailed = %d, want 0", stats.JobsFailed)
	}
}
