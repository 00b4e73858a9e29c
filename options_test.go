package iso20022

import (
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.StrictChoices {
		t.Error("StrictChoices should default to false")
	}
	if o.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d, want %d", o.WorkerCount, runtime.NumCPU())
	}
	if !o.CollectMetrics {
		t.Error("CollectMetrics should default to true")
	}
}

func TestOptionsApply(t *testing.T) {
	o := DefaultOptions()
	for _, opt := range []Option{
		WithStrictChoices(true),
		WithWorkerCount(3),
		WithMetrics(false),
	} {
		opt(o)
	}

	if !o.StrictChoices {
		t.Error("WithStrictChoices(true) not applied")
	}
	if o.WorkerCount != 3 {
		t.Errorf("WorkerCount = %d, want 3", o.WorkerCount)
	}
	if o.CollectMetrics {
		t.Error("WithMetrics(false) not applied")
	}
}

func TestWithWorkerCountNonPositive(t *testing.T) {
	o := DefaultOptions()
	WithWorkerCount(0)(o)
	if o.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d, want NumCPU fallback", o.WorkerCount)
	}
}
