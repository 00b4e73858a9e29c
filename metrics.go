package iso20022

import (
	"sync/atomic"
	"time"
)

// Metrics tracks processing counters using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	decodesTotal   atomic.Uint64
	decodeFailures atomic.Uint64

	encodesTotal   atomic.Uint64
	encodeFailures atomic.Uint64

	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing across validations, stored as nanoseconds
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordDecode records a decode attempt.
func (m *Metrics) RecordDecode(ok bool) {
	m.decodesTotal.Add(1)
	if !ok {
		m.decodeFailures.Add(1)
	}
}

// RecordEncode records an encode attempt.
func (m *Metrics) RecordEncode(ok bool) {
	m.encodesTotal.Add(1)
	if !ok {
		m.encodeFailures.Add(1)
	}
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	for {
		cur := m.validationTimeMin.Load()
		if ns >= cur || m.validationTimeMin.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := m.validationTimeMax.Load()
		if ns <= cur || m.validationTimeMax.CompareAndSwap(cur, ns) {
			break
		}
	}
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	DecodesTotal   uint64
	DecodeFailures uint64

	EncodesTotal   uint64
	EncodeFailures uint64

	ValidationsTotal uint64
	ValidationsValid uint64

	ValidationTimeAvg time.Duration
	ValidationTimeMin time.Duration
	ValidationTimeMax time.Duration
}

// Snapshot returns a consistent-enough copy of the counters for reporting.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		DecodesTotal:     m.decodesTotal.Load(),
		DecodeFailures:   m.decodeFailures.Load(),
		EncodesTotal:     m.encodesTotal.Load(),
		EncodeFailures:   m.encodeFailures.Load(),
		ValidationsTotal: m.validationsTotal.Load(),
		ValidationsValid: m.validationsValid.Load(),
	}

	if s.ValidationsTotal > 0 {
		s.ValidationTimeAvg = time.Duration(m.validationTimeTotal.Load() / s.ValidationsTotal)
		s.ValidationTimeMax = time.Duration(m.validationTimeMax.Load())
		if min := m.validationTimeMin.Load(); min != ^uint64(0) {
			s.ValidationTimeMin = time.Duration(min)
		}
	}
	return s
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.decodesTotal.Store(0)
	m.decodeFailures.Store(0)
	m.encodesTotal.Store(0)
	m.encodeFailures.Store(0)
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
}
