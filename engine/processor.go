// Package engine composes a wire codec, processing options, and metrics
// into a message processor: one value that decodes, validates, and encodes
// envelope documents.
package engine

import (
	"context"
	"time"

	"github.com/openpayments/iso20022"
	"github.com/openpayments/iso20022/document"
	"github.com/openpayments/iso20022/validate"
	"github.com/openpayments/iso20022/wire"
)

// Processor handles tagged message payloads over one codec. It is
// stateless apart from its metrics and safe for concurrent use.
type Processor struct {
	codec   wire.Codec
	options *iso20022.Options
	prop    validate.Propagator
	metrics *iso20022.Metrics
}

// New creates a Processor for the given codec.
func New(codec wire.Codec, opts ...iso20022.Option) *Processor {
	options := iso20022.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Processor{
		codec:   codec,
		options: options,
		prop:    validate.Propagator{StrictChoices: options.StrictChoices},
		metrics: iso20022.NewMetrics(),
	}
}

// Decode builds a document from a payload whose root tag is already known.
func (p *Processor) Decode(tag string, data []byte) (*document.Document, error) {
	doc, err := document.Decode(p.codec, tag, data)
	if p.options.CollectMetrics {
		p.metrics.RecordDecode(err == nil)
	}
	return doc, err
}

// DecodeBytes discovers the root tag from the payload itself, then decodes.
func (p *Processor) DecodeBytes(data []byte) (*document.Document, error) {
	tag, err := p.codec.Peek(data)
	if err != nil {
		if p.options.CollectMetrics {
			p.metrics.RecordDecode(false)
		}
		return nil, err
	}
	return p.Decode(tag, data)
}

// Encode serializes a document under its originating tag.
func (p *Processor) Encode(doc *document.Document) ([]byte, error) {
	data, err := document.Encode(p.codec, doc)
	if p.options.CollectMetrics {
		p.metrics.RecordEncode(err == nil)
	}
	return data, err
}

// Validate walks the document body and reports the first constraint
// violation, honoring the processor's choice strictness.
func (p *Processor) Validate(doc *document.Document) error {
	start := time.Now()
	err := doc.ValidateWith(p.prop)
	if p.options.CollectMetrics {
		p.metrics.RecordValidation(time.Since(start), err == nil)
	}
	return err
}

// ValidateBytes decodes and validates a payload in one step. It is the
// seam the worker pool and stream reader run on; ctx lets a batch abandon
// queued payloads.
func (p *Processor) ValidateBytes(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := p.DecodeBytes(data)
	if err != nil {
		return err
	}
	return p.Validate(doc)
}

// Codec returns the codec the processor serializes with.
func (p *Processor) Codec() wire.Codec {
	return p.codec
}

// Options returns the processor's configuration.
func (p *Processor) Options() *iso20022.Options {
	return p.options
}

// Metrics returns the processor's metrics.
func (p *Processor) Metrics() *iso20022.Metrics {
	return p.metrics
}
