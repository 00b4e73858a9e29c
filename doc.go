// Package iso20022 provides typed data binding for the ISO 20022 financial
// message family: decoding wire payloads into strongly typed records,
// re-encoding them byte-faithfully, and validating every populated field
// against the constraints the published schemas declare.
//
// # Quick Start
//
//	import (
//	    "github.com/openpayments/iso20022/engine"
//	    "github.com/openpayments/iso20022/wire"
//	)
//
//	proc := engine.New(wire.XML{})
//
//	doc, err := proc.DecodeBytes(payload)
//	if err != nil {
//	    log.Fatal(err) // malformed wire, missing required field, unknown tag
//	}
//	if err := proc.Validate(doc); err != nil {
//	    // advisory: the document decoded fine but a field violates a rule
//	}
//
// # Structure
//
//   - constraint: value-level rules (pattern, length, numeric bounds,
//     enumerations) with stable numeric error codes
//   - validate: the recursive propagator that applies constraints across
//     optional, choice, and list-typed composite records, fail-fast
//   - wire: the serialization adapter boundary (XML and JSON codecs)
//   - document: the closed tagged union over every registered message root
//   - camt, pacs, pain, admi, common: message schema bindings
//   - engine, worker, stream: processing orchestration, parallel batches,
//     and streaming input
//
// # Error Taxonomy
//
// DecodeError is fatal for the message that produced it; no partial
// document is ever returned. ConstraintError and ValidationError are
// advisory and carry stable numeric codes (1001 length below minimum,
// 1002 above maximum, 1003/1004 numeric bounds, 1005 pattern, 1006
// enumeration, 1007 strict choice; 9xxx decode failures). Propagation is
// bottom-up, fail-fast, first-error-wins.
//
// # Concurrency
//
// Every operation is synchronous, pure, and stateless. Arbitrarily many
// documents may be processed concurrently without coordination; the worker
// package exploits this for batch throughput.
package iso20022
