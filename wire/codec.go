// Package wire is the serialization adapter between raw payloads and typed
// message records. The document envelope depends only on the Codec
// contract; tokenizing belongs to the codec implementations.
package wire

// Codec converts between wire payloads and typed records. Implementations
// must be stateless and safe for concurrent use.
type Codec interface {
	// Name identifies the wire format, e.g. "xml" or "json".
	Name() string

	// Encode renders v as the wire element named tag.
	Encode(tag string, v any) ([]byte, error)

	// Decode parses the element named tag from data into v. Failures are
	// reported as DecodeError with code 9001.
	Decode(tag string, data []byte, v any) error

	// Peek reports the root tag of data without decoding the body.
	Peek(data []byte) (string, error)
}
