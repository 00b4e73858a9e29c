package wire

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/openpayments/iso20022"
)

// JSON encodes and decodes messages in the externally tagged JSON
// representation: a single-key object whose key is the message root tag
// and whose value is the message body.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string {
	return "json"
}

// Encode renders v as {"<tag>": <body>}.
func (JSON) Encode(tag string, v any) ([]byte, error) {
	out, err := gojson.Marshal(map[string]any{tag: v})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", tag, err)
	}
	return out, nil
}

// Decode parses the body keyed by tag from data into v.
func (JSON) Decode(tag string, data []byte, v any) error {
	env, err := envelope(data)
	if err != nil {
		return err
	}
	body, ok := env[tag]
	if !ok {
		return iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("payload is not tagged with %q", tag))
	}
	if err := gojson.Unmarshal(body, v); err != nil {
		return iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("malformed %s payload: %v", tag, err))
	}
	return nil
}

// Peek reports the single root tag of data.
func (JSON) Peek(data []byte) (string, error) {
	env, err := envelope(data)
	if err != nil {
		return "", err
	}
	if len(env) != 1 {
		return "", iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("payload must carry exactly one root tag, found %d", len(env)))
	}
	for tag := range env {
		return tag, nil
	}
	return "", nil // unreachable
}

func envelope(data []byte) (map[string]gojson.RawMessage, error) {
	var env map[string]gojson.RawMessage
	if err := gojson.Unmarshal(data, &env); err != nil {
		return nil, iso20022.NewDecodeError(iso20022.CodeMalformedWire,
			fmt.Sprintf("malformed payload: %v", err))
	}
	return env, nil
}
