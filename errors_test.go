package iso20022

import (
	"errors"
	"testing"
)

func TestConstraintErrorMessage(t *testing.T) {
	err := NewConstraintError(CodePatternMismatch, "ccy does not match the required pattern")
	want := "constraint 1005: ccy does not match the required pattern"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	cause := NewConstraintError(CodeTooShort, "MsgId is shorter than the minimum length of 1")
	verr := &ValidationError{Cause: cause}

	var ce *ConstraintError
	if !errors.As(verr, &ce) {
		t.Fatal("errors.As failed to recover ConstraintError")
	}
	if ce != cause {
		t.Error("unwrapped cause is not the original ConstraintError")
	}
	if verr.Code() != CodeTooShort {
		t.Errorf("Code() = %d, want %d", verr.Code(), CodeTooShort)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 0},
		{"constraint", NewConstraintError(CodeTooLong, "too long"), CodeTooLong},
		{"decode", NewDecodeError(CodeMalformedWire, "bad input"), CodeMalformedWire},
		{"wrapped validation", &ValidationError{Cause: NewConstraintError(CodeInvalidEnum, "bad literal")}, CodeInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{
			name: "unknown message type",
			err:  NewDecodeError(CodeUnknownMessageType, `unknown message type "NotATag"`),
			want: `decode 9999: unknown message type "NotATag"`,
		},
		{
			name: "missing required",
			err:  NewDecodeError(CodeMissingRequired, "MessageReference.Ref is required"),
			want: "decode 9002: MessageReference.Ref is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
