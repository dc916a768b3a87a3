package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrEndOfInput    = errors.New("end of input")
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput  ErrorKind = "invalid_input"
	KindEndOfInput    ErrorKind = "end_of_input"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// EndOfInput builds the fatal error returned when a line source has no more data.
func EndOfInput(op string, cause error) error {
	err := ErrEndOfInput
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrEndOfInput, cause)
	}
	return &OpError{Op: op, Kind: KindEndOfInput, Err: err}
}

// InvalidInput builds the error describing a line that did not parse as the expected integer.
func InvalidInput(op, text string, cause error) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("%w %q: %w", ErrInvalidInput, text, cause),
	}
}
