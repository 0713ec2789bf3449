package scwb

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMissingInputFile = errors.New("input file not found")
	ErrMalformedInput   = errors.New("malformed input")
)

// ErrorKind is a coarse-grained categorization for input errors.
type ErrorKind string

const (
	KindMissingInput   ErrorKind = "missing_input_file"
	KindMalformedInput ErrorKind = "malformed_input"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: input file path
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

// Is matches the sentinel that corresponds to the error kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrMissingInputFile:
		return e.Kind == KindMissingInput
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	}
	return false
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Malformed builds a malformed input error for path.
func Malformed(op, path string, err error) *OpError {
	return &OpError{Op: op, Kind: KindMalformedInput, Path: path, Err: err}
}

// Missing builds a missing input file error for path.
func Missing(op, path string, err error) *OpError {
	return &OpError{Op: op, Kind: KindMissingInput, Path: path, Err: err}
}
