package image

import (
	"errors"
	"fmt"
)

// ErrValidation marks a request the service rejected for its parameters.
var ErrValidation = errors.New("validation exception")

type Kind int

const (
	UnknownFailure Kind = iota
	DecodeFailure
	ServiceFailure
	ValidationFailure
)

func (k Kind) String() string {
	switch k {
	case DecodeFailure:
		return "decode failure"
	case ServiceFailure:
		return "service failure"
	case ValidationFailure:
		return "validation failure"
	default:
		return "unknown failure"
	}
}

type GenerationError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error, format string, args ...any) *GenerationError {
	return &GenerationError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the failure kind of err, or UnknownFailure if it carries none.
func KindOf(err error) Kind {
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return UnknownFailure
}
