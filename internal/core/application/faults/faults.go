// Package faults maps errors of the ordering core onto the four fault kinds callers see.
//
// Classification rules:
//   - *errs.ValueIsRequiredError, *errs.ValueIsInvalidError -> InvalidArgument
//   - *errs.ObjectNotFoundError                            -> NotFound
//   - *errs.PreconditionFailedError                        -> FailedPrecondition
//   - anything else                                        -> Internal
//
// Internal faults always carry the generic message "internal server error";
// the underlying error stays available through errors.Unwrap for logging only.
package faults

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Kind is the category of a fault.
type Kind string

const (
	InvalidArgument    Kind = "INVALID_ARGUMENT"
	NotFound           Kind = "NOT_FOUND"
	FailedPrecondition Kind = "FAILED_PRECONDITION"
	Internal           Kind = "INTERNAL"
)

const internalMessage = "internal server error"

func (k Kind) String() string {
	return string(k)
}

// IsClientFault reports whether the fault was caused by the request rather than by the service.
func (k Kind) IsClientFault() bool {
	return k != Internal
}

// Fault is a classified failure returned to callers of the ordering core.
type Fault struct {
	Kind    Kind
	Message string

	cause error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap returns the error the fault was classified from.
func (f *Fault) Unwrap() error {
	return f.cause
}

// NewInvalidArgument creates an InvalidArgument fault for malformed input
// rejected before reaching the core.
func NewInvalidArgument(message string, cause error) *Fault {
	return &Fault{Kind: InvalidArgument, Message: message, cause: cause}
}

// Classify converts err into a Fault. It returns nil for a nil error
// and err itself when it already is a *Fault.
func Classify(err error) *Fault {
	if err == nil {
		return nil
	}

	var fault *Fault
	if errors.As(err, &fault) {
		return fault
	}

	var (
		notFound     *errs.ObjectNotFoundError
		required     *errs.ValueIsRequiredError
		invalid      *errs.ValueIsInvalidError
		precondition *errs.PreconditionFailedError
	)

	switch {
	case errors.As(err, &required):
		return &Fault{
			Kind:    InvalidArgument,
			Message: fmt.Sprintf("invalid request: %s is required", required.ParamName),
			cause:   err,
		}
	case errors.As(err, &invalid):
		return &Fault{
			Kind:    InvalidArgument,
			Message: fmt.Sprintf("invalid request: %s is invalid", invalid.ParamName),
			cause:   err,
		}
	case errors.As(err, &notFound):
		return &Fault{
			Kind:    NotFound,
			Message: fmt.Sprintf("%s with id %v not found", notFound.ParamName, notFound.ID),
			cause:   err,
		}
	case errors.As(err, &precondition):
		return &Fault{
			Kind:    FailedPrecondition,
			Message: precondition.Reason,
			cause:   err,
		}
	default:
		return &Fault{Kind: Internal, Message: internalMessage, cause: err}
	}
}
