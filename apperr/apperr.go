// Package apperr defines the gateway's error taxonomy. Every component
// boundary converts its own failures into one of these kinds so that no raw
// driver or transport error reaches a client response unmodified.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Validation indicates empty or malformed client input.
	Validation Kind = "validation"
	// PolicyRejection indicates a statement outside the read-only allow set.
	PolicyRejection Kind = "policy_rejection"
	// ExecutionFailure indicates the database rejected or failed a statement.
	ExecutionFailure Kind = "execution_failure"
	// UpstreamUnavailable indicates the translation service could not serve a request.
	UpstreamUnavailable Kind = "upstream_unavailable"
	// Internal indicates anything unanticipated.
	Internal Kind = "internal"
)

// E wraps an error with kind, client-facing message and optional code.
type E struct {
	Kind    Kind
	Message string
	Code    string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }

// WithCode returns a copy of e carrying the given machine-readable code.
func (e *E) WithCode(code string) *E {
	cp := *e
	cp.Code = code
	return &cp
}

// KindOf reports the kind of err, or Internal when err is not an *E.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// As extracts the *E from err. Errors of unknown shape become an Internal
// error with a generic message so their text never leaks to clients.
func As(err error) *E {
	var e *E
	if errors.As(err, &e) {
		return e
	}
	return Wrap(Internal, "Internal server error", err)
}
