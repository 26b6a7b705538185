package service

import (
	"errors"
)

// Service errors.
var (
	ErrNotFound       = errors.New("user not found")
	ErrInvalidRequest = errors.New("invalid request")
)

// Reason identifies which create rule rejected a request.
type Reason string

// Create rejection reasons, in the order they are checked.
const (
	ReasonNoData        Reason = "no_data"
	ReasonNameRequired  Reason = "name_required"
	ReasonEmailRequired Reason = "email_required"
	ReasonEmailInUse    Reason = "email_in_use"
)

var reasonMessages = map[Reason]string{
	ReasonNoData:        "no data provided",
	ReasonNameRequired:  "name required",
	ReasonEmailRequired: "email required",
	ReasonEmailInUse:    "email already in use",
}

// ValidationError reports client input that failed a create rule.
// It matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	if msg, ok := reasonMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

// Is reports whether target is ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func invalid(reason Reason) error {
	return &ValidationError{Reason: reason}
}
