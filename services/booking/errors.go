package booking

import (
	"fmt"

	"bookify/models"
)

// ValidationError reports malformed or missing input. The caller must fix
// the request and resubmit; nothing was persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing client, business, service or booking.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

// ConflictError reports a transition attempted from a state that disallows
// it. Current names the status the booking was in when the attempt failed.
type ConflictError struct {
	Current   models.BookingStatus
	Operation string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot %s booking in status %q", e.Operation, e.Current)
}

// ForbiddenError reports a failed ownership check.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ScheduleDeniedError reports a requested time outside the business's
// weekly hours. AllowedRange is a display string ("09:00-17:00" or
// "closed") so the caller can correct without guessing.
type ScheduleDeniedError struct {
	Reason       string
	AllowedRange string
}

func (e *ScheduleDeniedError) Error() string {
	return fmt.Sprintf("requested time not available: %s (allowed: %s)", e.Reason, e.AllowedRange)
}
