package planner

import (
	"errors"
	"fmt"
)

// ValidationError rejects a mutation before any state change happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("planner: invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports coordinates or ids that do not resolve.
type NotFoundError struct {
	Kind string // "user", "month", "week", "day", "task"
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("planner: %s not found: %s", e.Kind, e.Ref)
}

// PersistenceWarning reports a failed save after a mutation already
// applied in memory. It is never an excuse to roll back.
type PersistenceWarning struct {
	Err error
}

func (e *PersistenceWarning) Error() string {
	return fmt.Sprintf("planner: state kept in memory, save failed: %v", e.Err)
}

func (e *PersistenceWarning) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPersistenceWarning reports whether err only means the save failed
// while the in-memory mutation succeeded.
func IsPersistenceWarning(err error) bool {
	var pw *PersistenceWarning
	return errors.As(err, &pw)
}
