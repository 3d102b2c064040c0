package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError marks a lookup miss. Resource/Field/Value identify what was
// asked for so every module reports misses the same way.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func NotFound(resource, field string, value any) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// ConflictError marks a uniqueness violation.
type ConflictError struct {
	Resource string
	Field    string
	Value    any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists with %s: %v", e.Resource, e.Field, e.Value)
}

func Conflict(resource, field string, value any) error {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

// ForbiddenError marks an ownership or role check failure.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

// InvalidStateError marks an illegal transition attempt.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string { return e.Reason }

func InvalidState(reason string) error { return &InvalidStateError{Reason: reason} }

// ValidationError carries per-field constraint violations.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

func IsConflict(err error) bool {
	var t *ConflictError
	return errors.As(err, &t)
}

func IsForbidden(err error) bool {
	var t *ForbiddenError
	return errors.As(err, &t)
}

func IsInvalidState(err error) bool {
	var t *InvalidStateError
	return errors.As(err, &t)
}
