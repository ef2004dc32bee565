package service

import (
	"errors"
	"fmt"
)

// ErrCorruptTransaction marks a stored record that breaks a model invariant,
// such as an unknown type. It is reported, never skipped.
var ErrCorruptTransaction = errors.New("corrupt transaction record")

// ValidationError reports a candidate record field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidFilterError reports a query parameter that could not be turned into a filter.
type InvalidFilterError struct {
	Param  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// PersistenceError wraps a storage failure. Writes are not retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
