package core

import "errors"

var (
	// ErrConflict covers double punch-in, double punch-out and invalid
	// break transitions.
	ErrConflict = errors.New("conflict")
	// ErrNotFound is returned when an action needs a today-record that
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned on role violations.
	ErrForbidden = errors.New("forbidden")
	// ErrImmutable is returned when a PAID payroll record is edited or
	// deleted.
	ErrImmutable = errors.New("record is immutable")
)
