package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmailExists             = errors.New("email already registered to another employee")
	ErrInvalidGender           = errors.New("gender must be Male or Female")
	ErrFutureDateNotAllowed    = errors.New("date cannot be in the future")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already archived")
	ErrCannotArchiveSelf       = errors.New("cannot archive your own employee record")
)
