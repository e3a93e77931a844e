package event

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEndBeforeStart = errors.New("event end date must not be before start date")
)
