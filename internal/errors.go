package internal

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrDistributorNotFound = errors.New("distributor not found")

	ErrForbidden          = errors.New("actor is not allowed to perform this transition")
	ErrInvalidTransition  = errors.New("transition is not allowed from the current status")
	ErrTransitionConflict = errors.New("order status changed since it was read")

	ErrValidation = errors.New("validation failed")

	ErrNoRecords = errors.New("no records")
)
