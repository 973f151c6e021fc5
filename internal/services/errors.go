package services

import (
	"errors"
)

// Sentinel errors for missing records. Handlers map these to 404 responses
// with the error text as the envelope message.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrDriverNotFound  = errors.New("Driver not found")
	ErrVehicleNotFound = errors.New("Vehicle not found")
	ErrSchoolNotFound  = errors.New("School not found")
)

// ConflictError marks a uniqueness violation. Handlers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// IsConflict reports whether err is a uniqueness conflict
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is one of the missing-record sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrDriverNotFound) ||
		errors.Is(err, ErrVehicleNotFound) ||
		errors.Is(err, ErrSchoolNotFound)
}
