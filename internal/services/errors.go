package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures do not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation indicates a missing or malformed field on a write.
	ErrValidation = errors.New("validation error")

	// ErrInvalidStatus indicates a status value outside the closed enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition indicates a status change the lifecycle
	// does not permit.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSchedulingConflict indicates a booking inside a surgery slot.
	ErrSchedulingConflict = errors.New("scheduling conflict")
)
