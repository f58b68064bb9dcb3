package models

import "errors"

// Domain errors surfaced by the repositories and services. Handlers map
// these onto HTTP status codes with errors.Is.
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("invalid id format")
	ErrUserNotFound       = errors.New("user not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrForbidden          = errors.New("forbidden")
)
