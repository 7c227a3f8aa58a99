package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionRequired    = errors.New("session key required")
	ErrNoPlacesSelected   = errors.New("no places selected")
	ErrItineraryFailed    = errors.New("itinerary generation failed")
	ErrDatabaseError      = errors.New("database error")
)
