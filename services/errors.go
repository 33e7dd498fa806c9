package services

import "errors"

// Domain errors. Controllers translate these to HTTP status codes;
// anything else is a server fault.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrOrderClosed    = errors.New("this order is no longer accepting participants")
	ErrAlreadyJoined  = errors.New("you are already a participant in this order")
	ErrNotParticipant = errors.New("user is not a participant in this order")
	ErrNoParticipants = errors.New("no participants found in order")
	ErrPINExhausted   = errors.New("could not allocate an unused pin")

	// ErrInvalidItem is wrapped with the offending item's name.
	ErrInvalidItem = errors.New("invalid item")
)
