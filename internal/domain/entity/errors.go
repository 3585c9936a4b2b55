package entity

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoPhone         = errors.New("contact has no phone number")
	ErrWrongState      = errors.New("event is not valid in current state")
	ErrStaleAnswer     = errors.New("answer token does not match current question")
)
