package domain

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Validation errors
var (
	ErrInvalidReminderType = errors.New("invalid reminder type")
	ErrInvalidReminderTime = errors.New("reminder time must be HH:MM")
)
