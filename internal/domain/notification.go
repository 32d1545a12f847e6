package domain

import "github.com/google/uuid"

// PermissionState mirrors the browser Notification permission values. The
// client reports it over the push channel; the scheduler only emits while
// the state is granted.
type PermissionState string

const (
	PermissionDefault PermissionState = "default"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

func (p PermissionState) Valid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return true
	}
	return false
}

// Notification is what the scheduler delivers when a reminder's time matches.
type Notification struct {
	ReminderID uuid.UUID    `json:"reminderId"`
	Title      string       `json:"title"`
	Type       ReminderType `json:"type"`
	TypeLabel  string       `json:"typeLabel"`
	Time       string       `json:"time"`
}
