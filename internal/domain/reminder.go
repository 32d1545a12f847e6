package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type ReminderType string

const (
	ReminderWater       ReminderType = "water"
	ReminderMedicine    ReminderType = "medicine"
	ReminderExercise    ReminderType = "exercise"
	ReminderSleep       ReminderType = "sleep"
	ReminderHandwashing ReminderType = "handwashing"
)

var reminderTypeLabels = map[ReminderType]string{
	ReminderWater:       "Drink Water",
	ReminderMedicine:    "Medicine",
	ReminderExercise:    "Exercise",
	ReminderSleep:       "Sleep",
	ReminderHandwashing: "Handwashing",
}

func (t ReminderType) Valid() bool {
	_, ok := reminderTypeLabels[t]
	return ok
}

// Label returns the human-readable category name shown in notifications.
func (t ReminderType) Label() string {
	return reminderTypeLabels[t]
}

// timePattern matches 24h wall-clock times like "08:00" or "23:45".
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func ValidReminderTime(s string) bool {
	return timePattern.MatchString(s)
}

type Reminder struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID    `json:"userId" gorm:"type:uuid;not null;index"`
	Title     string       `json:"title" gorm:"not null"`
	Time      string       `json:"time" gorm:"not null"` // "HH:MM", local wall-clock
	Type      ReminderType `json:"type" gorm:"not null"`
	IsActive  bool         `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time    `json:"createdAt"`
}
