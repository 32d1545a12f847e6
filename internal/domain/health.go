package domain

import (
	"time"

	"github.com/google/uuid"
)

// HealthEntry is one day's self-reported metrics. One row per user per date.
type HealthEntry struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_health_user_date"`
	Date         string    `json:"date" gorm:"not null;uniqueIndex:idx_health_user_date"` // "YYYY-MM-DD"
	Steps        int       `json:"steps" gorm:"not null"`
	WaterIntake  int       `json:"waterIntake" gorm:"not null"` // glasses
	SleepHours   float64   `json:"sleepHours" gorm:"not null"`
	SleepQuality int       `json:"sleepQuality" gorm:"not null"` // 1-5
	CreatedAt    time.Time `json:"createdAt"`
}
