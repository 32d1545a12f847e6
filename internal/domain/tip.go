package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tip struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"` // "YYYY-MM-DD"
	CreatedAt time.Time `json:"createdAt"`
}
