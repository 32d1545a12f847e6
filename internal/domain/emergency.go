package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmergencyService is a hospital, pharmacy or clinic shown on the emergency
// page. Location holds a {"lat":..,"lng":..} payload for the map frontend;
// geocoding itself happens client-side.
type EmergencyService struct {
	ID       uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name     string         `json:"name" gorm:"not null"`
	Kind     string         `json:"kind" gorm:"not null"` // hospital, pharmacy, clinic
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Location datatypes.JSON `json:"location"`
}
