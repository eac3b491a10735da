package entities

import (
	"github.com/google/uuid"
)

type PantryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"index" json:"username"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"`
	// Expiry is stored as a plain "2006-01-02" date string; classification
	// parses it per sweep and skips items that fail to parse.
	Expiry   string `json:"expiry"`
	ImageURL string `json:"image_url,omitempty"`

	Timestamp
}
