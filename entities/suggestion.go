package entities

import (
	"github.com/google/uuid"
	"time"
)

type SavedSuggestion struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"index" json:"username"`
	Name        string    `json:"name"`
	Style       string    `json:"style"`
	Time        string    `json:"time"`
	Difficulty  string    `json:"difficulty"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Ingredient  string    `json:"ingredient"`
	SavedAt     time.Time `gorm:"type:timestamp" json:"saved_at"`
}

type HiddenSuggestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username   string    `gorm:"index" json:"username"`
	Name       string    `json:"name"`
	Ingredient string    `json:"ingredient"`
	HiddenAt   time.Time `gorm:"type:timestamp" json:"hidden_at"`
}
