package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	// free-form key -> weight map built up by the taste game
	TasteProfile       datatypes.JSONMap `json:"tasteProfile,omitempty"`
	DietaryPreferences datatypes.JSON    `json:"dietaryPreferences,omitempty"`
	Favorites          datatypes.JSON    `json:"favorites,omitempty"`

	// preload only when needed
	OrdersCreated []Order       `gorm:"foreignKey:CreatorID" json:"-"`
	Participants  []Participant `json:"-"`
}
