package entity

import (
	"gorm.io/gorm"
)

// OrderItem carries a denormalized menu item name and price, not a live
// reference, so later menu edits do not rewrite past orders.
type OrderItem struct {
	gorm.Model
	ParticipantID uint `gorm:"index" json:"participantId"`

	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Subtotal float64 `json:"subtotal"`
}
