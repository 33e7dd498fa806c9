package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusOpen   = "open"
	OrderStatusClosed = "closed"
)

// Order is the central mutable aggregate: one restaurant, a join PIN and
// the participants with their line items.
type Order struct {
	gorm.Model
	Name   string  `gorm:"not null" json:"name"`
	PIN    string  `gorm:"column:pin;index;not null" json:"pin"`
	Status string  `gorm:"not null;default:open" json:"status"`
	Total  float64 `json:"total"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`

	CreatorID uint `json:"creatorId"`
	Creator   User `gorm:"foreignKey:CreatorID" json:"creator"`

	Participants []Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"participants"`
}
