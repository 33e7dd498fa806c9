package entity

import (
	"gorm.io/gorm"
)

// Restaurant is read-mostly reference data, seeded out-of-band.
type Restaurant struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Cuisine     string  `json:"cuisine"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Rating      float64 `json:"rating"`

	Menu []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu,omitempty"`

	Orders []Order `json:"-"`
}
