package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint `json:"restaurantId"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `json:"category"`

	SpicyLevel   int  `json:"spicyLevel"` // 0..3
	IsVegetarian bool `json:"isVegetarian"`
	IsVegan      bool `json:"isVegan"`
	IsGlutenFree bool `json:"isGlutenFree"`

	Tags datatypes.JSON `json:"tags,omitempty"`
}
