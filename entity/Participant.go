package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCreator     = "creator"
	RoleParticipant = "participant"
)

// Participant is one user's membership and item list within one order.
// A user appears at most once per order.
type Participant struct {
	gorm.Model
	OrderID uint `gorm:"index" json:"orderId"`

	UserID uint `json:"userId"`
	User   User `json:"user"`

	Role  string  `gorm:"not null;default:participant" json:"role"`
	Total float64 `json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
