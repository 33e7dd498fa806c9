package repository

import (
	"github.com/omarionnn/BigOrders/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// withRefs resolves the restaurant, creator and participant users the
// way every order response is served.
func (r *OrderRepository) withRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Restaurant").
		Preload("Creator").
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("participants.id") }).
		Preload("Participants.User").
		Preload("Participants.Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") })
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.withRefs(r.DB).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByPIN returns the newest order holding the PIN. PINs are only kept
// unique among open orders, so a closed order may share one.
func (r *OrderRepository) FindByPIN(pin string) (*entity.Order, error) {
	var o entity.Order
	if err := r.withRefs(r.DB).Where("pin = ?", pin).Order("id DESC").First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) OpenPINExists(pin string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("pin = ? AND status = ?", pin, entity.OrderStatusOpen).
		Count(&count).Error
	return count > 0, err
}

// ListForUser returns orders the user created or participates in,
// newest first.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.withRefs(r.DB).
		Where("creator_id = ? OR id IN (?)", userID,
			r.DB.Model(&entity.Participant{}).Select("order_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) AddParticipant(tx *gorm.DB, p *entity.Participant) error {
	return tx.Create(p).Error
}

// ReplaceItems swaps a participant's line items wholesale.
func (r *OrderRepository) ReplaceItems(tx *gorm.DB, participantID uint, items []entity.OrderItem) error {
	if err := tx.Unscoped().Where("participant_id = ?", participantID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ParticipantID = participantID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) UpdateParticipantTotal(tx *gorm.DB, participantID uint, total float64) error {
	return tx.Model(&entity.Participant{}).Where("id = ?", participantID).Update("total", total).Error
}

func (r *OrderRepository) UpdateOrderTotal(tx *gorm.DB, orderID uint, total float64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total", total).Error
}
