package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/repository"
	"github.com/omarionnn/BigOrders/utils"

	"gorm.io/gorm"
)

// pinAttempts bounds the retry loop when sampling a free PIN.
const pinAttempts = 100

// subtotalEpsilon is the tolerance when checking a client-supplied
// subtotal against round(price*quantity, 2).
const subtotalEpsilon = 0.01

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

type ItemIn struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Subtotal float64 `json:"subtotal"`
}

type ParticipantOut struct {
	Items []entity.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// ----- Create -----

// Create opens a new order with the acting user as sole creator
// participant and an empty item list.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	pin, err := s.allocatePIN()
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		Name:         strings.TrimSpace(req.Name),
		PIN:          pin,
		Status:       entity.OrderStatusOpen,
		RestaurantID: req.RestaurantID,
		CreatorID:    userID,
		Participants: []entity.Participant{
			{UserID: userID, Role: entity.RoleCreator},
		},
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(order.ID)
}

// allocatePIN samples 6-digit codes until one is free among open
// orders. Completed orders release their PIN for reuse.
func (s *OrderService) allocatePIN() (string, error) {
	for i := 0; i < pinAttempts; i++ {
		pin := utils.GeneratePIN()
		taken, err := s.Repo.OpenPINExists(pin)
		if err != nil {
			return "", err
		}
		if !taken {
			return pin, nil
		}
	}
	return "", ErrPINExhausted
}

// ----- Join -----

func (s *OrderService) Join(userID uint, pin string) (*entity.Order, error) {
	order, err := s.Repo.FindByPIN(pin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.Status != entity.OrderStatusOpen {
		return nil, ErrOrderClosed
	}
	for _, p := range order.Participants {
		if p.UserID == userID {
			return nil, ErrAlreadyJoined
		}
	}

	p := entity.Participant{OrderID: order.ID, UserID: userID, Role: entity.RoleParticipant}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AddParticipant(tx, &p)
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(order.ID)
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// ----- Update items -----

// UpdateItems replaces (not merges) the acting participant's line items
// and recomputes the participant total and the order grand total.
// Last writer wins: two concurrent updates are only serialized by the
// database transaction, not by any version token.
func (s *OrderService) UpdateItems(userID, orderID uint, items []ItemIn) (*ParticipantOut, float64, error) {
	rows, err := validateItems(items)
	if err != nil {
		return nil, 0, err
	}

	var (
		out        ParticipantOut
		orderTotal float64
	)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.Preload("Participants").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var target *entity.Participant
		for i := range order.Participants {
			if order.Participants[i].UserID == userID {
				target = &order.Participants[i]
				break
			}
		}
		if target == nil {
			// the creator may be missing a participant record; anyone
			// else is rejected
			if order.CreatorID != userID {
				return ErrNotParticipant
			}
			p := entity.Participant{OrderID: order.ID, UserID: userID, Role: entity.RoleCreator}
			if err := s.Repo.AddParticipant(tx, &p); err != nil {
				return err
			}
			target = &p
		}

		if err := s.Repo.ReplaceItems(tx, target.ID, rows); err != nil {
			return err
		}

		var participantTotal float64
		for _, it := range rows {
			participantTotal += it.Subtotal
		}
		participantTotal = utils.Round2(participantTotal)
		if err := s.Repo.UpdateParticipantTotal(tx, target.ID, participantTotal); err != nil {
			return err
		}

		orderTotal = 0
		for i := range order.Participants {
			if order.Participants[i].ID == target.ID {
				continue
			}
			orderTotal += order.Participants[i].Total
		}
		orderTotal = utils.Round2(orderTotal + participantTotal)
		if err := s.Repo.UpdateOrderTotal(tx, order.ID, orderTotal); err != nil {
			return err
		}

		out = ParticipantOut{Items: rows, Total: participantTotal}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &out, orderTotal, nil
}

func validateItems(items []ItemIn) ([]entity.OrderItem, error) {
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if it.ID == "" || name == "" {
			return nil, fmt.Errorf("%w: invalid structure for item %q", ErrInvalidItem, it.Name)
		}
		if it.Price <= 0 {
			return nil, fmt.Errorf("%w: invalid price for item %q", ErrInvalidItem, name)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: invalid quantity for item %q", ErrInvalidItem, name)
		}
		subtotal := utils.Round2(it.Price * float64(it.Quantity))
		// a zero subtotal means the client did not send one
		if it.Subtotal != 0 && math.Abs(subtotal-it.Subtotal) > subtotalEpsilon {
			return nil, fmt.Errorf("%w: invalid subtotal for item %q", ErrInvalidItem, name)
		}
		rows = append(rows, entity.OrderItem{
			Name:     name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Notes:    strings.TrimSpace(it.Notes),
			Subtotal: subtotal,
		})
	}
	return rows, nil
}

// ----- Receipt -----

type ReceiptUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReceiptItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Subtotal float64 `json:"subtotal"`
}

type ReceiptParticipant struct {
	User  ReceiptUser   `json:"user"`
	Role  string        `json:"role"`
	Items []ReceiptItem `json:"items"`
	Total float64       `json:"total"`
}

type ReceiptOrder struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	PIN       string    `json:"pin"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReceiptRestaurant struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type Receipt struct {
	Order        ReceiptOrder         `json:"order"`
	Restaurant   ReceiptRestaurant    `json:"restaurant"`
	Creator      ReceiptUser          `json:"creator"`
	Participants []ReceiptParticipant `json:"participants"`
}

// BuildReceipt is a pure read over stored state: it projects the order
// and never recomputes totals, so a receipt can trail a concurrent
// item update.
func (s *OrderService) BuildReceipt(orderID uint) (*Receipt, error) {
	order, err := s.Detail(orderID)
	if err != nil {
		return nil, err
	}
	if len(order.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	participants := make([]ReceiptParticipant, 0, len(order.Participants))
	for _, p := range order.Participants {
		items := make([]ReceiptItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, ReceiptItem{
				Name:     it.Name,
				Price:    it.Price,
				Quantity: it.Quantity,
				Notes:    it.Notes,
				Subtotal: it.Subtotal,
			})
		}
		participants = append(participants, ReceiptParticipant{
			User:  ReceiptUser{ID: p.User.ID, Name: p.User.Name, Email: p.User.Email},
			Role:  p.Role,
			Items: items,
			Total: p.Total,
		})
	}

	return &Receipt{
		Order: ReceiptOrder{
			ID:        order.ID,
			Name:      order.Name,
			Status:    order.Status,
			PIN:       order.PIN,
			Total:     order.Total,
			CreatedAt: order.CreatedAt,
		},
		Restaurant: ReceiptRestaurant{
			ID:          order.Restaurant.ID,
			Name:        order.Restaurant.Name,
			Cuisine:     order.Restaurant.Cuisine,
			Description: order.Restaurant.Description,
			Address:     order.Restaurant.Address,
		},
		Creator: ReceiptUser{
			ID:    order.Creator.ID,
			Name:  order.Creator.Name,
			Email: order.Creator.Email,
		},
		Participants: participants,
	}, nil
}
