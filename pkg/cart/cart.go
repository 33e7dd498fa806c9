// Package cart holds the client-side staging area for an order: a
// tab-lifetime, in-memory item list that is only flushed to the server
// on checkout. Nothing here is persisted; dropping the Cart loses it,
// the same way a page reload does.
package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/services"
	"github.com/omarionnn/BigOrders/utils"
)

// Line is one staged menu item with quantity and notes.
type Line struct {
	MenuItemID uint      `json:"menuItemId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
	AddedAt    time.Time `json:"addedAt"`
}

// Cart models a single browser session. It is not safe for concurrent
// use; a session is confined to one tab with no cross-tab coordination.
type Cart struct {
	sessionID string
	userID    uint
	lines     []*Line        // insertion order
	index     map[uint]*Line // key = menu item id
	now       func() time.Time
}

func New(userID uint) *Cart {
	return &Cart{
		sessionID: uuid.NewString(),
		userID:    userID,
		index:     make(map[uint]*Line),
		now:       time.Now,
	}
}

func (c *Cart) SessionID() string { return c.sessionID }
func (c *Cart) UserID() uint      { return c.userID }

// Add upserts by menu item id: an existing line gets its quantity
// bumped, a new one is appended with the capture timestamp.
func (c *Cart) Add(item *entity.MenuItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	if line, ok := c.index[item.ID]; ok {
		line.Quantity += qty
		return
	}
	line := &Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   qty,
		AddedAt:    c.now(),
	}
	c.lines = append(c.lines, line)
	c.index[item.ID] = line
}

func (c *Cart) Remove(menuItemID uint) {
	if _, ok := c.index[menuItemID]; !ok {
		return
	}
	delete(c.index, menuItemID)
	for i, line := range c.lines {
		if line.MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// SetQuantity clamps to >= 1; zero or less removes the line.
func (c *Cart) SetQuantity(menuItemID uint, qty int) {
	line, ok := c.index[menuItemID]
	if !ok {
		return
	}
	if qty < 1 {
		c.Remove(menuItemID)
		return
	}
	line.Quantity = qty
}

func (c *Cart) SetNotes(menuItemID uint, notes string) {
	if line, ok := c.index[menuItemID]; ok {
		line.Notes = notes
	}
}

func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[uint]*Line)
}

// Lines returns the staged items in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

func (c *Cart) ItemCount() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return utils.Round2(total)
}

// Checkout projects the cart into the items payload for the order
// update call. The caller clears the cart after a successful flush.
func (c *Cart) Checkout() []services.ItemIn {
	items := make([]services.ItemIn, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, services.ItemIn{
			ID:       uuid.NewString(),
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			Notes:    line.Notes,
			Subtotal: utils.Round2(line.Price * float64(line.Quantity)),
		})
	}
	return items
}
