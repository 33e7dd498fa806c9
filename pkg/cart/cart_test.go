package cart

import (
	"testing"

	"github.com/omarionnn/BigOrders/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func menuItem(id uint, name string, price float64) *entity.MenuItem {
	return &entity.MenuItem{Model: gorm.Model{ID: id}, Name: name, Price: price}
}

func TestAddUpserts(t *testing.T) {
	c := New(1)

	c.Add(menuItem(10, "Pizza", 14.99), 1)
	c.Add(menuItem(10, "Pizza", 14.99), 2)
	c.Add(menuItem(11, "Tiramisu", 8.99), 1)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Pizza", lines[0].Name)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.False(t, lines[0].AddedAt.IsZero())
	assert.Equal(t, 4, c.ItemCount())
	assert.InDelta(t, 53.96, c.TotalPrice(), 0.001)
}

func TestSetQuantity(t *testing.T) {
	c := New(1)
	c.Add(menuItem(10, "Pizza", 14.99), 2)

	c.SetQuantity(10, 5)
	assert.Equal(t, 5, c.ItemCount())

	// zero or less removes the line
	c.SetQuantity(10, 0)
	assert.Empty(t, c.Lines())

	// unknown ids are ignored
	c.SetQuantity(99, 3)
	assert.Empty(t, c.Lines())
}

func TestRemoveAndClear(t *testing.T) {
	c := New(1)
	c.Add(menuItem(10, "Pizza", 14.99), 1)
	c.Add(menuItem(11, "Tiramisu", 8.99), 1)

	c.Remove(10)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "Tiramisu", c.Lines()[0].Name)

	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Zero(t, c.ItemCount())
	assert.Zero(t, c.TotalPrice())
}

func TestSetNotes(t *testing.T) {
	c := New(1)
	c.Add(menuItem(10, "Pizza", 14.99), 1)

	c.SetNotes(10, "extra basil")
	assert.Equal(t, "extra basil", c.Lines()[0].Notes)
}

func TestCheckout(t *testing.T) {
	c := New(7)
	c.Add(menuItem(10, "Pizza", 14.99), 2)
	c.Add(menuItem(11, "Tiramisu", 8.99), 1)
	c.SetNotes(11, "no cocoa")

	items := c.Checkout()
	require.Len(t, items, 2)

	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Pizza", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 29.98, items[0].Subtotal, 0.001)

	assert.Equal(t, "Tiramisu", items[1].Name)
	assert.Equal(t, "no cocoa", items[1].Notes)
	assert.InDelta(t, 8.99, items[1].Subtotal, 0.001)

	// checkout does not drain the cart; the caller clears it after a
	// successful flush
	assert.Equal(t, 3, c.ItemCount())
}

func TestSessionIdentity(t *testing.T) {
	a := New(1)
	b := New(1)
	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
	assert.Equal(t, uint(1), a.UserID())
}
