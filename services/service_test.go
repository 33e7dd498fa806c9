package services

import (
	"fmt"
	"testing"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.Participant{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:    name,
		Cuisine: "Italian",
		Address: "42 Via Roma",
		Rating:  4.5,
		Menu: []entity.MenuItem{
			{Name: "Margherita Pizza", Price: 14.99, Category: "Pizza"},
		},
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewRestaurantRepository(db)), db
}
