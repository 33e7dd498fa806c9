package configs

import (
	"log"

	"github.com/omarionnn/BigOrders/entity"
)

// SeedRestaurants loads the reference restaurant data on an empty
// database. Menus are embedded; there is no admin surface to edit them.
func SeedRestaurants() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("restaurants already seeded")
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Mario's Italian Kitchen",
			Description: "Authentic Italian cuisine in a cozy atmosphere",
			Cuisine:     "Italian",
			Address:     "42 Via Roma, Downtown",
			Rating:      4.6,
			Menu: []entity.MenuItem{
				{Name: "Margherita Pizza", Description: "Fresh tomatoes, mozzarella, and basil", Price: 14.99, Category: "Pizza", IsVegetarian: true},
				{Name: "Spaghetti Carbonara", Description: "Classic carbonara with pancetta and egg", Price: 16.99, Category: "Pasta"},
				{Name: "Tiramisu", Description: "Classic Italian dessert", Price: 8.99, Category: "Dessert", IsVegetarian: true},
			},
		},
		{
			Name:        "Sushi Master",
			Description: "Fresh and creative Japanese cuisine",
			Cuisine:     "Japanese",
			Address:     "7 Harbor Street",
			Rating:      4.8,
			Menu: []entity.MenuItem{
				{Name: "California Roll", Description: "Crab, avocado, and cucumber", Price: 12.99, Category: "Rolls", IsGlutenFree: true},
				{Name: "Salmon Nigiri", Description: "Fresh salmon over rice", Price: 8.99, Category: "Nigiri", IsGlutenFree: true},
				{Name: "Vegetable Tempura", Description: "Assorted vegetables in crispy batter", Price: 10.99, Category: "Appetizers", IsVegetarian: true, IsVegan: true},
			},
		},
		{
			Name:        "Spice Route",
			Description: "Bold Indian flavors, classic and contemporary",
			Cuisine:     "Indian",
			Address:     "221 Curry Lane",
			Rating:      4.4,
			Menu: []entity.MenuItem{
				{Name: "Chicken Tikka Masala", Description: "Grilled chicken in a spiced tomato cream sauce", Price: 15.49, Category: "Curry", SpicyLevel: 2},
				{Name: "Chana Masala", Description: "Chickpeas simmered in onion and tomato gravy", Price: 11.99, Category: "Curry", SpicyLevel: 2, IsVegetarian: true, IsVegan: true},
				{Name: "Garlic Naan", Description: "Tandoor flatbread with garlic butter", Price: 3.99, Category: "Bread", IsVegetarian: true},
			},
		},
	}

	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d restaurants", len(restaurants))
	return nil
}
