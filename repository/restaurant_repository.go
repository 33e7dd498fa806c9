package repository

import (
	"github.com/omarionnn/BigOrders/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantSummary is the list/search projection; the menu is only
// loaded on the detail endpoint.
type RestaurantSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
}

func (r *RestaurantRepository) List() ([]RestaurantSummary, error) {
	var out []RestaurantSummary
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name, description, cuisine, rating").
		Order("id").
		Scan(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Menu").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search matches name, cuisine or description, case-insensitive.
func (r *RestaurantRepository) Search(query string) ([]RestaurantSummary, error) {
	like := "%" + query + "%"
	var out []RestaurantSummary
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name, description, cuisine, rating").
		Where("name LIKE ? OR cuisine LIKE ? OR description LIKE ?", like, like, like).
		Order("id").
		Scan(&out).Error
	return out, err
}

func (r *RestaurantRepository) TopRated(limit int) ([]RestaurantSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []RestaurantSummary
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name, description, cuisine, rating").
		Order("rating DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
