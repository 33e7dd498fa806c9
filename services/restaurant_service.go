package services

import (
	"errors"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) List() ([]repository.RestaurantSummary, error) {
	return s.repo.List()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Search(query string) ([]repository.RestaurantSummary, error) {
	return s.repo.Search(query)
}

// Recommendations is a plain top-rated query; there is no model behind it.
func (s *RestaurantService) Recommendations() ([]repository.RestaurantSummary, error) {
	return s.repo.TopRated(5)
}
