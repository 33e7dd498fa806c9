package services

import (
	"strings"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/repository"

	"gorm.io/datatypes"
)

type ProfileService struct {
	userRepo *repository.UserRepository
}

func NewProfileService(repo *repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: repo}
}

type UpdateProfileIn struct {
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	DietaryPreferences datatypes.JSON `json:"dietaryPreferences"`
	Favorites          datatypes.JSON `json:"favorites"`
}

func (s *ProfileService) Get(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Update applies only the fields the client sent.
func (s *ProfileService) Update(userID uint, in *UpdateProfileIn) (*entity.User, error) {
	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.DietaryPreferences != nil {
		updates["dietary_preferences"] = in.DietaryPreferences
	}
	if in.Favorites != nil {
		updates["favorites"] = in.Favorites
	}
	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(userID)
}

func (s *ProfileService) GetTaste(userID uint) (datatypes.JSONMap, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if user.TasteProfile == nil {
		return datatypes.JSONMap{}, nil
	}
	return user.TasteProfile, nil
}

// UpdateTaste replaces the whole taste map.
func (s *ProfileService) UpdateTaste(userID uint, taste datatypes.JSONMap) (datatypes.JSONMap, error) {
	if err := s.userRepo.Update(userID, map[string]any{"taste_profile": taste}); err != nil {
		return nil, err
	}
	return s.GetTaste(userID)
}
