package services

import (
	"errors"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/validation"
	"gorm.io/gorm"
)

// PizzeriaService provides methods to interact with the pizzeria table
type PizzeriaService interface {
	// ListActive retrieves all pizzerias that have not been soft-deleted,
	// ordered by name
	ListActive() ([]models.PizzeriaRef, error)
	// Create inserts a new pizzeria. A nil rating means the default of 0.
	Create(name string, rating *float64) (models.Pizzeria, error)
	// UpdateRating sets a new rating on an active pizzeria
	UpdateRating(id int, rating *float64) (models.Pizzeria, error)
	// SoftDelete tombstones an active pizzeria, keeping the row for history
	SoftDelete(id int) (models.Pizzeria, error)
}

// pizzeriaService is the implementation of the PizzeriaService interface
type pizzeriaService struct {
	db *gorm.DB
}

// NewPizzeriaService creates a new instance of PizzeriaService
func NewPizzeriaService(db *gorm.DB) PizzeriaService {
	return &pizzeriaService{db: db}
}

func (s *pizzeriaService) ListActive() ([]models.PizzeriaRef, error) {
	// Pre-allocated so an empty listing serializes as [] rather than null
	refs := make([]models.PizzeriaRef, 0)
	err := s.db.Model(&models.Pizzeria{}).
		Select("id, name").
		Where("is_deleted = ?", false).
		Order("name ASC, id ASC").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (s *pizzeriaService) Create(name string, rating *float64) (models.Pizzeria, error) {
	if !validation.NonEmptyString(name) {
		return models.Pizzeria{}, models.InvalidInputf("field 'name' is required and must be a non-empty string")
	}
	if !validation.RatingInRange(rating) {
		return models.Pizzeria{}, models.InvalidInputf("field 'rating' must be a number between 0 and 5")
	}

	pizzeria := models.Pizzeria{Name: name}
	if rating != nil {
		pizzeria.Rating = *rating
	}
	if err := s.db.Create(&pizzeria).Error; err != nil {
		return models.Pizzeria{}, err
	}
	return pizzeria, nil
}

func (s *pizzeriaService) UpdateRating(id int, rating *float64) (models.Pizzeria, error) {
	if !validation.RatingInRange(rating) {
		return models.Pizzeria{}, models.InvalidInputf("field 'new_rating' must be a number between 0 and 5")
	}

	pizzeria, err := s.getActive(id)
	if err != nil {
		return models.Pizzeria{}, err
	}

	pizzeria.Rating = 0
	if rating != nil {
		pizzeria.Rating = *rating
	}
	if err := s.db.Save(&pizzeria).Error; err != nil {
		return models.Pizzeria{}, err
	}
	return pizzeria, nil
}

func (s *pizzeriaService) SoftDelete(id int) (models.Pizzeria, error) {
	pizzeria, err := s.getActive(id)
	if err != nil {
		return models.Pizzeria{}, err
	}

	pizzeria.IsDeleted = true
	if err := s.db.Save(&pizzeria).Error; err != nil {
		return models.Pizzeria{}, err
	}
	return pizzeria, nil
}

// getActive loads a pizzeria that has not been soft-deleted. Tombstoned rows
// are treated the same as missing ones.
func (s *pizzeriaService) getActive(id int) (models.Pizzeria, error) {
	var pizzeria models.Pizzeria
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&pizzeria).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizzeria{}, models.NotFoundf("pizzeria with id %d", id)
	}
	if err != nil {
		return models.Pizzeria{}, err
	}
	return pizzeria, nil
}
