package services

import (
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"gorm.io/gorm"
)

// PersonService reads the person table. Person rows are provisioned
// externally, so there is no create or delete here.
type PersonService interface {
	// ListAll retrieves all persons ordered by name
	ListAll() ([]models.Person, error)
}

type personService struct {
	db *gorm.DB
}

// NewPersonService creates a new instance of PersonService
func NewPersonService(db *gorm.DB) PersonService {
	return &personService{db: db}
}

func (s *personService) ListAll() ([]models.Person, error) {
	// Pre-allocated so an empty listing serializes as [] rather than null
	persons := make([]models.Person, 0)
	if err := s.db.Order("name ASC").Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}
