package services

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/validation"
	"gorm.io/gorm"
)

// MenuService provides methods to interact with the menu table
type MenuService interface {
	// Create adds a pizza to the menu of an active pizzeria. The pizza name
	// is stored lower-cased.
	Create(pizzeriaID int, pizzaName string, price float64) (models.MenuItem, error)
	// UpdatePrice sets a new price on an active menu item
	UpdatePrice(id int, newPrice float64) (models.MenuItem, error)
	// SoftDelete tombstones an active menu item, keeping the row for history
	SoftDelete(id int) (models.MenuItem, error)
	// ListForPizzeria retrieves the active menu entries of a pizzeria
	ListForPizzeria(pizzeriaID int) ([]models.MenuEntry, error)
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) Create(pizzeriaID int, pizzaName string, price float64) (models.MenuItem, error) {
	if !validation.NonEmptyString(pizzaName) {
		return models.MenuItem{}, models.InvalidInputf("field 'pizza_name' is required and must be a non-empty string")
	}
	if !validation.PositivePrice(price) {
		return models.MenuItem{}, models.InvalidInputf("field 'price' is required and must be a positive number")
	}

	ok, err := activeExists(s.db, &models.Pizzeria{}, pizzeriaID)
	if err != nil {
		return models.MenuItem{}, err
	}
	if !ok {
		return models.MenuItem{}, models.NotFoundf("pizzeria with id %d", pizzeriaID)
	}

	item := models.MenuItem{
		PizzeriaID: pizzeriaID,
		PizzaName:  strings.ToLower(pizzaName),
		Price:      price,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) UpdatePrice(id int, newPrice float64) (models.MenuItem, error) {
	if !validation.PositivePrice(newPrice) {
		return models.MenuItem{}, models.InvalidInputf("field 'new_price' is required and must be a positive number")
	}

	item, err := s.getActive(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.Price = newPrice
	if err := s.db.Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) SoftDelete(id int) (models.MenuItem, error) {
	item, err := s.getActive(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.IsDeleted = true
	if err := s.db.Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *menuService) ListForPizzeria(pizzeriaID int) ([]models.MenuEntry, error) {
	// Pre-allocated so an empty menu serializes as [] rather than null
	entries := make([]models.MenuEntry, 0)
	err := s.db.Table("menu").
		Select("menu.pizza_name, menu.price").
		Joins("JOIN pizzeria ON pizzeria.id = menu.pizzeria_id").
		Where("menu.pizzeria_id = ? AND menu.is_deleted = ?", pizzeriaID, false).
		Order("pizzeria.name ASC, menu.id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *menuService) getActive(id int) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MenuItem{}, models.NotFoundf("menu item with id %d", id)
	}
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
