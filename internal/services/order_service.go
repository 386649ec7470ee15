package services

import (
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/validation"
	"gorm.io/gorm"
)

// OrderService places and lists orders. Orders are immutable once placed.
type OrderService interface {
	// Create places an order for a person against a menu item. Both
	// references are checked inside the same transaction as the insert, so a
	// reference deleted concurrently cannot leave a dangling order behind.
	Create(personID, menuID int) (models.OrderConfirmation, error)
	// ListForPerson retrieves a person's order history, joined across the
	// menu and pizzeria tables and ordered by order date. Tombstoned menu
	// items and pizzerias still resolve.
	ListForPerson(personID int) ([]models.PersonOrder, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) Create(personID, menuID int) (models.OrderConfirmation, error) {
	if !validation.PositiveID(personID) {
		return models.OrderConfirmation{}, models.InvalidInputf("field 'id' is required and must be a positive number")
	}
	if !validation.PositiveID(menuID) {
		return models.OrderConfirmation{}, models.InvalidInputf("field 'menu_id' is required and must be a positive number")
	}

	order := models.Order{PersonID: personID, MenuID: menuID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := personExists(tx, personID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NotFoundf("person with id %d", personID)
		}

		ok, err = activeExists(tx, &models.MenuItem{}, menuID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NotFoundf("menu item with id %d", menuID)
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return models.OrderConfirmation{}, err
	}

	return models.OrderConfirmation{
		ID:        order.ID,
		PersonID:  order.PersonID,
		MenuID:    order.MenuID,
		OrderDate: order.OrderDate,
	}, nil
}

func (s *orderService) ListForPerson(personID int) ([]models.PersonOrder, error) {
	ok, err := personExists(s.db, personID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NotFoundf("person with id %d", personID)
	}

	// Pre-allocated so an empty history serializes as [] rather than null
	orders := make([]models.PersonOrder, 0)
	err = s.db.Table("person_order AS po").
		Select("p.id, p.name, po.order_date AS date, m.pizza_name, m.price, pi.name AS pizzeria_name").
		Joins("INNER JOIN person p ON p.id = po.person_id").
		Joins("INNER JOIN menu m ON m.id = po.menu_id").
		Joins("INNER JOIN pizzeria pi ON pi.id = m.pizzeria_id").
		Where("p.id = ?", personID).
		Order("po.order_date ASC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
