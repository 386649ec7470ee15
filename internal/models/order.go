package models

import "time"

// Order links a person to a menu item. Orders are immutable once placed:
// no update or delete operation exists, and they survive soft deletion of
// the referenced menu item or pizzeria.
type Order struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	PersonID  int       `json:"person_id" gorm:"column:person_id;not null"`
	MenuID    int       `json:"menu_id" gorm:"column:menu_id;not null"`
	OrderDate time.Time `json:"order_date" gorm:"column:order_date;autoCreateTime"`
}

// TableName keeps the original schema name
func (Order) TableName() string {
	return "person_order"
}

// OrderConfirmation echoes the placed order back to the client so it can
// reconcile the response against what it sent.
type OrderConfirmation struct {
	ID        int       `json:"id"`
	PersonID  int       `json:"person_id"`
	MenuID    int       `json:"menu_id"`
	OrderDate time.Time `json:"order_date"`
}

// PersonOrder is the denormalized order history projection joined across
// person_order, person, menu and pizzeria.
type PersonOrder struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	PizzaName    string    `json:"pizza_name"`
	Price        float64   `json:"price"`
	PizzeriaName string    `json:"pizzeria_name"`
}
