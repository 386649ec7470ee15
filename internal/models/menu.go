package models

// MenuItem represents a pizza on a pizzeria's menu. PizzaName is stored
// lower-cased for case-insensitive uniqueness by convention.
type MenuItem struct {
	ID         int     `json:"id" gorm:"primaryKey"`
	PizzeriaID int     `json:"pizzeria_id" gorm:"column:pizzeria_id;not null"`
	PizzaName  string  `json:"pizza_name" gorm:"column:pizza_name;not null"`
	Price      float64 `json:"price" gorm:"not null"`
	IsDeleted  bool    `json:"is_deleted" gorm:"column:is_deleted;default:false"`
}

// TableName keeps the original schema name
func (MenuItem) TableName() string {
	return "menu"
}

// MenuEntry is the menu listing projection
type MenuEntry struct {
	PizzaName string  `json:"pizza_name"`
	Price     float64 `json:"price"`
}
