package models

// Pizzeria represents a pizzeria with its rating and soft-delete tombstone
type Pizzeria struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"not null"`
	Rating    float64 `json:"rating" gorm:"default:0"`
	IsDeleted bool    `json:"is_deleted" gorm:"column:is_deleted;default:false"`
}

// TableName keeps the original schema name
func (Pizzeria) TableName() string {
	return "pizzeria"
}

// PizzeriaRef is the listing projection: id and name only
type PizzeriaRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
