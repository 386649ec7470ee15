package services

import (
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"gorm.io/gorm"
)

// Existence checks run before any mutating statement that depends on the
// reference being valid. A mutation must never be issued against a dangling
// or tombstoned reference.

// activeExists reports whether a row of the given model exists and has not
// been soft-deleted.
func activeExists(db *gorm.DB, model interface{}, id int) (bool, error) {
	var count int64
	err := db.Model(model).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// personExists reports whether a person row exists. Person rows carry no
// tombstone, so plain existence is sufficient.
func personExists(db *gorm.DB, id int) (bool, error) {
	var count int64
	err := db.Model(&models.Person{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
