package services

import (
	"testing"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPerson(t *testing.T, db *gorm.DB, name string) models.Person {
	person := models.Person{Name: name, Age: 30, Gender: "female", Address: "12 Baker Street"}
	require.NoError(t, db.Create(&person).Error)
	return person
}

func TestOrderCreate(t *testing.T) {
	db := setupTestDB(t)
	pizzerias := NewPizzeriaService(db)
	menus := NewMenuService(db)
	orders := NewOrderService(db)

	person := seedPerson(t, db, "Anna Petrova")
	pizzeria, err := pizzerias.Create("Mario's", nil)
	require.NoError(t, err)
	item, err := menus.Create(pizzeria.ID, "Margherita", 8.0)
	require.NoError(t, err)

	t.Run("echoes both references back with a server-assigned date", func(t *testing.T) {
		confirmation, err := orders.Create(person.ID, item.ID)
		require.NoError(t, err)
		assert.NotZero(t, confirmation.ID)
		assert.Equal(t, person.ID, confirmation.PersonID)
		assert.Equal(t, item.ID, confirmation.MenuID)
		assert.False(t, confirmation.OrderDate.IsZero())
	})

	t.Run("unknown menu item leaves the orders table unchanged", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&models.Order{}).Count(&before).Error)

		_, err := orders.Create(person.ID, 999)
		assert.ErrorIs(t, err, models.ErrNotFound)

		var after int64
		require.NoError(t, db.Model(&models.Order{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("unknown person yields not found", func(t *testing.T) {
		_, err := orders.Create(999, item.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("soft-deleted menu item yields not found", func(t *testing.T) {
		retired, err := menus.Create(pizzeria.ID, "Calzone", 7.5)
		require.NoError(t, err)
		_, err = menus.SoftDelete(retired.ID)
		require.NoError(t, err)

		_, err = orders.Create(person.ID, retired.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("non-positive ids are invalid input", func(t *testing.T) {
		_, err := orders.Create(0, item.ID)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
		_, err = orders.Create(person.ID, -1)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestOrderListForPerson(t *testing.T) {
	db := setupTestDB(t)
	pizzerias := NewPizzeriaService(db)
	menus := NewMenuService(db)
	orders := NewOrderService(db)

	person := seedPerson(t, db, "Anna Petrova")

	t.Run("unknown person yields not found", func(t *testing.T) {
		_, err := orders.ListForPerson(999)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("person without orders gets an empty history", func(t *testing.T) {
		history, err := orders.ListForPerson(person.ID)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("joins order, menu and pizzeria into one row", func(t *testing.T) {
		pizzeria, err := pizzerias.Create("Mario's", nil)
		require.NoError(t, err)
		item, err := menus.Create(pizzeria.ID, "Margherita", 8.0)
		require.NoError(t, err)
		_, err = orders.Create(person.ID, item.ID)
		require.NoError(t, err)

		history, err := orders.ListForPerson(person.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, person.ID, history[0].ID)
		assert.Equal(t, "Anna Petrova", history[0].Name)
		assert.Equal(t, "margherita", history[0].PizzaName)
		assert.Equal(t, 8.0, history[0].Price)
		assert.Equal(t, "Mario's", history[0].PizzeriaName)
		assert.False(t, history[0].Date.IsZero())
	})

	t.Run("history survives soft deletion of menu item and pizzeria", func(t *testing.T) {
		pizzeria, err := pizzerias.Create("Napoli Express", nil)
		require.NoError(t, err)
		item, err := menus.Create(pizzeria.ID, "Diavola", 9.0)
		require.NoError(t, err)
		_, err = orders.Create(person.ID, item.ID)
		require.NoError(t, err)

		_, err = menus.SoftDelete(item.ID)
		require.NoError(t, err)
		_, err = pizzerias.SoftDelete(pizzeria.ID)
		require.NoError(t, err)

		// The tombstoned pizzeria has left the active listing
		refs, err := pizzerias.ListActive()
		require.NoError(t, err)
		for _, ref := range refs {
			assert.NotEqual(t, pizzeria.ID, ref.ID)
		}

		// But the order against it is still resolvable
		history, err := orders.ListForPerson(person.ID)
		require.NoError(t, err)

		found := false
		for _, row := range history {
			if row.PizzaName == "diavola" {
				found = true
				assert.Equal(t, "Napoli Express", row.PizzeriaName)
			}
		}
		assert.True(t, found, "order against tombstoned menu item must remain in history")
	})
}
