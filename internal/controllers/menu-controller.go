package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to menu items
type MenuController interface {
	// GetMenu retrieves the active menu of a pizzeria
	GetMenu(ctx *gin.Context)
	// CreateMenuItem adds a pizza to a pizzeria's menu
	CreateMenuItem(ctx *gin.Context)
	// ChangePrice updates the price of a menu item
	ChangePrice(ctx *gin.Context)
	// DeleteMenuItem soft-deletes a menu item
	DeleteMenuItem(ctx *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

type createMenuItemInput struct {
	PizzaName string   `json:"pizza_name"`
	Price     *float64 `json:"price"`
}

type changePriceInput struct {
	NewPrice *float64 `json:"new_price"`
}

// GetMenu godoc
// @Summary Get a pizzeria's menu
// @Description Get the active menu entries of a pizzeria
// @Tags menu
// @Produce json
// @Param id path int true "Pizzeria ID"
// @Success 200 {array} models.MenuEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/menu/{id} [get]
func (c *menuController) GetMenu(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	entries, err := c.service.ListForPizzeria(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// CreateMenuItem godoc
// @Summary Add a pizza to a menu
// @Description Add a pizza to the menu of an active pizzeria. The name is stored lower-cased.
// @Tags menu
// @Accept json
// @Produce json
// @Param pizzeria_id path int true "Pizzeria ID"
// @Param item body createMenuItemInput true "Menu item to create"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/menu/{pizzeria_id} [post]
func (c *menuController) CreateMenuItem(ctx *gin.Context) {
	pizzeriaID, ok := pathID(ctx, "pizzeria_id")
	if !ok {
		return
	}

	var input createMenuItemInput
	if !bindStrict(ctx, &input) {
		return
	}

	price := 0.0
	if input.Price != nil {
		price = *input.Price
	}

	item, err := c.service.Create(pizzeriaID, input.PizzaName, price)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// ChangePrice godoc
// @Summary Change a menu item's price
// @Description Update the price of an active menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param price body changePriceInput true "New price"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/menu/change/price/{id} [post]
func (c *menuController) ChangePrice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var input changePriceInput
	if !bindStrict(ctx, &input) {
		return
	}

	newPrice := 0.0
	if input.NewPrice != nil {
		newPrice = *input.NewPrice
	}

	item, err := c.service.UpdatePrice(id, newPrice)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{
		Message:  fmt.Sprintf("Price of pizza with ID %d changed successfully", id),
		Pizzeria: item,
	})
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Soft-delete a menu item, keeping the row for order history
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/menu/{id} [delete]
func (c *menuController) DeleteMenuItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	item, err := c.service.SoftDelete(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{
		Message:  fmt.Sprintf("Menu item with ID %d deleted successfully", id),
		Pizzeria: item,
	})
}
