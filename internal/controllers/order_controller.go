package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// CreateOrder places an order for a person
	CreateOrder(ctx *gin.Context)
	// ListOrders retrieves a person's order history
	ListOrders(ctx *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

type createOrderInput struct {
	MenuID *int `json:"menu_id"`
}

// CreateOrder godoc
// @Summary Place an order
// @Description Place an order for a person against an active menu item
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param order body createOrderInput true "Order to place"
// @Success 201 {object} models.OrderConfirmation
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/person/{id}/order [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	personID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var input createOrderInput
	if !bindStrict(ctx, &input) {
		return
	}

	menuID := 0
	if input.MenuID != nil {
		menuID = *input.MenuID
	}

	confirmation, err := c.service.Create(personID, menuID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, confirmation)
}

// ListOrders godoc
// @Summary List a person's orders
// @Description Get a person's order history with pizza and pizzeria details
// @Tags orders
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {array} models.PersonOrder
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/person/{id}/orders [get]
func (c *orderController) ListOrders(ctx *gin.Context) {
	personID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	orders, err := c.service.ListForPerson(personID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}
