package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzeriaController handles HTTP requests related to pizzerias
type PizzeriaController interface {
	// ListPizzerias retrieves all active pizzerias
	ListPizzerias(ctx *gin.Context)
	// CreatePizzeria creates a new pizzeria
	CreatePizzeria(ctx *gin.Context)
	// ChangeRating updates the rating of a pizzeria
	ChangeRating(ctx *gin.Context)
	// DeletePizzeria soft-deletes a pizzeria
	DeletePizzeria(ctx *gin.Context)
}

type pizzeriaController struct {
	service services.PizzeriaService
}

// NewPizzeriaController creates a new instance of PizzeriaController
func NewPizzeriaController(service services.PizzeriaService) PizzeriaController {
	return &pizzeriaController{service: service}
}

type createPizzeriaInput struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

type changeRatingInput struct {
	NewRating *float64 `json:"new_rating"`
}

// ListPizzerias godoc
// @Summary List pizzerias
// @Description Get all pizzerias that have not been deleted, ordered by name
// @Tags pizzerias
// @Produce json
// @Success 200 {array} models.PizzeriaRef
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pizzeria [get]
func (c *pizzeriaController) ListPizzerias(ctx *gin.Context) {
	pizzerias, err := c.service.ListActive()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzerias)
}

// CreatePizzeria godoc
// @Summary Create a pizzeria
// @Description Create a new pizzeria with an optional rating (default 0)
// @Tags pizzerias
// @Accept json
// @Produce json
// @Param pizzeria body createPizzeriaInput true "Pizzeria to create"
// @Success 201 {object} models.Pizzeria
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pizzeria [post]
func (c *pizzeriaController) CreatePizzeria(ctx *gin.Context) {
	var input createPizzeriaInput
	if !bindStrict(ctx, &input) {
		return
	}

	pizzeria, err := c.service.Create(input.Name, input.Rating)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizzeria)
}

// ChangeRating godoc
// @Summary Change a pizzeria's rating
// @Description Update the rating of an active pizzeria
// @Tags pizzerias
// @Accept json
// @Produce json
// @Param id path int true "Pizzeria ID"
// @Param rating body changeRatingInput true "New rating"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pizzeria/change/rating/{id} [post]
func (c *pizzeriaController) ChangeRating(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var input changeRatingInput
	if !bindStrict(ctx, &input) {
		return
	}

	pizzeria, err := c.service.UpdateRating(id, input.NewRating)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{
		Message:  fmt.Sprintf("Rating of pizzeria with ID %d changed successfully", id),
		Pizzeria: pizzeria,
	})
}

// DeletePizzeria godoc
// @Summary Delete a pizzeria
// @Description Soft-delete a pizzeria, keeping the row for order history
// @Tags pizzerias
// @Produce json
// @Param id path int true "Pizzeria ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pizzeria/{id} [delete]
func (c *pizzeriaController) DeletePizzeria(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	pizzeria, err := c.service.SoftDelete(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.MessageResponse{
		Message:  fmt.Sprintf("Pizzeria with ID %d deleted successfully", id),
		Pizzeria: pizzeria,
	})
}
