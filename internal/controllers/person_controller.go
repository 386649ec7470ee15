package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PersonController handles HTTP requests related to persons
type PersonController interface {
	// ListPersons retrieves all persons
	ListPersons(ctx *gin.Context)
}

type personController struct {
	service services.PersonService
}

// NewPersonController creates a new instance of PersonController
func NewPersonController(service services.PersonService) PersonController {
	return &personController{service: service}
}

// ListPersons godoc
// @Summary List persons
// @Description Get all persons ordered by name
// @Tags persons
// @Produce json
// @Success 200 {array} models.Person
// @Failure 500 {object} models.ErrorResponse
// @Router /api/persons [get]
func (c *personController) ListPersons(ctx *gin.Context) {
	persons, err := c.service.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, persons)
}
