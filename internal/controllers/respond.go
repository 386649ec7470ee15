package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-orders-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-orders-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// respondError maps a service error onto the HTTP error taxonomy. Store
// failures are logged with their cause and answered with a generic message:
// database diagnostics never reach the client.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.WithFields(logrus.Fields{
			"path":  ctx.FullPath(),
			"error": err.Error(),
		}).Error("store failure")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindStrict decodes the JSON request body into dst, rejecting unknown
// fields so malformed payloads fail deterministically instead of being
// silently ignored.
func bindStrict(ctx *gin.Context, dst interface{}) bool {
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// pathID parses a positive-integer path parameter, answering 400 on failure
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, ok := validation.PositiveInt(ctx.Param(name))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("path parameter '%s' must be a positive number", name),
		})
		return 0, false
	}
	return id, true
}
