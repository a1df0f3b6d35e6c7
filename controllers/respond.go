package controllers

import (
	"errors"
	"net/http"

	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Validation and conflict are both 400, matching the original API.
func respondError(c *gin.Context, err error) {
	var (
		ve *services.ValidationError
		ce *services.ConflictError
		ne *services.NotFoundError
		se *services.StoreError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, gin.H{"error": ce.Message})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Message})
	case errors.As(err, &se):
		logrus.WithError(se.Err).WithField("op", se.Op).Error("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		logrus.WithError(err).Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
