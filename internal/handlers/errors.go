package handlers

import (
	"errors"
	"net/http"

	"github.com/kiranvs080988/Boutique1/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures to HTTP status codes: missing records
// to 404, duplicate keys to 409, bad input to 400 and anything else (a
// data-access failure) to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound), errors.Is(err, services.ErrWorkOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateMobile):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
