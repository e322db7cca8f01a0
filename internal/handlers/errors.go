package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskforge-dev/taskforge/internal/logger"
	"github.com/taskforge-dev/taskforge/internal/store"
)

// respondStoreError maps the store's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy becomes an opaque 500.
func respondStoreError(ctx *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, store.ErrDuplicateEmail):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
	case errors.Is(err, store.ErrUnavailable):
		logger.Errorf("store unavailable: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	case errors.Is(err, store.ErrConsistency):
		logger.Errorf("consistency violation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		logger.Errorf("unexpected store error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
