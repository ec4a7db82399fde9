package httpserver

import (
	"errors"
	"log"
	"net/http"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/service/checkout"
	"daddybathbomb/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

func currentIdentity(c *gin.Context) *customer.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*customer.Identity)
	return id
}

// writeError maps service errors to HTTP statuses. Unexpected errors
// are logged and answered with a generic message.
func (h *handlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, customer.ErrInvalidCredentials), errors.Is(err, customer.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrBadPaymentMethod),
		errors.Is(err, checkout.ErrBadTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Printf("http: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

func (h *handlers) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
