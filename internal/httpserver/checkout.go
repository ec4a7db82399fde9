package httpserver

import (
	"net/http"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Shipping      domain.ShippingInfo `json:"shipping"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
}

func (h *handlers) submitCheckout(c *gin.Context) {
	id := currentIdentity(c)
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "paymentMethod required")
		return
	}

	order, err := h.deps.CheckoutSvc.Submit(c.Request.Context(), checkout.SubmitInput{
		CartToken:     h.cartToken(c),
		CustomerID:    id.CustomerID,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":               order,
		"paymentInstructions": checkout.PaymentInstructions(order.PaymentMethod),
	})
}

func (h *handlers) listOrders(c *gin.Context) {
	id := currentIdentity(c)
	orders, err := h.deps.CheckoutSvc.ListForCustomer(c.Request.Context(), id.CustomerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *handlers) getOrder(c *gin.Context) {
	id := currentIdentity(c)
	order, err := h.deps.CheckoutSvc.Get(c.Request.Context(), id.CustomerID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
