package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	token := h.cartToken(c)
	c.JSON(http.StatusOK, h.deps.CartStore.Get(c.Request.Context(), token))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "productId required")
		return
	}
	product, err := h.deps.CatalogSvc.Get(c.Request.Context(), strings.TrimSpace(req.ProductID))
	if err != nil {
		h.writeError(c, err)
		return
	}
	token := h.cartToken(c)
	cart := h.deps.CartStore.AddItem(c.Request.Context(), token, *product, req.Quantity)
	c.JSON(http.StatusOK, cart)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "quantity required")
		return
	}
	token := h.cartToken(c)
	cart := h.deps.CartStore.UpdateQuantity(c.Request.Context(), token, c.Param("productID"), req.Quantity)
	c.JSON(http.StatusOK, cart)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	token := h.cartToken(c)
	cart := h.deps.CartStore.RemoveItem(c.Request.Context(), token, c.Param("productID"))
	c.JSON(http.StatusOK, cart)
}

func (h *handlers) clearCart(c *gin.Context) {
	token := h.cartToken(c)
	c.JSON(http.StatusOK, h.deps.CartStore.Clear(c.Request.Context(), token))
}
