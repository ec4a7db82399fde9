package httpserver

import (
	"net/http"
	"strconv"

	"daddybathbomb/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("pageSize"))

	result, err := h.deps.CatalogSvc.List(c.Request.Context(), catalog.ListInput{
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.CatalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) bannerRotation(c *gin.Context) {
	banners := h.deps.BannerSvc.Rotation(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *handlers) branding(c *gin.Context) {
	b, err := h.deps.ContentSvc.Branding(c.Request.Context())
	if err != nil {
		// Branding always has renderable defaults.
		h.logger.Printf("http: branding fell back to defaults: %v", err)
	}
	c.JSON(http.StatusOK, b)
}

func (h *handlers) getSetting(c *gin.Context) {
	s, err := h.deps.ContentSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
