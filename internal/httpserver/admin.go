package httpserver

import (
	"net/http"
	"strconv"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/service/content"
	"github.com/gin-gonic/gin"
)

// Admin endpoints sit behind requireAuth + requireAdmin; every handler
// here can assume a verified admin identity.

func (h *handlers) adminListBanners(c *gin.Context) {
	banners, err := h.deps.BannerSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *handlers) adminUpsertBanner(c *gin.Context) {
	var banner domain.HeroBanner
	if err := c.ShouldBindJSON(&banner); err != nil {
		h.badRequest(c, "invalid banner payload")
		return
	}
	out, err := h.deps.BannerSvc.Upsert(c.Request.Context(), banner)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (h *handlers) adminSetBannerActive(c *gin.Context) {
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil || order < 1 {
		h.badRequest(c, "order must be a positive integer")
		return
	}
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "isActive required")
		return
	}
	if err := h.deps.BannerSvc.SetActive(c.Request.Context(), order, *req.IsActive); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminUpsertProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.badRequest(c, "invalid product payload")
		return
	}
	out, err := h.deps.CatalogSvc.Upsert(c.Request.Context(), product)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) adminListSettings(c *gin.Context) {
	settings, err := h.deps.ContentSvc.List(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type setSettingRequest struct {
	Value string `json:"value"`
}

func (h *handlers) adminSetSetting(c *gin.Context) {
	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid setting payload")
		return
	}
	out, err := h.deps.ContentSvc.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) adminUpdateBranding(c *gin.Context) {
	var in content.BrandingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, "invalid branding payload")
		return
	}
	if err := h.deps.ContentSvc.UpdateBranding(c.Request.Context(), in); err != nil {
		h.writeError(c, err)
		return
	}
	b, err := h.deps.ContentSvc.Branding(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) adminUpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "status required")
		return
	}
	if err := h.deps.CheckoutSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.badRequest(c, "file required")
		return
	}
	src, err := file.Open()
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer src.Close()

	url, err := h.deps.Uploads.Save(c.Request.Context(), file.Filename, src)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
