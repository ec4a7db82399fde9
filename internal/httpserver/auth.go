package httpserver

import (
	"net/http"

	"daddybathbomb/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *handlers) signup(c *gin.Context) {
	var req customer.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid signup payload")
		return
	}
	created, err := h.deps.CustomerSvc.Signup(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "email and password required")
		return
	}
	sess, err := h.deps.CustomerSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *handlers) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "refreshToken required")
		return
	}
	sess, err := h.deps.CustomerSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
