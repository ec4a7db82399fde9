package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	cartTokenHeader = "X-Cart-Token"
	identityKey     = "identity"
)

func (h *handlers) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	id, err := h.deps.CustomerSvc.Authenticate(strings.TrimSpace(token))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.Set(identityKey, id)
	c.Next()
}

func (h *handlers) requireAdmin(c *gin.Context) {
	id := currentIdentity(c)
	if id == nil || !id.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
	c.Next()
}

// cartToken returns the caller's cart token, minting one when the
// header is absent. The token is always echoed back so the client can
// persist it.
func (h *handlers) cartToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader(cartTokenHeader))
	if token == "" {
		token = h.deps.CartStore.NewToken()
	}
	c.Header(cartTokenHeader, token)
	return token
}
