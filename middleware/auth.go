package middleware

import (
	"net/http"
	"strings"

	"krishimitra-backend/utils"

	"github.com/gin-gonic/gin"
)

const farmerIDKey = "farmerID"

// RequireAuth validates the bearer token and stores the farmer id in the
// request context. Every mutating route goes through this; handlers must
// take the acting farmer from the context, never from the payload.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		tokenStr := header
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			tokenStr = strings.TrimSpace(header[7:])
		}

		claims, err := utils.ParseToken(tokenStr)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(farmerIDKey, claims.FarmerID)
		c.Next()
	}
}

// FarmerID returns the authenticated farmer id set by RequireAuth.
func FarmerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(farmerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
