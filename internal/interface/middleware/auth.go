package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codefold/user-directory/pkg/helpers"
	"github.com/codefold/user-directory/pkg/response"
)

// Auth validates the bearer token on every request. A missing header, a
// non-bearer scheme, or an unknown token all yield the same 401 body.
func Auth(tokens *helpers.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !tokens.IsValid(parts[1]) {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
