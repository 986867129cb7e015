package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

// RequireRole rejects callers whose token does not carry the given
// role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		if userRole != role {
			utils.RespondError(c, http.StatusForbidden, errors.New(role+" access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
