package users

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zubairstack/todoapp/internal/pkg/response"
	"github.com/zubairstack/todoapp/internal/pkg/token"
)

// AuthRequired resolves the bearer token to an account and attaches it to
// the request context. Every failure is terminal for the request.
func AuthRequired(store Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := token.Validate(fields[1], secret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := store.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			response.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID.Hex())
		c.Set("email", user.Email)
		c.Next()
	}
}

// CurrentUser returns the account attached by AuthRequired. Only valid on
// routes behind the gate.
func CurrentUser(c *gin.Context) *User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*User); ok {
			return u
		}
	}
	return nil
}
