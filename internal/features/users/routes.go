package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the user endpoints onto the API group.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authRequired gin.HandlerFunc) {
	users := router.Group("/users")
	{
		// Public
		users.POST("/signup", handler.Signup)
		users.POST("/signin", handler.Signin)

		// Protected
		users.GET("/profile", authRequired, handler.Profile)
		users.PUT("/profile", authRequired, handler.UpdateProfile)
		users.DELETE("/account", authRequired, handler.DeleteAccount)
	}
}
