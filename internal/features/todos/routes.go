package todos

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the todo endpoints onto the API group. Every route
// sits behind the auth gate.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authRequired gin.HandlerFunc) {
	todos := router.Group("/todos")
	todos.Use(authRequired)
	{
		todos.POST("", handler.Create)
		todos.GET("", handler.List)
		todos.GET("/:id", RequireValidID(), handler.Get)
		todos.PUT("/:id", RequireValidID(), handler.Update)
		todos.DELETE("/:id", RequireValidID(), handler.Delete)
	}
}
