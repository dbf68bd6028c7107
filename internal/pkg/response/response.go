package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the standard body for client errors and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message" example:"Todo not found"`
}

// ServerErrorResponse is the body returned for unhandled failures.
type ServerErrorResponse struct {
	Error string `json:"error" example:"Internal server error"`
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created sends a 201 response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Message sends a 200 response containing only a message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error sends a client error with the given status code and message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 Not Found error.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError sends a generic 500 without leaking the cause.
func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ServerErrorResponse{Error: "Internal server error"})
}
