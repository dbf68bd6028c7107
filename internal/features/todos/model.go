package todos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Status values
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Todo represents a todo item
// @Description Todo item with all its properties
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	UserID      string             `bson:"userId" json:"userId" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" example:"Buy groceries"`
	Description string             `bson:"description" json:"description" example:"Get milk, bread, and eggs"`
	Priority    string             `bson:"priority" json:"priority" example:"medium" enums:"low,medium,high"`
	Status      string             `bson:"status" json:"status" example:"pending" enums:"pending,completed"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty" example:"2026-12-31T00:00:00Z"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateTodoRequest represents todo creation data
// @Description Data required to create a new todo
type CreateTodoRequest struct {
	Title       string `json:"title" example:"Buy groceries"`
	Description string `json:"description" example:"Get milk, bread, and eggs"`
	Priority    string `json:"priority" example:"medium" enums:"low,medium,high"`
	Status      string `json:"status" example:"pending" enums:"pending,completed"`
	DueDate     string `json:"dueDate" example:"2026-12-31"`
}

// UpdateTodoRequest represents a partial todo update. Pointer fields
// distinguish "absent" from "set to the zero value".
// @Description Any subset of todo fields to change
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" example:"Buy groceries"`
	Description *string `json:"description,omitempty" example:"Get milk, bread, and eggs"`
	Priority    *string `json:"priority,omitempty" example:"high" enums:"low,medium,high"`
	Status      *string `json:"status,omitempty" example:"completed" enums:"pending,completed"`
	DueDate     *string `json:"dueDate,omitempty" example:"2026-12-31"`
}

// ListQuery captures the supported list parameters.
type ListQuery struct {
	Search   string
	Status   string
	Priority string
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// ListMeta is the pagination block of a list response.
type ListMeta struct {
	CurrentPage int   `json:"currentPage" example:"2"`
	TotalPages  int   `json:"totalPages" example:"3"`
	TotalTodos  int64 `json:"totalTodos" example:"12"`
	Limit       int   `json:"limit" example:"5"`
	HasNextPage bool  `json:"hasNextPage" example:"true"`
	HasPrevPage bool  `json:"hasPrevPage" example:"true"`
}

// ListResponse is the body of GET /todos.
type ListResponse struct {
	Todos      []Todo   `json:"todos"`
	Pagination ListMeta `json:"pagination"`
}
