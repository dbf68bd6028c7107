package todos

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zubairstack/todoapp/internal/pkg/validator"
)

// ValidateCreateTodo checks a creation payload before data access.
func ValidateCreateTodo(req *CreateTodoRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("Title is required.")
	}
	if req.Priority != "" && !isValidPriority(req.Priority) {
		return errors.New("Priority must be: low, medium, high")
	}
	if req.Status != "" && !isValidStatus(req.Status) {
		return errors.New("Status must be pending or completed")
	}
	if req.DueDate != "" {
		if _, ok := validator.ParseDate(req.DueDate); !ok {
			return errors.New("Invalid date format")
		}
	}
	return nil
}

// ValidateUpdateTodo checks a partial update. Only present fields are
// validated; nil means the field is untouched.
func ValidateUpdateTodo(req *UpdateTodoRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return errors.New("Title cannot be empty")
	}
	if req.Priority != nil && !isValidPriority(*req.Priority) {
		return errors.New("Priority must be: low, medium, high")
	}
	if req.Status != nil && !isValidStatus(*req.Status) {
		return errors.New("Status must be pending or completed")
	}
	if req.DueDate != nil && *req.DueDate != "" {
		if _, ok := validator.ParseDate(*req.DueDate); !ok {
			return errors.New("Invalid date format")
		}
	}
	return nil
}

// ValidateTodoID ensures a path parameter is a well-formed ObjectID.
func ValidateTodoID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return errors.New("Invalid todo ID")
	}
	return nil
}

// ParseDueDate converts a non-empty due date string to a time.
func ParseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, ok := validator.ParseDate(value); ok {
		return &t
	}
	return nil
}

func isValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func isValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}
