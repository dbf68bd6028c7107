package todos

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zubairstack/todoapp/internal/pkg/pagination"
	"github.com/zubairstack/todoapp/internal/pkg/response"
)

type Handler struct {
	store Store
	log   *logrus.Logger
}

func NewHandler(store Store, log *logrus.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// Create godoc
// @Summary Create a new todo
// @Description Create a todo owned by the authenticated user
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateCreateTodo(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	todo := &Todo{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     ParseDueDate(req.DueDate),
	}

	if todo.Priority == "" {
		todo.Priority = PriorityMedium
	}
	if todo.Status == "" {
		todo.Status = StatusPending
	}

	if err := h.store.Create(c.Request.Context(), todo); err != nil {
		h.log.WithError(err).Error("todo insert failed")
		response.InternalServerError(c)
		return
	}

	response.Created(c, gin.H{"message": "Todo Created.", "todo": todo})
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	todo, err := h.store.GetByID(c.Request.Context(), todoID, userID)
	if err != nil {
		h.log.WithError(err).Error("todo fetch failed")
		response.InternalServerError(c)
		return
	}
	if todo == nil {
		response.NotFound(c, "Todo not found")
		return
	}

	response.OK(c, gin.H{"todo": todo})
}

// List godoc
// @Summary List todos
// @Description List the authenticated user's todos with search, filters, sorting and pagination
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring match on title or description"
// @Param status query string false "Filter by status" Enums(pending, completed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Param sortBy query string false "Sort field (default createdAt)"
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 5)"
// @Success 200 {object} ListResponse
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 500 {object} response.ServerErrorResponse
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	status := c.Query("status")
	if status != "" && !isValidStatus(status) {
		response.BadRequest(c, "Status must be pending or completed")
		return
	}
	priority := c.Query("priority")
	if priority != "" && !isValidPriority(priority) {
		response.BadRequest(c, "Priority must be: low, medium, high")
		return
	}

	params := pagination.Parse(c.Query("page"), c.Query("limit"))
	query := ListQuery{
		Search:   c.Query("search"),
		Status:   status,
		Priority: priority,
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
		Order:    c.DefaultQuery("order", "desc"),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	todos, total, err := h.store.List(c.Request.Context(), userID, query)
	if err != nil {
		h.log.WithError(err).Error("todo list failed")
		response.InternalServerError(c)
		return
	}

	totalPages := pagination.TotalPages(total, params.Limit)
	response.OK(c, ListResponse{
		Todos: todos,
		Pagination: ListMeta{
			CurrentPage: params.Page,
			TotalPages:  totalPages,
			TotalTodos:  total,
			Limit:       params.Limit,
			HasNextPage: params.Page < totalPages,
			HasPrevPage: params.Page > 1,
		},
	})
}

// Update godoc
// @Summary Update a todo
// @Description Partial update: only fields present in the payload change
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	if err := ValidateUpdateTodo(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.DueDate != nil {
		set["dueDate"] = ParseDueDate(*req.DueDate)
	}

	if len(set) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	todo, err := h.store.Update(c.Request.Context(), todoID, userID, set)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Todo not found")
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid todo ID")
		default:
			h.log.WithError(err).Error("todo update failed")
			response.InternalServerError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "Todo Updated", "todo": todo})
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), todoID, userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Todo not found")
		case errors.Is(err, ErrInvalidID):
			response.BadRequest(c, "Invalid todo ID")
		default:
			h.log.WithError(err).Error("todo delete failed")
			response.InternalServerError(c)
		}
		return
	}

	response.Message(c, "Todo deleted successfully")
}

// RequireValidID rejects malformed :id path parameters before the handler runs.
func RequireValidID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ValidateTodoID(c.Param("id")); err != nil {
			response.BadRequest(c, err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
