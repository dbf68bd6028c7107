package todos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockStore struct {
	createFunc          func(ctx context.Context, todo *Todo) error
	getByIDFunc         func(ctx context.Context, id, userID string) (*Todo, error)
	listFunc            func(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error)
	updateFunc          func(ctx context.Context, id, userID string, set bson.M) (*Todo, error)
	deleteFunc          func(ctx context.Context, id, userID string) error
	deleteAllByUserFunc func(ctx context.Context, userID string) (int64, error)
}

func (m *mockStore) Create(ctx context.Context, todo *Todo) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, todo)
	}
	return errors.New("not implemented")
}

func (m *mockStore) GetByID(ctx context.Context, id, userID string) (*Todo, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) List(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, q)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockStore) Update(ctx context.Context, id, userID string, set bson.M) (*Todo, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, userID, set)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) Delete(ctx context.Context, id, userID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errors.New("not implemented")
}

func (m *mockStore) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	if m.deleteAllByUserFunc != nil {
		return m.deleteAllByUserFunc(ctx, userID)
	}
	return 0, errors.New("not implemented")
}

const testUserID = "507f1f77bcf86cd799439011"

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))

	r := gin.New()
	api := r.Group("/api")
	authed := func(c *gin.Context) {
		c.Set("userID", testUserID)
		c.Next()
	}
	RegisterRoutes(api, NewHandler(store, log), authed)
	return r
}

func TestCreate_AppliesDefaultsAndOwner(t *testing.T) {
	var created *Todo
	store := &mockStore{
		createFunc: func(ctx context.Context, todo *Todo) error {
			todo.ID = primitive.NewObjectID()
			created = todo
			return nil
		},
	}
	r := newTestRouter(store)

	body := bytes.NewBufferString(`{"title":"Buy milk"}`)
	req := httptest.NewRequest("POST", "/api/todos", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)
	require.NotNil(t, created)
	require.Equal(t, testUserID, created.UserID)
	require.Equal(t, PriorityMedium, created.Priority)
	require.Equal(t, StatusPending, created.Status)
}

func TestCreate_InvalidPriorityWritesNothing(t *testing.T) {
	called := false
	store := &mockStore{
		createFunc: func(ctx context.Context, todo *Todo) error {
			called = true
			return nil
		},
	}
	r := newTestRouter(store)

	body := bytes.NewBufferString(`{"title":"Buy milk","priority":"urgent"}`)
	req := httptest.NewRequest("POST", "/api/todos", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.False(t, called)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Priority must be: low, medium, high", resp["message"])
}

func TestGet_NotOwnedIs404(t *testing.T) {
	store := &mockStore{
		getByIDFunc: func(ctx context.Context, id, userID string) (*Todo, error) {
			// Owner-scoped lookup: someone else's item looks absent.
			return nil, nil
		},
	}
	r := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/todos/507f1f77bcf86cd799439099", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Todo not found", resp["message"])
}

func TestGet_MalformedID(t *testing.T) {
	r := newTestRouter(&mockStore{})

	req := httptest.NewRequest("GET", "/api/todos/not-an-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
}

func TestList_PaginationMeta(t *testing.T) {
	var gotQuery ListQuery
	store := &mockStore{
		listFunc: func(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error) {
			gotQuery = q
			items := make([]Todo, 5)
			for i := range items {
				items[i] = Todo{ID: primitive.NewObjectID(), UserID: userID, Title: "item", CreatedAt: time.Now()}
			}
			return items, 12, nil
		},
	}
	r := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/todos?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, 2, gotQuery.Page)
	require.Equal(t, 5, gotQuery.Limit)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Todos, 5)
	require.Equal(t, 2, resp.Pagination.CurrentPage)
	require.Equal(t, 3, resp.Pagination.TotalPages)
	require.Equal(t, int64(12), resp.Pagination.TotalTodos)
	require.True(t, resp.Pagination.HasNextPage)
	require.True(t, resp.Pagination.HasPrevPage)
}

func TestList_DefaultsAndInvalidFilters(t *testing.T) {
	var gotQuery ListQuery
	store := &mockStore{
		listFunc: func(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error) {
			gotQuery = q
			return []Todo{}, 0, nil
		},
	}
	r := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/todos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, 1, gotQuery.Page)
	require.Equal(t, 5, gotQuery.Limit)
	require.Equal(t, "createdAt", gotQuery.SortBy)
	require.Equal(t, "desc", gotQuery.Order)

	req = httptest.NewRequest("GET", "/api/todos?priority=urgent", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 400, w.Code)
}

func TestUpdate_PartialOnlyTouchesPresentFields(t *testing.T) {
	var gotSet bson.M
	store := &mockStore{
		updateFunc: func(ctx context.Context, id, userID string, set bson.M) (*Todo, error) {
			gotSet = set
			return &Todo{ID: primitive.NewObjectID(), UserID: userID, Title: "kept", Status: StatusCompleted}, nil
		},
	}
	r := newTestRouter(store)

	body := bytes.NewBufferString(`{"status":"completed"}`)
	req := httptest.NewRequest("PUT", "/api/todos/507f1f77bcf86cd799439099", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, bson.M{"status": "completed"}, gotSet)
}

func TestUpdate_EmptyPayloadRejected(t *testing.T) {
	r := newTestRouter(&mockStore{})

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest("PUT", "/api/todos/507f1f77bcf86cd799439099", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	store := &mockStore{
		updateFunc: func(ctx context.Context, id, userID string, set bson.M) (*Todo, error) {
			return nil, ErrNotFound
		},
	}
	r := newTestRouter(store)

	body := bytes.NewBufferString(`{"title":"new"}`)
	req := httptest.NewRequest("PUT", "/api/todos/507f1f77bcf86cd799439099", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
}

func TestDelete(t *testing.T) {
	store := &mockStore{
		deleteFunc: func(ctx context.Context, id, userID string) error {
			require.Equal(t, testUserID, userID)
			return nil
		},
	}
	r := newTestRouter(store)

	req := httptest.NewRequest("DELETE", "/api/todos/507f1f77bcf86cd799439099", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	store.deleteFunc = func(ctx context.Context, id, userID string) error {
		return ErrNotFound
	}
	req = httptest.NewRequest("DELETE", "/api/todos/507f1f77bcf86cd799439099", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 404, w.Code)
}
