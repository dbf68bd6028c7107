package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignin_StoresTokenAndAttachesIt(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/signin":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-123", "message": "Signin successful."})
		case "/api/users/profile":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"username": "jane_doe"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	c := New(srv.URL+"/api", tokens)

	require.NoError(t, c.Signin(context.Background(), "jane@example.com", "hunter42"))
	require.Equal(t, "tok-123", tokens.Token())

	user, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "jane_doe", user.Username)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorized_ClearsTokenAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	tokens.Set("stale-token")

	notified := false
	c := New(srv.URL+"/api", tokens, WithUnauthorizedHandler(func() { notified = true }))

	_, err := c.Profile(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid or expired token", apiErr.Message)

	require.Empty(t, tokens.Token())
	require.True(t, notified)
}

func TestErrorMessage_Normalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusConflict, `{"message":"Email already exists."}`, "Email already exists."},
		{"error field", http.StatusInternalServerError, `{"error":"Internal server error"}`, "Internal server error"},
		{"unparseable body", http.StatusBadGateway, `<html>bad gateway</html>`, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL+"/api", &MemoryTokenStore{})
			err := c.Signup(context.Background(), SignupParams{Username: "jane_doe", Email: "jane@example.com", Password: "hunter42"})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestListTodos_QueryEncoding(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(TodoList{
			Todos:      []Todo{{Title: "buy milk"}},
			Pagination: Pagination{CurrentPage: 2, TotalPages: 3, TotalTodos: 12, Limit: 5, HasNextPage: true, HasPrevPage: true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", &MemoryTokenStore{})
	list, err := c.ListTodos(context.Background(), ListOptions{
		Search:   "milk & eggs",
		Status:   "pending",
		Priority: "high",
		SortBy:   "dueDate",
		Order:    "asc",
		Page:     2,
		Limit:    5,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"milk & eggs"}, gotQuery["search"])
	require.Equal(t, []string{"pending"}, gotQuery["status"])
	require.Equal(t, []string{"high"}, gotQuery["priority"])
	require.Equal(t, []string{"dueDate"}, gotQuery["sortBy"])
	require.Equal(t, []string{"asc"}, gotQuery["order"])
	require.Equal(t, []string{"2"}, gotQuery["page"])
	require.Equal(t, []string{"5"}, gotQuery["limit"])

	require.Len(t, list.Todos, 1)
	require.Equal(t, int64(12), list.Pagination.TotalTodos)
	require.True(t, list.Pagination.HasNextPage)
}

func TestListTodos_ZeroOptionsSendNoQuery(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(TodoList{})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", &MemoryTokenStore{})
	_, err := c.ListTodos(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Empty(t, rawQuery)
}

func TestDeleteAccount_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/users/account", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Account deleted."})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	tokens.Set("tok-123")

	c := New(srv.URL+"/api", tokens)
	require.NoError(t, c.DeleteAccount(context.Background()))
	require.Empty(t, tokens.Token())
}

func TestUpdateTodo_OmitsNilFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"todo": Todo{Title: "buy milk", Status: "completed"}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", &MemoryTokenStore{})
	status := "completed"
	todo, err := c.UpdateTodo(context.Background(), "507f1f77bcf86cd799439011", UpdateTodoParams{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "completed", todo.Status)

	require.Equal(t, map[string]any{"status": "completed"}, gotBody)
}

func TestDo_NetworkErrorIsNotAPIError(t *testing.T) {
	c := New("http://127.0.0.1:1", &MemoryTokenStore{})
	_, err := c.Profile(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}
