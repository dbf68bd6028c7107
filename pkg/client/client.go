// Package client is a Go client for the todo API. It attaches the stored
// bearer token to every request, normalizes error bodies into APIError,
// and notifies the caller when the server rejects the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TokenStore holds the bearer token between requests. Implementations are
// injected at construction so the client stays decoupled from wherever the
// application keeps credentials.
type TokenStore interface {
	Token() string
	Set(token string)
	Clear()
}

// MemoryTokenStore is a concurrency-safe in-memory TokenStore.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError is the normalized shape of every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenStore
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUnauthorizedHandler registers a callback invoked whenever the server
// answers 401. The stored token is already cleared when it runs.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a client for the API rooted at baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User is the public account shape returned by the API.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProfilePic string `json:"profile_pic"`
}

// Todo mirrors the API's todo shape.
type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Pagination is the metadata block of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalTodos  int64 `json:"totalTodos"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// TodoList is the result of ListTodos.
type TodoList struct {
	Todos      []Todo     `json:"todos"`
	Pagination Pagination `json:"pagination"`
}

// SignupParams are the signup form fields. ProfilePic is optional.
type SignupParams struct {
	Username       string
	Email          string
	Password       string
	ProfilePic     io.Reader
	ProfilePicName string
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, params SignupParams) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"username": params.Username,
		"email":    params.Email,
		"password": params.Password,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	if params.ProfilePic != nil {
		name := params.ProfilePicName
		if name == "" {
			name = "profile.jpg"
		}
		part, err := w.CreateFormFile("profile_pic", name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, params.ProfilePic); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/users/signup", nil, &buf, w.FormDataContentType(), nil)
}

// Signin authenticates and stores the returned token for later requests.
func (c *Client) Signin(ctx context.Context, email, password string) error {
	body, err := jsonBody(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/signin", nil, body, "application/json", &out); err != nil {
		return err
	}

	c.tokens.Set(out.Token)
	return nil
}

// Profile fetches the authenticated account.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateProfileParams are the optional profile fields to change.
type UpdateProfileParams struct {
	Username       string
	ProfilePic     io.Reader
	ProfilePicName string
}

// UpdateProfile changes the username and/or profile picture.
func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if params.Username != "" {
		if err := w.WriteField("username", params.Username); err != nil {
			return nil, err
		}
	}
	if params.ProfilePic != nil {
		name := params.ProfilePicName
		if name == "" {
			name = "profile.jpg"
		}
		part, err := w.CreateFormFile("profile_pic", name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, params.ProfilePic); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/profile", nil, &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteAccount removes the authenticated account and clears the token.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/users/account", nil, nil, "", nil); err != nil {
		return err
	}
	c.tokens.Clear()
	return nil
}

// CreateTodoParams are the fields of a new todo.
type CreateTodoParams struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// CreateTodo creates a todo for the authenticated account.
func (c *Client) CreateTodo(ctx context.Context, params CreateTodoParams) (*Todo, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	var out struct {
		Todo Todo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodPost, "/todos", nil, body, "application/json", &out); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}

// GetTodo fetches one todo by id.
func (c *Client) GetTodo(ctx context.Context, id string) (*Todo, error) {
	var out struct {
		Todo Todo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodGet, "/todos/"+url.PathEscape(id), nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}

// ListOptions are the supported list parameters; zero values are omitted.
type ListOptions struct {
	Search   string
	Status   string
	Priority string
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// ListTodos fetches one page of todos.
func (c *Client) ListTodos(ctx context.Context, opts ListOptions) (*TodoList, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Priority != "" {
		query.Set("priority", opts.Priority)
	}
	if opts.SortBy != "" {
		query.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		query.Set("order", opts.Order)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out TodoList
	if err := c.do(ctx, http.MethodGet, "/todos", query, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTodoParams are the optional fields of a partial update. Nil fields
// are left untouched by the server.
type UpdateTodoParams struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// UpdateTodo applies a partial update to one todo.
func (c *Client) UpdateTodo(ctx context.Context, id string, params UpdateTodoParams) (*Todo, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	var out struct {
		Todo Todo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodPut, "/todos/"+url.PathEscape(id), nil, body, "application/json", &out); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}

// DeleteTodo removes one todo.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, nil, "", nil)
}

func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// do sends a request with the stored token attached and decodes the
// response into out. Non-2xx responses become *APIError; a 401 clears the
// token and runs the unauthorized handler first.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorMessage extracts the message from a {message} or {error} body.
func errorMessage(body io.Reader) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "request failed"
}
