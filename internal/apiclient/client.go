// Package apiclient is a thin HTTP client for the task API. The board UI
// uses it when pointed at a running server instead of a local database.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// APIError is a non-2xx response from the task API, carrying the decoded
// envelope error message and any field-level validation errors.
type APIError struct {
	Status           int
	Message          string
	ValidationErrors []types.ValidationError
}

// Error returns the server's error message, or the HTTP status when the
// body carried none.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client calls the task API at a fixed base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope mirrors types.Response with raw data so each call can decode
// into its own result type.
type envelope struct {
	Success          bool                    `json:"success"`
	Data             json.RawMessage         `json:"data"`
	Error            string                  `json:"error"`
	ValidationErrors []types.ValidationError `json:"validationErrors"`
}

// do issues one request and decodes the envelope. A non-2xx status or a
// success:false body becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{
			Status:           resp.StatusCode,
			Message:          env.Error,
			ValidationErrors: env.ValidationErrors,
		}
	}

	return env.Data, nil
}

// List fetches all tasks, optionally sorted.
func (c *Client) List(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error) {
	path := "/api/tasks"
	if sortBy != "" {
		q := url.Values{}
		q.Set("sortBy", sortBy)
		q.Set("sortOrder", sortOrder)
		path += "?" + q.Encode()
	}

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var tasks []types.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	return tasks, nil
}

// Get fetches one task by id.
func (c *Client) Get(ctx context.Context, id string) (*types.Task, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var task types.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}

// Create posts a new task and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, req types.CreateTaskRequest) (*types.Task, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/tasks", req)
	if err != nil {
		return nil, err
	}

	var task types.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}

// Update applies a partial update and returns the merged record.
func (c *Client) Update(ctx context.Context, id string, req types.UpdateTaskRequest) (*types.Task, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var task types.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}

// Delete removes a task by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil)
	return err
}
