package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// DefaultBaseURL is where a locally running server exposes the API.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// DefaultTimeout bounds each request made with the default HTTP client.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Client talks to the task API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Client for the API at baseURL, for example
// "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Recent returns up to count of the most recent active tasks, newest first.
// A count of zero or less lets the server apply its default.
func (c *Client) Recent(ctx context.Context, count int) ([]domain.TaskView, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}
	var views []domain.TaskView
	if err := c.do(ctx, http.MethodGet, "/tasks/recent", query, nil, &views); err != nil {
		return nil, err
	}
	return nonNil(views), nil
}

// All returns every task, completed ones included.
func (c *Client) All(ctx context.Context) ([]domain.TaskView, error) {
	var views []domain.TaskView
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &views); err != nil {
		return nil, err
	}
	return nonNil(views), nil
}

// Get fetches a single task.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	var view domain.TaskView
	err := c.do(ctx, http.MethodGet, "/tasks/"+id.String(), nil, nil, &view)
	return view, err
}

// Create adds a task.
func (c *Client) Create(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error) {
	var view domain.TaskView
	err := c.do(ctx, http.MethodPost, "/tasks", nil, input, &view)
	return view, err
}

// Update applies a partial update. Nil patch fields are not sent.
func (c *Client) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.TaskView, error) {
	var view domain.TaskView
	err := c.do(ctx, http.MethodPut, "/tasks/"+id.String(), nil, patch, &view)
	return view, err
}

// Complete marks a task as completed.
func (c *Client) Complete(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
	var view domain.TaskView
	err := c.do(ctx, http.MethodPost, "/tasks/"+id.String()+"/complete", nil, nil, &view)
	return view, err
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil, nil)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	out any,
) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var body struct {
		Error   string `json:"error"`
		TraceID string `json:"trace_id"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.TraceID = body.TraceID
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

func nonNil(views []domain.TaskView) []domain.TaskView {
	if views == nil {
		return []domain.TaskView{}
	}
	return views
}
