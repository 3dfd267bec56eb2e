package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"copticsocial/internal/domain"
)

const groupsPath = "/api/groups/groups/"

// Client talks to the platform REST API
type Client struct {
	base   url.URL
	token  string
	hc     *http.Client
	logger *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithToken authenticates requests with a bearer token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API url %q: missing host", baseURL)
	}

	c := &Client{
		base:   *u,
		hc:     &http.Client{Timeout: 10 * time.Second},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqData, respData any) error {
	var reqBody io.Reader
	if reqData != nil {
		bts, err := json.Marshal(reqData)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(bts)
	}

	u := c.base.JoinPath(path)
	// JoinPath drops the trailing slash the API routes require
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if reqBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	response, err := c.hc.Do(request)
	if err != nil {
		c.logger.Debug("api request failed", zap.String("method", method), zap.String("url", u.String()), zap.Error(err))
		return err
	}
	defer response.Body.Close()

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("url", u.String()),
		zap.Int("status", response.StatusCode),
		zap.Duration("latency", time.Since(start)))

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return statusError(response, respBody)
	}

	if respData != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, respData); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func statusError(response *http.Response, body []byte) error {
	se := StatusError{StatusCode: response.StatusCode, Status: response.Status}

	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			se.ErrorMessage = payload.Error
		case payload.Detail != "":
			se.ErrorMessage = payload.Detail
		default:
			se.ErrorMessage = payload.Message
		}
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		se.ErrorMessage = text
	}
	return se
}

// ListParams filters a group listing
type ListParams struct {
	Search    string
	GroupType domain.GroupType
	Privacy   domain.Privacy
	MyGroups  bool
	Limit     int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(p.Search); s != "" {
		q.Set("search", s)
	}
	if p.GroupType != "" {
		q.Set("group_type", string(p.GroupType))
	}
	if p.Privacy != "" {
		q.Set("privacy", string(p.Privacy))
	}
	if p.MyGroups {
		q.Set("my_groups", "true")
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// GroupList is a page of groups
type GroupList struct {
	Count   int            `json:"count"`
	Results []domain.Group `json:"results"`
}

// ListGroups returns the groups matching params
func (c *Client) ListGroups(ctx context.Context, params ListParams) (*GroupList, error) {
	var resp GroupList
	if err := c.do(ctx, http.MethodGet, groupsPath, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []domain.Group{}
	}
	return &resp, nil
}

// GetGroup returns a single group
func (c *Client) GetGroup(ctx context.Context, id string) (*domain.Group, error) {
	var g domain.Group
	if err := c.do(ctx, http.MethodGet, groupsPath+url.PathEscape(id)+"/", nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// JoinResult is the outcome of a join call
type JoinResult struct {
	Message string      `json:"message"`
	Pending bool        `json:"pending"`
	Role    domain.Role `json:"role"`
}

// JoinGroup joins a group, or requests to join one that requires approval
func (c *Client) JoinGroup(ctx context.Context, id, message string) (*JoinResult, error) {
	var body any
	if message != "" {
		body = map[string]string{"message": message}
	}
	var resp JoinResult
	if err := c.do(ctx, http.MethodPost, groupsPath+url.PathEscape(id)+"/join/", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LeaveGroup leaves a group
func (c *Client) LeaveGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, groupsPath+url.PathEscape(id)+"/leave/", nil, nil, nil)
}

// CurrentUser returns the authenticated user
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Health checks that the API is reachable
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health/", nil, nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return fmt.Errorf("api unhealthy: %q", resp.Status)
	}
	return nil
}
