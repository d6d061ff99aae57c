package realapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"go.uber.org/zap"
)

// Client talks to the real presence backend over JSON/HTTP with bearer
// token authentication. Response bodies are parsed as-is; payload
// validation is the backend's responsibility.
type Client struct {
	baseURL    string
	sess       *session.Manager
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, sess *session.Manager, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		sess:    sess,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Login authenticates against the backend and, on success, persists the
// returned token, expiry and user for later calls.
func (c *Client) Login(username, password string) (*models.LoginResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var resp models.LoginResponse
	if err := c.doJSON(http.MethodPost, "/login", body, false, &resp); err != nil {
		return nil, err
	}

	if resp.Success {
		if err := c.sess.Save(resp.Token, resp.Expires, resp.User); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	return &resp, nil
}

// Employees fetches the employee roster.
func (c *Client) Employees() (*models.EmployeesResponse, error) {
	var resp models.EmployeesResponse
	if err := c.doJSON(http.MethodGet, "/employees", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Locations fetches the market list.
func (c *Client) Locations() (*models.LocationsResponse, error) {
	var resp models.LocationsResponse
	if err := c.doJSON(http.MethodGet, "/locations", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitHours posts a single shift record.
func (c *Client) SubmitHours(data models.HoursData) (*models.SubmitResponse, error) {
	var resp models.SubmitResponse
	if err := c.doJSON(http.MethodPost, "/hours", data, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HoursHistory fetches stored records; start/end are sent as query
// parameters only when supplied.
func (c *Client) HoursHistory(start, end string) (*models.HistoryResponse, error) {
	params := url.Values{}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}
	path := "/hours"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp models.HistoryResponse
	if err := c.doJSON(http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IsLoggedIn reports whether a stored session is still valid.
func (c *Client) IsLoggedIn() bool {
	return c.sess.IsLoggedIn()
}

// Logout clears the local session. The backend keeps no server-side
// session state for this client.
func (c *Client) Logout() error {
	return c.sess.Clear()
}

// doJSON performs one request against the backend and decodes the JSON
// response body into out. No retries; every call is attempted exactly once.
func (c *Client) doJSON(method, path string, body interface{}, authed bool, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.sess.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errMsg := fmt.Sprintf("backend returned status %d: %s", resp.StatusCode, string(respBody))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			c.logger.Error("Authentication failed",
				zap.Int("status_code", resp.StatusCode),
				zap.String("path", path),
			)
			return &AuthError{Message: errMsg, StatusCode: resp.StatusCode}
		default:
			c.logger.Error("Backend error",
				zap.Int("status_code", resp.StatusCode),
				zap.String("path", path),
			)
			return &BackendError{Message: errMsg, StatusCode: resp.StatusCode}
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return nil
}

// AuthError reports a 401/403 from the backend.
type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return e.Message
}

// BackendError reports any other non-2xx backend response.
type BackendError struct {
	Message    string
	StatusCode int
}

func (e *BackendError) Error() string {
	return e.Message
}
