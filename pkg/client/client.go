package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/hirewire/pkg/domain"
)

// Client is the HireWire API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the API base URL the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// Token returns the bearer token the client authenticates with. The push
// channel reuses it so REST and push always share one identity.
func (c *Client) Token() string { return c.token }

// GetMe returns the authenticated account's profile.
func (c *Client) GetMe(ctx context.Context) (*domain.Account, error) {
	var a domain.Account
	if err := c.get(ctx, "/api/me", &a); err != nil {
		return nil, fmt.Errorf("client.GetMe: %w", err)
	}
	return &a, nil
}

// ListMyNotifications fetches the current user's notifications. The server
// makes no ordering promise; callers sort.
func (c *Client) ListMyNotifications(ctx context.Context) ([]domain.Notification, error) {
	var notifs []domain.Notification
	if err := c.get(ctx, "/api/notifications/me", &notifs); err != nil {
		return nil, fmt.Errorf("client.ListMyNotifications: %w", err)
	}
	return notifs, nil
}

// MarkNotificationRead marks a single notification as read. The endpoint is
// idempotent: marking an already-read notification succeeds.
func (c *Client) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	path := "/api/notifications/" + url.PathEscape(id.String()) + "/read"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("client.MarkNotificationRead: %w", err)
	}
	return nil
}

// AcceptInvitation accepts a company invitation and returns its updated state.
func (c *Client) AcceptInvitation(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	var inv domain.Invitation
	path := "/api/invitations/" + url.PathEscape(id.String()) + "/accept"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &inv); err != nil {
		return nil, fmt.Errorf("client.AcceptInvitation: %w", err)
	}
	return &inv, nil
}

// DeclineInvitation declines a company invitation and returns its updated state.
func (c *Client) DeclineInvitation(ctx context.Context, id uuid.UUID) (*domain.Invitation, error) {
	var inv domain.Invitation
	path := "/api/invitations/" + url.PathEscape(id.String()) + "/decline"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &inv); err != nil {
		return nil, fmt.Errorf("client.DeclineInvitation: %w", err)
	}
	return &inv, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}
