package userdir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eduplat/courses/internal/pkg/apperrors"
)

// Identity is the user record the user service exposes for display purposes.
type Identity struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	IsInstructor bool   `json:"is_instructor"`
}

// Client talks to the platform's user service to resolve subject ids into
// display identities. Lookups are decoration only; callers are expected to
// treat failures as missing enrichment, not as request failures.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a user directory client. baseURL points at the user
// service's /users resource, e.g. http://kong:8000/users.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GetUser resolves a single subject id.
func (c *Client) GetUser(ctx context.Context, userID int64) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%d", c.baseURL, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	return &identity, nil
}

// GetUsers resolves a batch of subject ids in one call. The user service may
// return fewer identities than requested; partial results are not an error.
func (c *Client) GetUsers(ctx context.Context, userIDs []int64) ([]Identity, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build users request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var identities []Identity
	if err := json.NewDecoder(resp.Body).Decode(&identities); err != nil {
		return nil, fmt.Errorf("failed to decode users response: %w", err)
	}
	return identities, nil
}
