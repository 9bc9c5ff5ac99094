package authorsgw

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"editorial/contexts/editorial/publications-service/domain/entities"
	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
)

const defaultTimeout = 5 * time.Second

// Client talks to the authors registry over HTTP. Retries do not live here;
// callers decide what a failure means per operation.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) Exists(ctx context.Context, authorID string) (bool, error) {
	endpoint := c.baseURL + "/authors/" + url.PathEscape(strings.TrimSpace(authorID)) + "/exists"
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logUnavailable("author_exists_check_failed", authorID, resp.StatusCode)
		return false, fmt.Errorf("%w: exists returned status %d", domainerrors.ErrAuthorServiceUnavailable, resp.StatusCode)
	}

	var exists bool
	if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil {
		return false, fmt.Errorf("%w: decode exists response: %v", domainerrors.ErrAuthorServiceUnavailable, err)
	}
	return exists, nil
}

func (c *Client) FetchSummary(ctx context.Context, authorID string) (entities.AuthorSummary, error) {
	endpoint := c.baseURL + "/authors/" + url.PathEscape(strings.TrimSpace(authorID))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return entities.AuthorSummary{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entities.AuthorSummary{}, domainerrors.ErrAuthorNotFound
	default:
		c.logUnavailable("author_fetch_failed", authorID, resp.StatusCode)
		return entities.AuthorSummary{}, fmt.Errorf("%w: fetch returned status %d", domainerrors.ErrAuthorServiceUnavailable, resp.StatusCode)
	}

	var payload summaryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.AuthorSummary{}, fmt.Errorf("%w: decode author response: %v", domainerrors.ErrAuthorServiceUnavailable, err)
	}
	return entities.AuthorSummary{
		AuthorID:     payload.AuthorID,
		FullName:     payload.FullName,
		Email:        payload.Email,
		Biography:    payload.Biography,
		Organization: payload.Organization,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domainerrors.ErrAuthorServiceUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrAuthorServiceUnavailable, err)
	}
	return resp, nil
}

func (c *Client) logUnavailable(event string, authorID string, status int) {
	c.logger.Warn("authors registry call failed",
		"event", event,
		"module", "editorial/publications-service",
		"layer", "adapter",
		"author_id", authorID,
		"status", status,
	)
}

type summaryPayload struct {
	AuthorID     string `json:"author_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Biography    string `json:"biography"`
	Organization string `json:"organization"`
}
