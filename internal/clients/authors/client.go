package authors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"publications-backend/internal/config"
)

// Profile is the public author projection served by the authors service.
type Profile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AuthorType string `json:"authorType"`
}

type existsResponse struct {
	ID     int64 `json:"id"`
	Exists bool  `json:"exists"`
}

// Client is the sole boundary to the authors service.
//
// The two operations have opposite failure policies:
//   - AuthorExists gates publication creation, so any failure means "false"
//     and the create is rejected (fail-closed).
//   - FetchProfile only decorates responses, so any failure means "absent"
//     and the read proceeds without author data (fail-open).
//
// Every call is a single attempt bounded by the configured timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.AuthorsConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// AuthorExists checks whether the author is known to the authors service.
// Transport errors, timeouts, non-200 responses and malformed payloads all
// report false: the caller must not create a publication it cannot validate.
func (c *Client) AuthorExists(ctx context.Context, authorID int64) bool {
	url := fmt.Sprintf("%s/api/v1/authors/%d/exists", c.baseURL, authorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error().Err(err).Int64("author_id", authorID).Msg("Failed to build author existence request")
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Int64("author_id", authorID).Msg("Author existence check failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Int64("author_id", authorID).
			Msg("Author existence check returned non-200")
		return false
	}

	var body existsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Error().Err(err).Int64("author_id", authorID).Msg("Failed to decode existence response")
		return false
	}

	return body.Exists
}

// FetchProfile retrieves the author's public profile for response enrichment.
// On any failure it returns (nil, false); the caller degrades gracefully and
// serves the publication without author data.
func (c *Client) FetchProfile(ctx context.Context, authorID int64) (*Profile, bool) {
	url := fmt.Sprintf("%s/api/v1/authors/%d", c.baseURL, authorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error().Err(err).Int64("author_id", authorID).Msg("Failed to build author profile request")
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Int64("author_id", authorID).Msg("Author profile fetch failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Int64("author_id", authorID).
			Msg("Author profile fetch returned non-200")
		return nil, false
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		log.Warn().Err(err).Int64("author_id", authorID).Msg("Failed to decode author profile")
		return nil, false
	}

	return &profile, true
}
