package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/shared/config"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

// Fetcher pulls engagement counters for a piece of content from the
// Instagram oEmbed-style metadata API. Implements the application
// metadata.Fetcher port. Any upstream failure is returned as an error;
// callers must not touch stored counters on failure.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewFetcher(cfg *config.InstagramConfig, log logger.Interface) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

type metadataResponse struct {
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	ViewCount    int64 `json:"view_count"`
}

func (f *Fetcher) Fetch(ctx context.Context, contentURL string) (vo.Engagement, error) {
	endpoint := fmt.Sprintf("%s/media_metadata?url=%s", f.baseURL, url.QueryEscape(contentURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return vo.Engagement{}, fmt.Errorf("failed to build metadata request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return vo.Engagement{}, fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return vo.Engagement{}, fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	var meta metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return vo.Engagement{}, fmt.Errorf("failed to decode metadata response: %w", err)
	}

	engagement, err := vo.NewEngagement(meta.LikeCount, meta.CommentCount, meta.ViewCount)
	if err != nil {
		return vo.Engagement{}, fmt.Errorf("metadata API returned invalid counters: %w", err)
	}

	f.logger.Debugw("engagement metadata fetched",
		"content_url", contentURL,
		"likes", meta.LikeCount,
		"comments", meta.CommentCount,
		"views", meta.ViewCount,
	)

	return engagement, nil
}
