// Package metadata defines the social-media metadata port used to refresh
// engagement counters on submitted content.
package metadata

import (
	"context"

	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
)

// Fetcher retrieves the current engagement counters for a piece of content.
// A failed fetch returns an error and the caller must leave the stored
// snapshot untouched.
type Fetcher interface {
	Fetch(ctx context.Context, contentURL string) (vo.Engagement, error)
}

// Cache throttles fetches. A bill whose counters were refreshed within the
// cache TTL is served from the cache instead of hitting the upstream API.
type Cache interface {
	Get(ctx context.Context, billID uint) (vo.Engagement, bool, error)
	Set(ctx context.Context, billID uint, e vo.Engagement) error
}
