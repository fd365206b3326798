package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tagcash-inc/tagcash/internal/application/billing/metadata"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type RefreshEngagementCommand struct {
	BillID uint
}

type RefreshEngagementResult struct {
	Bill *bill.Bill
	// FromCache is true when the counters were served from the throttle
	// cache without an upstream fetch.
	FromCache bool
}

// RefreshEngagementUseCase pulls fresh engagement counters for a bill's
// submitted content. A recent fetch is served from the cache; a failed
// fetch leaves the stored snapshot untouched and reports the failure.
type RefreshEngagementUseCase struct {
	billRepo bill.Repository
	fetcher  metadata.Fetcher
	cache    metadata.Cache
	logger   logger.Interface
}

func NewRefreshEngagementUseCase(
	billRepo bill.Repository,
	fetcher metadata.Fetcher,
	cache metadata.Cache,
	logger logger.Interface,
) *RefreshEngagementUseCase {
	return &RefreshEngagementUseCase{
		billRepo: billRepo,
		fetcher:  fetcher,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *RefreshEngagementUseCase) Execute(ctx context.Context, cmd RefreshEngagementCommand) (*RefreshEngagementResult, error) {
	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}
	fetchURL := contentFetchURL(b)
	if fetchURL == "" {
		return nil, errors.NewInvalidStateError("bill has no submitted content")
	}

	if uc.cache != nil {
		_, ok, err := uc.cache.Get(ctx, b.ID())
		if err != nil {
			uc.logger.Warnw("engagement cache read failed", "error", err, "bill_id", b.ID())
		} else if ok {
			// Fetched recently; the stored snapshot is current enough.
			return &RefreshEngagementResult{Bill: b, FromCache: true}, nil
		}
	}

	fresh, err := uc.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		uc.logger.Warnw("engagement fetch failed",
			"error", err,
			"bill_sid", b.SID(),
			"content_url", fetchURL,
		)
		return nil, errors.NewMetadataFetchError("failed to fetch engagement metadata", err.Error())
	}

	if err := uc.fold(ctx, b, fresh); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, b.ID(), fresh); err != nil {
			uc.logger.Warnw("engagement cache write failed", "error", err, "bill_id", b.ID())
		}
	}

	return &RefreshEngagementResult{Bill: b}, nil
}

func (uc *RefreshEngagementUseCase) fold(ctx context.Context, b *bill.Bill, e vo.Engagement) error {
	b.RecordEngagement(e, time.Now().UTC())
	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save engagement snapshot", "error", err, "bill_sid", b.SID())
		return mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}
	return nil
}

// contentFetchURL picks the URL engagement counters are pulled from. The
// Instagram permalink is authoritative when the customer supplied one;
// the generic content URL is the fallback.
func contentFetchURL(b *bill.Bill) string {
	if u := b.InstaContentURL(); u != nil && *u != "" {
		return *u
	}
	if u := b.ContentURL(); u != nil && *u != "" {
		return *u
	}
	return ""
}
