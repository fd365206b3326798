package valueobjects

import "fmt"

// Engagement is a snapshot of social-media post counters. Counters are
// non-negative and only move forward once recorded on a bill: a fetch that
// returns lower numbers never shrinks the stored snapshot.
type Engagement struct {
	likes    uint64
	comments uint64
	views    uint64
}

func NewEngagement(likes, comments, views int64) (Engagement, error) {
	if likes < 0 || comments < 0 || views < 0 {
		return Engagement{}, fmt.Errorf("engagement counters must be non-negative: likes=%d comments=%d views=%d",
			likes, comments, views)
	}
	return Engagement{
		likes:    uint64(likes),
		comments: uint64(comments),
		views:    uint64(views),
	}, nil
}

// ReconstructEngagement rebuilds a snapshot from persistence.
func ReconstructEngagement(likes, comments, views uint64) Engagement {
	return Engagement{likes: likes, comments: comments, views: views}
}

func (e Engagement) Likes() uint64 {
	return e.likes
}

func (e Engagement) Comments() uint64 {
	return e.comments
}

func (e Engagement) Views() uint64 {
	return e.views
}

func (e Engagement) IsZero() bool {
	return e.likes == 0 && e.comments == 0 && e.views == 0
}

// MergeMonotonic folds a fresh fetch into the stored snapshot, keeping each
// counter at its maximum observed value.
func (e Engagement) MergeMonotonic(fresh Engagement) Engagement {
	return Engagement{
		likes:    maxU64(e.likes, fresh.likes),
		comments: maxU64(e.comments, fresh.comments),
		views:    maxU64(e.views, fresh.views),
	}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
