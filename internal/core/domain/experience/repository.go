package experience

import (
	"context"
	"time"

	c "expwall/internal/core/domain/common"
	"expwall/internal/core/domain/fingerprint"
)

type CreateInput struct {
	ID          ID
	Content     string
	Fingerprint fingerprint.Fingerprint
	CreatedAt   time.Time
}

type ReadOptions struct {
	IDIn    c.Optional[[]ID]
	OrderBy OrderBy
	Limit   c.Optional[uint]
	Offset  uint
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Experience, error)
	GetByID(ctx context.Context, id ID) (Experience, error)
	// IncrementViews atomically bumps the view counter and returns the
	// updated record.
	IncrementViews(ctx context.Context, id ID) (Experience, error)
	// CountByFingerprintAfter counts submissions by one fingerprint created
	// at or after the given instant (the rolling rate-limit window).
	CountByFingerprintAfter(ctx context.Context, f fingerprint.Fingerprint, after time.Time) (uint, error)
	Read(ctx context.Context, options ReadOptions) ([]Experience, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
}
