package viewlog

import (
	"context"
	"time"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
)

type CreateInput struct {
	ExperienceID experience.ID
	Fingerprint  fingerprint.Fingerprint
	CreatedAt    time.Time
}

type Repository interface {
	GetByKey(
		ctx context.Context,
		experienceID experience.ID,
		f fingerprint.Fingerprint,
	) (ViewLog, error)
	// Create returns ErrViewAlreadyLogged when the composite key already
	// exists and experience.ErrExperienceDoesNotExist when the referenced
	// experience is missing.
	Create(ctx context.Context, input CreateInput) (ViewLog, error)
}
