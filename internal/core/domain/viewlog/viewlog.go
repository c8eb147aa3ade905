package viewlog

import (
	"errors"
	"time"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
)

var (
	ErrViewLogDoesNotExist = errors.New("view log does not exist")
	// ErrViewAlreadyLogged is returned when the store's uniqueness
	// constraint rejects a duplicate (experience, fingerprint) pair. Callers
	// treat it as "already counted", not as a failure.
	ErrViewAlreadyLogged = errors.New("view already logged")
)

// ViewLog records that a fingerprint has been counted as a viewer of an
// experience. At most one exists per (ExperienceID, Fingerprint) pair; it is
// never updated or deleted.
type ViewLog struct {
	ExperienceID experience.ID
	Fingerprint  fingerprint.Fingerprint
	CreatedAt    time.Time
}
