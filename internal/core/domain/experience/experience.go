package experience

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"expwall/internal/core/domain/fingerprint"
)

const (
	MinContentLength = 50
	MaxContentLength = 2000
)

var (
	ErrExperienceDoesNotExist  = errors.New("experience does not exist")
	ErrContentTooShort         = errors.New("experience must be at least 50 characters")
	ErrContentTooLong          = errors.New("experience must not exceed 2000 characters")
	ErrSubmissionLimitExceeded = errors.New("rate limit exceeded")
)

// ID is an opaque unique token (a UUID in its canonical string form).
type ID string

func (id ID) String() string {
	return string(id)
}

// Experience is an anonymous text submission. Content is immutable after
// creation; only Views mutates. Fingerprint identifies the submitter and is
// never exposed through the API.
type Experience struct {
	ID          ID
	Content     string
	Fingerprint fingerprint.Fingerprint
	Views       uint64
	CreatedAt   time.Time
}

// ValidateContent checks the structural length bounds. The caller is
// expected to pass content that has already been trimmed.
func ValidateContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length < MinContentLength {
		return ErrContentTooShort
	}
	if length > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

type IdentityGenerator interface {
	GenerateID() ID
}

// CreatedPublisher broadcasts newly created experiences to live feed
// subscribers. Publishing is best-effort, a failure never fails the
// submission.
type CreatedPublisher interface {
	PublishCreated(ctx context.Context, e Experience) error
}
