package viewlog

import (
	"context"
	"sync"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
)

type fakeKey struct {
	experienceID experience.ID
	fingerprint  fingerprint.Fingerprint
}

// FakeRepository is an in-memory Repository enforcing the composite-key
// uniqueness the way the real store does.
type FakeRepository struct {
	GetError    error
	CreateError error

	logs map[fakeKey]ViewLog
	lock sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{logs: make(map[fakeKey]ViewLog)}
}

func (r *FakeRepository) GetByKey(
	ctx context.Context,
	experienceID experience.ID,
	f fingerprint.Fingerprint,
) (log ViewLog, err error) {
	if r.GetError != nil {
		return log, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	log, ok := r.logs[fakeKey{experienceID: experienceID, fingerprint: f}]
	if !ok {
		return log, ErrViewLogDoesNotExist
	}
	return log, nil
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (log ViewLog, err error) {
	if r.CreateError != nil {
		return log, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	key := fakeKey{experienceID: input.ExperienceID, fingerprint: input.Fingerprint}
	if _, ok := r.logs[key]; ok {
		return log, ErrViewAlreadyLogged
	}
	log = ViewLog{
		ExperienceID: input.ExperienceID,
		Fingerprint:  input.Fingerprint,
		CreatedAt:    input.CreatedAt,
	}
	r.logs[key] = log
	return log, nil
}
