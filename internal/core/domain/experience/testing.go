package experience

import (
	"context"
	"sort"
	"sync"
	"time"

	"expwall/internal/core/domain/fingerprint"
)

// FakeRepository is an in-memory Repository for service tests. Error knobs
// let tests simulate store failures per method.
type FakeRepository struct {
	Experiences []Experience

	CreateError    error
	GetError       error
	IncrementError error
	CountError     error
	ReadError      error

	lock sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (e Experience, err error) {
	if r.CreateError != nil {
		return e, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	e = Experience{
		ID:          input.ID,
		Content:     input.Content,
		Fingerprint: input.Fingerprint,
		Views:       0,
		CreatedAt:   input.CreatedAt,
	}
	r.Experiences = append(r.Experiences, e)
	return e, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (e Experience, err error) {
	if r.GetError != nil {
		return e, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, stored := range r.Experiences {
		if stored.ID == id {
			return stored, nil
		}
	}
	return e, ErrExperienceDoesNotExist
}

func (r *FakeRepository) IncrementViews(ctx context.Context, id ID) (e Experience, err error) {
	if r.IncrementError != nil {
		return e, r.IncrementError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Experiences {
		if r.Experiences[ix].ID == id {
			r.Experiences[ix].Views++
			return r.Experiences[ix], nil
		}
	}
	return e, ErrExperienceDoesNotExist
}

func (r *FakeRepository) CountByFingerprintAfter(
	ctx context.Context,
	f fingerprint.Fingerprint,
	after time.Time,
) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for _, stored := range r.Experiences {
		if stored.Fingerprint == f && !stored.CreatedAt.Before(after) {
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Experience, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	filtered := r.filter(options)
	sort.SliceStable(filtered, func(i, j int) bool {
		switch options.OrderBy {
		case OrderByOldest:
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		case OrderByMostViewed:
			return filtered[i].Views > filtered[j].Views
		default:
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
	})

	if options.Offset >= uint(len(filtered)) {
		return []Experience{}, nil
	}
	filtered = filtered[options.Offset:]
	if options.Limit.IsPresent && options.Limit.Value < uint(len(filtered)) {
		filtered = filtered[:options.Limit.Value]
	}
	return filtered, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.filter(options))), nil
}

func (r *FakeRepository) filter(options ReadOptions) []Experience {
	filtered := make([]Experience, 0, len(r.Experiences))
	for _, stored := range r.Experiences {
		if options.IDIn.IsPresent && !containsID(options.IDIn.Value, stored.ID) {
			continue
		}
		filtered = append(filtered, stored)
	}
	return filtered
}

func containsID(ids []ID, id ID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

type FakeIdentityGenerator struct {
	NextID ID
}

func NewFakeIdentityGenerator(nextID ID) *FakeIdentityGenerator {
	return &FakeIdentityGenerator{NextID: nextID}
}

func (g *FakeIdentityGenerator) GenerateID() ID {
	return g.NextID
}

type FakeCreatedPublisher struct {
	Published []Experience
	Error     error
	lock      sync.Mutex
}

func NewFakeCreatedPublisher() *FakeCreatedPublisher {
	return &FakeCreatedPublisher{}
}

func (p *FakeCreatedPublisher) PublishCreated(ctx context.Context, e Experience) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, e)
	return nil
}
