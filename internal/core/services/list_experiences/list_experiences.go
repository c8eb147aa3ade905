package listexperiences

import (
	"context"
	"strings"

	c "expwall/internal/core/domain/common"
	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/logging"
	"expwall/internal/core/domain/search"
	"expwall/internal/core/services"
)

const (
	DefaultLimit uint = 20
	MaxLimit     uint = 50
)

type Input struct {
	Page    uint
	Limit   uint
	Search  c.Optional[string]
	OrderBy experience.OrderBy
}

type Result struct {
	Experiences []experience.Experience
	Total       uint
	Page        uint
	TotalPages  uint
}

type service struct {
	log         logging.Logger
	experiences experience.Repository
	engine      *search.Engine
}

// New builds the listing read: optional fuzzy search narrows the id set,
// then ordering and offset/limit pagination apply. Search filters the
// result set, it does not override the requested sort.
func New(
	log logging.Logger,
	experiences experience.Repository,
	engine *search.Engine,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if experiences == nil {
		panic(e.NewNilArgumentError("experiences"))
	}
	if engine == nil {
		panic(e.NewNilArgumentError("engine"))
	}
	return &service{log: log, experiences: experiences, engine: engine}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	page := input.Page
	if page == 0 {
		page = 1
	}
	limit := input.Limit
	if limit == 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	options := experience.ReadOptions{
		OrderBy: input.OrderBy,
		Limit:   c.NewOptional(limit, true),
		Offset:  (page - 1) * limit,
	}

	if query := searchQuery(input); query != "" {
		ids, err := s.matchingIDs(ctx, query)
		if err != nil {
			return result, err
		}
		if len(ids) == 0 {
			return Result{Experiences: []experience.Experience{}, Page: page}, nil
		}
		options.IDIn = c.NewOptional(ids, true)
	}

	experiences, err := s.experiences.Read(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("options", options))
		return result, err
	}
	total, err := s.experiences.Count(ctx, experience.ReadOptions{IDIn: options.IDIn})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("options", options))
		return result, err
	}

	return Result{
		Experiences: experiences,
		Total:       total,
		Page:        page,
		TotalPages:  (total + limit - 1) / limit,
	}, nil
}

// matchingIDs rebuilds the fuzzy index from the current corpus on every
// query.
func (s *service) matchingIDs(ctx context.Context, query string) ([]experience.ID, error) {
	corpus, err := s.experiences.Read(ctx, experience.ReadOptions{OrderBy: experience.OrderByLatest})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return nil, err
	}
	docs := make([]search.Document, 0, len(corpus))
	for _, exp := range corpus {
		docs = append(docs, search.Document{ID: exp.ID, Content: exp.Content})
	}
	return s.engine.Search(query, docs), nil
}

func searchQuery(input Input) string {
	if !input.Search.IsPresent {
		return ""
	}
	return strings.TrimSpace(input.Search.Value)
}
