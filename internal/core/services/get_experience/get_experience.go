package getexperience

import (
	"context"
	"errors"
	"time"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/core/domain/logging"
	"expwall/internal/core/domain/viewlog"
	"expwall/internal/core/services"
)

type Input struct {
	ID      experience.ID
	Address string
}

type Result struct {
	Experience experience.Experience
}

type service struct {
	log           logging.Logger
	experiences   experience.Repository
	viewLogs      viewlog.Repository
	fingerprinter fingerprint.Fingerprinter
	now           func() time.Time
}

// New builds the single-item read that counts each viewer fingerprint at
// most once. Viewers without a usable address share the unknown-sentinel
// fingerprint and are collectively counted as a single view.
func New(
	log logging.Logger,
	experiences experience.Repository,
	viewLogs viewlog.Repository,
	fingerprinter fingerprint.Fingerprinter,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if experiences == nil {
		panic(e.NewNilArgumentError("experiences"))
	}
	if viewLogs == nil {
		panic(e.NewNilArgumentError("viewLogs"))
	}
	if fingerprinter == nil {
		panic(e.NewNilArgumentError("fingerprinter"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		experiences:   experiences,
		viewLogs:      viewLogs,
		fingerprinter: fingerprinter,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	f := s.fingerprinter.Fingerprint(input.Address)

	countView := true
	_, err = s.viewLogs.GetByKey(ctx, input.ID, f)
	switch {
	case err == nil:
		countView = false
	case errors.Is(err, viewlog.ErrViewLogDoesNotExist):
		// First view by this fingerprint.
	default:
		logging.Error(ctx, s.log, err, logging.Entry("experienceID", input.ID))
		return result, err
	}

	if countView {
		_, err = s.viewLogs.Create(ctx, viewlog.CreateInput{
			ExperienceID: input.ID,
			Fingerprint:  f,
			CreatedAt:    s.now(),
		})
		switch {
		case err == nil:
		case errors.Is(err, viewlog.ErrViewAlreadyLogged):
			// A concurrent request won the check-then-create race. The
			// store's uniqueness constraint is the backstop; degrade to a
			// non-incrementing fetch.
			countView = false
		case errors.Is(err, experience.ErrExperienceDoesNotExist):
			return result, err
		default:
			logging.Error(ctx, s.log, err, logging.Entry("experienceID", input.ID))
			return result, err
		}
	}

	var exp experience.Experience
	if countView {
		exp, err = s.experiences.IncrementViews(ctx, input.ID)
	} else {
		exp, err = s.experiences.GetByID(ctx, input.ID)
	}
	if errors.Is(err, experience.ErrExperienceDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("experienceID", input.ID))
		return result, err
	}

	result.Experience = exp
	return result, nil
}
