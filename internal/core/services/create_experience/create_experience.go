package createexperience

import (
	"context"
	"strings"
	"time"

	"expwall/internal/core/domain/antispam"
	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/core/domain/logging"
	"expwall/internal/core/domain/sanitizer"
	"expwall/internal/core/services"
)

type Input struct {
	Content string
	Address string
	Spam    antispam.Fields
}

func (i Input) GetRateLimitKey() string {
	return "create-experience::" + i.Address
}

type Result struct {
	Experience experience.Experience
}

type service struct {
	log               logging.Logger
	experiences       experience.Repository
	fingerprinter     fingerprint.Fingerprinter
	identityGenerator experience.IdentityGenerator
	publisher         experience.CreatedPublisher
	now               func() time.Time
	window            time.Duration
	maxPerWindow      uint
}

// New builds the submission pipeline: anti-spam gate, content validation,
// sanitization, fingerprinting, rolling-window rate limit, persist.
func New(
	log logging.Logger,
	experiences experience.Repository,
	fingerprinter fingerprint.Fingerprinter,
	identityGenerator experience.IdentityGenerator,
	publisher experience.CreatedPublisher,
	now func() time.Time,
	window time.Duration,
	maxPerWindow uint,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if experiences == nil {
		panic(e.NewNilArgumentError("experiences"))
	}
	if fingerprinter == nil {
		panic(e.NewNilArgumentError("fingerprinter"))
	}
	if identityGenerator == nil {
		panic(e.NewNilArgumentError("identityGenerator"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		experiences:       experiences,
		fingerprinter:     fingerprinter,
		identityGenerator: identityGenerator,
		publisher:         publisher,
		now:               now,
		window:            window,
		maxPerWindow:      maxPerWindow,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := antispam.Check(input.Spam); err != nil {
		s.log.Info(ctx, "Submission rejected by the anti-spam gate.")
		return result, err
	}

	content := strings.TrimSpace(input.Content)
	if err := experience.ValidateContent(content); err != nil {
		return result, err
	}
	content = sanitizer.Sanitize(content, experience.MaxContentLength)

	f := s.fingerprinter.Fingerprint(input.Address)

	// The count-then-create sequence is not atomic; concurrent submissions
	// from one fingerprint can overshoot the limit slightly. Soft limit.
	windowStart := s.now().Add(-s.window)
	recentCount, err := s.experiences.CountByFingerprintAfter(ctx, f, windowStart)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("fingerprint", f))
		return result, err
	}
	if recentCount >= s.maxPerWindow {
		s.log.Warning(
			ctx,
			"Submission limit exceeded.",
			logging.Entry("fingerprint", f),
			logging.Entry("recentCount", recentCount),
		)
		return result, experience.ErrSubmissionLimitExceeded
	}

	created, err := s.experiences.Create(ctx, experience.CreateInput{
		ID:          s.identityGenerator.GenerateID(),
		Content:     content,
		Fingerprint: f,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("fingerprint", f))
		return result, err
	}

	if err := s.publisher.PublishCreated(ctx, created); err != nil {
		s.log.Warning(
			ctx,
			"Could not publish created experience to the live feed.",
			logging.Entry("experienceID", created.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(ctx, "Experience successfully created.", logging.Entry("experienceID", created.ID))
	result.Experience = created
	return result, nil
}
