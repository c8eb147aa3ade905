package services

import (
	"expwall/internal/app/deps"
	drl "expwall/internal/core/domain/rate_limiter"
	"expwall/internal/core/services"
	createexperience "expwall/internal/core/services/create_experience"
	getexperience "expwall/internal/core/services/get_experience"
	listexperiences "expwall/internal/core/services/list_experiences"
	ratelimiting "expwall/internal/core/services/rate_limiting"
)

type Services struct {
	CreateExperience services.Service[createexperience.Input, createexperience.Result]
	GetExperience    services.Service[getexperience.Input, getexperience.Result]
	ListExperiences  services.Service[listexperiences.Input, listexperiences.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateExperience = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.CreateRequestsPerHour},
		createexperience.New(
			deps.Logger,
			deps.ExperienceRepository,
			deps.Fingerprinter,
			deps.IdentityGenerator,
			deps.CreatedPublisher,
			deps.Now,
			deps.Config.SubmissionWindow,
			deps.Config.SubmissionsPerWindow,
		),
	)
	s.GetExperience = getexperience.New(
		deps.Logger,
		deps.ExperienceRepository,
		deps.ViewLogRepository,
		deps.Fingerprinter,
		deps.Now,
	)
	s.ListExperiences = listexperiences.New(
		deps.Logger,
		deps.ExperienceRepository,
		deps.SearchEngine,
	)

	return s
}
