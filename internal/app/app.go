package app

import (
	"fmt"
	"net/http"

	"expwall/internal/app/deps"
	"expwall/internal/app/services"
	createexperience "expwall/internal/http/handlers/experiences/create_experience"
	"expwall/internal/http/handlers/experiences/events"
	getexperience "expwall/internal/http/handlers/experiences/get_experience"
	listexperiences "expwall/internal/http/handlers/experiences/list_experiences"
	"expwall/internal/http/handlers/health"
	"expwall/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	experiencesRouter := chi.NewRouter()
	experiencesRouter.Method(http.MethodPost, "/", createexperience.New(s.CreateExperience))
	experiencesRouter.Method(http.MethodGet, "/", listexperiences.New(s.ListExperiences))
	experiencesRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer))
	experiencesRouter.Method(http.MethodGet, "/{experienceID}", getexperience.New(s.GetExperience))

	router := chi.NewRouter()
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.LimitBody)
	router.Use(middleware.SanitizeJSONBody)
	router.Mount("/experiences", experiencesRouter)
	router.Method(http.MethodGet, "/health", health.New(deps.Now))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
