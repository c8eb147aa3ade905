package getexperience

import (
	"errors"
	"net"
	"net/http"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/services"
	service "expwall/internal/core/services/get_experience"
	"expwall/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "experienceID")
	if _, err := uuid.Parse(rawID); err != nil {
		response.RenderError(rw, "experience not found", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		ID:      experience.ID(rawID),
		Address: remoteAddress(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, experience.ErrExperienceDoesNotExist):
			response.RenderError(rw, "experience not found", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	exp := response.Experience{}
	exp.FromDomainType(result.Experience)
	response.RenderSuccess(rw, exp, http.StatusOK)
}

func remoteAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
