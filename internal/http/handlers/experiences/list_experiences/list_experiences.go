package listexperiences

import (
	"net/http"
	"strconv"
	"strings"

	c "expwall/internal/core/domain/common"
	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/services"
	service "expwall/internal/core/services/list_experiences"
	"expwall/internal/http/handlers/response"
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

type Result struct {
	Success     bool                  `json:"success"`
	Experiences []response.Experience `json:"experiences"`
	Total       uint                  `json:"total"`
	Page        uint                  `json:"page"`
	TotalPages  uint                  `json:"totalPages"`
}

// ServeHTTP treats unparsable query parameters as absent so a hand-typed
// URL still renders the default listing.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := service.Input{
		Page:    parsePositive(query.Get("page")),
		Limit:   parsePositive(query.Get("limit")),
		Search:  parseSearch(query.Get("search")),
		OrderBy: parseOrderBy(query.Get("sort")),
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respExperiences := make([]response.Experience, 0, len(result.Experiences))
	for _, exp := range result.Experiences {
		respExp := response.Experience{}
		respExp.FromDomainType(exp)
		respExperiences = append(respExperiences, respExp)
	}
	response.Render(rw, Result{
		Success:     true,
		Experiences: respExperiences,
		Total:       result.Total,
		Page:        result.Page,
		TotalPages:  result.TotalPages,
	}, http.StatusOK)
}

func parsePositive(raw string) uint {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseSearch(raw string) (search c.Optional[string]) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return search
	}
	return c.NewOptional(raw, true)
}

func parseOrderBy(raw string) experience.OrderBy {
	if raw == "" {
		return experience.OrderByLatest
	}
	orderBy, err := experience.ParseOrderBy(raw)
	if err != nil {
		return experience.OrderByLatest
	}
	return orderBy
}
