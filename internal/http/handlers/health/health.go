package health

import (
	"net/http"
	"time"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/http/handlers/response"
)

type Handler struct {
	now func() time.Time
}

func New(now func() time.Time) *Handler {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Handler{now: now}
}

type Result struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, Result{Status: "ok", Timestamp: h.now()}, http.StatusOK)
}
