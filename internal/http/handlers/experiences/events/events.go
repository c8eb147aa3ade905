package events

import (
	"net/http"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/logging"
	"expwall/internal/implementations/feed"

	"github.com/r3labs/sse/v2"
)

type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

// ServeHTTP subscribes the caller to the public live feed. The stream name
// is fixed server-side, clients cannot pick another one.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", feed.StreamExperiences)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to the experiences feed.")
	h.sseServer.ServeHTTP(rw, r)
}
