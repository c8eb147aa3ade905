package createexperience

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"expwall/internal/core/domain/antispam"
	c "expwall/internal/core/domain/common"
	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"
	ratelimiter "expwall/internal/core/domain/rate_limiter"
	"expwall/internal/core/services"
	service "expwall/internal/core/services/create_experience"
	"expwall/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Content string `json:"content"`

	// Trap fields. Real browsers leave them empty.
	Website     string `json:"website"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	UserEmail   string `json:"user_email"`
	PhoneNumber string `json:"phone_number"`

	// Client-measured time spent composing, in milliseconds. Accepted as a
	// raw token since clients send it as either a number or a string.
	ElapsedMs json.RawMessage `json:"_t"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Content, validation.Required, validation.RuneLength(
			experience.MinContentLength,
			experience.MaxContentLength,
		)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErrors(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Content: input.Content,
			Address: remoteAddress(r),
			Spam: antispam.Fields{
				Website:     input.Website,
				Email:       input.Email,
				Phone:       input.Phone,
				UserEmail:   input.UserEmail,
				PhoneNumber: input.PhoneNumber,
				ElapsedMs:   decodeElapsedMs(input.ElapsedMs),
			},
		},
	)
	if err != nil {
		switch {
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, experience.ErrSubmissionLimitExceeded),
			errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderError(rw, "failed to save the experience", http.StatusInternalServerError)
		}
		return
	}

	exp := response.Experience{}
	exp.FromDomainType(result.Experience)
	response.RenderSuccess(rw, exp, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, antispam.ErrSpamDetected) ||
		errors.Is(err, antispam.ErrSubmittedTooFast) ||
		errors.Is(err, experience.ErrContentTooShort) ||
		errors.Is(err, experience.ErrContentTooLong))
}

func decodeElapsedMs(raw json.RawMessage) c.Optional[string] {
	if len(raw) == 0 {
		return c.Optional[string]{}
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return c.NewOptional(asString, true)
	}
	return c.NewOptional(string(raw), true)
}

func remoteAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
