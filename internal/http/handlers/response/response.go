package response

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type errorsEnvelope struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
}

func RenderSuccess(rw http.ResponseWriter, data interface{}, status int) {
	Render(rw, successEnvelope{Success: true, Data: data}, status)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorEnvelope{Success: false, Error: msg}, status)
}

// RenderErrors carries per-field validation errors.
func RenderErrors(rw http.ResponseWriter, errs interface{}, status int) {
	Render(rw, errorsEnvelope{Success: false, Errors: errs}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
