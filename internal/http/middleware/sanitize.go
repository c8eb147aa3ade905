package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeJSONBody strips HTML markup from every string value in a JSON
// request body before the handler decodes it. Bodies that are not valid
// JSON pass through untouched, the handler rejects those itself.
func SanitizeJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(rw, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(rw, "could not read request body", http.StatusBadRequest)
			return
		}
		r.Body.Close()

		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(rw, r)
			return
		}

		sanitized, err := json.Marshal(sanitizeValue(decoded))
		if err != nil {
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(rw, r)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(sanitized))
		r.ContentLength = int64(len(sanitized))
		next.ServeHTTP(rw, r)
	})
}

func sanitizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return strictPolicy.Sanitize(v)
	case []interface{}:
		for ix := range v {
			v[ix] = sanitizeValue(v[ix])
		}
		return v
	case map[string]interface{}:
		for key := range v {
			v[key] = sanitizeValue(v[key])
		}
		return v
	default:
		return value
	}
}
