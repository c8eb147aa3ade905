package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureBody(t *testing.T) (http.Handler, *string) {
	var captured string
	handler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = string(body)
		rw.WriteHeader(http.StatusOK)
	})
	return handler, &captured
}

func TestSanitizeJSONBodyStripsMarkup(t *testing.T) {
	inner, captured := captureBody(t)
	req := httptest.NewRequest(
		"POST",
		"/experiences",
		strings.NewReader(`{"content": "hello <script>alert('x')</script> world"}`),
	)

	SanitizeJSONBody(inner).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, *captured, "<script>")
	assert.Contains(t, *captured, "hello")
	assert.Contains(t, *captured, "world")
}

func TestSanitizeJSONBodyWalksNestedValues(t *testing.T) {
	inner, captured := captureBody(t)
	req := httptest.NewRequest(
		"POST",
		"/experiences",
		strings.NewReader(`{"outer": {"values": ["<b>one</b>", "two"]}}`),
	)

	SanitizeJSONBody(inner).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, *captured, "<b>")
	assert.Contains(t, *captured, "one")
	assert.Contains(t, *captured, "two")
}

func TestSanitizeJSONBodyPassesInvalidJSONThrough(t *testing.T) {
	inner, captured := captureBody(t)
	req := httptest.NewRequest("POST", "/experiences", strings.NewReader("{not json"))

	SanitizeJSONBody(inner).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "{not json", *captured)
}

func TestSanitizeJSONBodySkipsGetRequests(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		called = true
	})
	req := httptest.NewRequest("GET", "/experiences", nil)

	SanitizeJSONBody(inner).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}
