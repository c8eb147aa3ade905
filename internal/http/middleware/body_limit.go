package middleware

import "net/http"

const MaxBodyBytes = 10 << 10

// LimitBody caps request bodies at 10 KiB. Handlers see a read error once
// the cap is exceeded and render a 400.
func LimitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(rw, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(rw, r)
	})
}
