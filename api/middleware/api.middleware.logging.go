// FilePath: api/middleware/api.middleware.logging.go
package middleware

import (
	"net/http"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// RequestLogger logs every request with method, path, status and duration.
type RequestLogger struct{}

func NewRequestLogger() *RequestLogger {
	return &RequestLogger{}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Handler wraps next with request logging.
func (m *RequestLogger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		nuts.L.Infof("[HTTP] %s %s -> %d (%s)", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}
