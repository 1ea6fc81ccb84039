package logging

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

var recorderPool = sync.Pool{
	New: func() any {
		return &statusRecorder{status: http.StatusOK}
	},
}

// quietPaths are polled by probes and scrapers and never logged
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// LoggingMiddleware logs one structured line per request. Server errors are
// logged at error level, client errors at warn.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if quietPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			rec := recorderPool.Get().(*statusRecorder)
			rec.ResponseWriter = w
			rec.status = http.StatusOK
			rec.bytes = 0
			defer func() {
				rec.ResponseWriter = nil
				recorderPool.Put(rec)
			}()

			next.ServeHTTP(rec, r)

			requestID := middleware.GetReqID(r.Context())
			if requestID == "" {
				requestID = "unknown"
			}

			attrs := []any{
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, "query", r.URL.RawQuery)
			}
			attrs = append(attrs,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"status_code", rec.status,
				"bytes_written", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "HTTP request", attrs...)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.bytes += n
	return n, err
}
