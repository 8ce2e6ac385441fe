package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/kanban/shared/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id, puts a logger carrying it into the
// context and logs the finished request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		l := logger.Log.With("request_id", id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), l)))
		l.Debug("request served", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
