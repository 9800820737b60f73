package resinaro

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok
}

// withRequestID keeps an incoming request id when it is a uuid and makes
// one up otherwise, the id ends up in headers and every log line
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if parsed, errParse := uuid.Parse(requestID); errParse == nil {
			requestID = parsed.String()
		} else {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(p)
	sr.size += n
	return n, err
}

func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(sr, r)
		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sr.status),
			slog.Int("size", sr.size),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if requestID, ok := RequestIDFromContext(r.Context()); ok {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if sr.status >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "request failed", attrs...)
			return
		}
		logger.InfoContext(r.Context(), "request", attrs...)
	})
}
