package middlewares

import (
	"net/http"
	"time"

	"aiwallet/aiwallet/utils/logging"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags the request with a trace id and writes one line per
// request to request.log.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := middleware.GetReqID(r.Context())
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Trace-Id", traceID)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(logging.WithTraceID(r.Context(), traceID)))

		logging.RequestLogger.Info("request",
			zap.String("trace_id", traceID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}
