package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/arnav-k/autocompleted/internal/applog"
	"github.com/arnav-k/autocompleted/internal/constant"
	"github.com/arnav-k/autocompleted/internal/metrics"
)

// withRequestID threads chi's per-request ID into applog's context key,
// so every log line emitted while handling a request carries it. chi
// already generates/propagates the ID via middleware.RequestID; this
// just bridges it into our logger's context convention.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetReqID(r.Context())
		ctx := applog.WithRequestID(r.Context(), reqID)
		w.Header().Set(constant.HeaderRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status code for logging and
// metrics, since http.ResponseWriter doesn't expose it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logRequest logs one line when a request arrives and one on
// completion, and records the route/status/latency into the ambient
// Prometheus collectors.
func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		applog.CtxInfo(r.Context(), constant.MsgRequestReceived, applog.LoggerInfo{
			ContextFunction: constant.CtxAPI,
			Data: map[string]interface{}{
				constant.DataMethod:     r.Method,
				constant.DataPath:       r.URL.Path,
				constant.DataRemoteAddr: r.RemoteAddr,
			},
		})

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := r.URL.Path
		metrics.ObserveRequest(route, rec.status, elapsed)

		applog.CtxInfo(r.Context(), constant.MsgRequestCompleted, applog.LoggerInfo{
			ContextFunction: constant.CtxAPI,
			Data: map[string]interface{}{
				constant.DataMethod:  r.Method,
				constant.DataPath:    r.URL.Path,
				constant.DataStatus:  rec.status,
				constant.DataLatency: elapsed.String(),
			},
		})
	})
}
