package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arnav-k/autocompleted/internal/applog"
	"github.com/arnav-k/autocompleted/internal/constant"
	"github.com/arnav-k/autocompleted/internal/store"
)

// NewRouter builds the full chi router for st, wiring the same
// middleware chain shape the teacher's api/router.go used: chi's own
// RequestID/RealIP/Recoverer ahead of this service's request-ID
// bridging and structured access logging.
func NewRouter(st *store.Store) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(withRequestID)
	r.Use(logRequest)

	h := NewHandlers(st)

	applog.Info(constant.MsgSettingUpRoutes, applog.LoggerInfo{ContextFunction: constant.CtxRouter})

	r.Method("GET", constant.RouteHealthcheck, http.HandlerFunc(h.Health))
	r.Method("GET", constant.RouteMetrics, http.HandlerFunc(h.Metrics))

	for _, method := range []string{"GET", "POST"} {
		r.Method(method, constant.RoutePut, http.HandlerFunc(h.Put))
		r.Method(method, constant.RouteDel, http.HandlerFunc(h.Del))
		r.Method(method, constant.RouteNuke, http.HandlerFunc(h.Nuke))
		r.Method(method, constant.RouteIncr, http.HandlerFunc(h.Incr))
		r.Method(method, constant.RouteDecr, http.HandlerFunc(h.Decr))
		r.Method(method, constant.RouteSearch, http.HandlerFunc(h.Search))
	}

	return r
}
