package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arnav-k/autocompleted/internal/applog"
	"github.com/arnav-k/autocompleted/internal/constant"
	"github.com/arnav-k/autocompleted/internal/metrics"
	"github.com/arnav-k/autocompleted/internal/store"
)

// Handlers wires the store to the HTTP surface. Every handler reads
// its arguments from the request's form values (query string on GET,
// body on POST), so either method works against every route.
type Handlers struct {
	store *store.Store
}

// NewHandlers returns Handlers backed by st.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{store: st}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (h *Handlers) writeStoreErr(w http.ResponseWriter, r *http.Request, ctxName string, err error) {
	switch err {
	case store.ErrMissingRequiredArg:
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
	case store.ErrBadInput:
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
	case store.ErrNamespaceNotFound:
		writeText(w, http.StatusNotFound, constant.RespErrNamespaceMissing)
	case store.ErrKeyNotFound:
		writeText(w, http.StatusNotFound, constant.RespErrKeyNotFound)
	default:
		applog.CtxError(r.Context(), "Unhandled store error", applog.LoggerInfo{
			ContextFunction: ctxName,
			Error: &applog.CustomError{
				Code:    constant.ErrCodeInternal,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
		})
		writeText(w, http.StatusInternalServerError, constant.RespErrInternal)
	}
}

func parseOptionalInt64(r *http.Request, name string) (*int64, bool) {
	raw := r.FormValue(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func parseOptionalString(r *http.Request, name string) *string {
	if !formHas(r, name) {
		return nil
	}
	v := r.FormValue(name)
	return &v
}

func formHas(r *http.Request, name string) bool {
	if r.Form == nil {
		_ = r.ParseForm()
	}
	_, ok := r.Form[name]
	return ok
}

// Put handles GET/POST `/put`.
func (h *Handlers) Put(w http.ResponseWriter, r *http.Request) {
	namespace := r.FormValue("namespace")
	key := r.FormValue("key")

	ts, ok := parseOptionalInt64(r, "ts")
	if !ok {
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
		return
	}

	_, err := h.store.Put(store.PutInput{
		Namespace: namespace,
		Key:       key,
		ID:        r.FormValue("id"),
		Data:      parseOptionalString(r, "data"),
		TS:        ts,
		Locale:    r.FormValue("locale"),
	})
	if err != nil {
		h.writeStoreErr(w, r, constant.CtxPut, err)
		return
	}
	writeText(w, http.StatusOK, constant.RespOK)
}

// Del handles `/del`.
func (h *Handlers) Del(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.FormValue("namespace"), r.FormValue("key"), r.FormValue("id"), r.FormValue("locale"))
	if err != nil {
		h.writeStoreErr(w, r, constant.CtxDelete, err)
		return
	}
	writeText(w, http.StatusOK, constant.RespOK)
}

// Nuke handles `/nuke`.
func (h *Handlers) Nuke(w http.ResponseWriter, r *http.Request) {
	err := h.store.Nuke(r.FormValue("namespace"), r.FormValue("key"), r.FormValue("id"), r.FormValue("locale"))
	if err != nil {
		h.writeStoreErr(w, r, constant.CtxNuke, err)
		return
	}
	writeText(w, http.StatusOK, constant.RespOK)
}

func (h *Handlers) decrementBy(w http.ResponseWriter, r *http.Request, sign int64) {
	namespace := r.FormValue("namespace")
	key := r.FormValue("key")
	raw := r.FormValue("value")
	if namespace == "" || key == "" || raw == "" {
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
		return
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
		return
	}

	if err := h.store.Decrement(namespace, key, sign*value, r.FormValue("locale")); err != nil {
		h.writeStoreErr(w, r, constant.CtxDecrement, err)
		return
	}
	writeText(w, http.StatusOK, constant.RespOK)
}

// Incr handles `/incr`, a positive decrement (the original C source's
// incr_cb): it adds value to the target's count instead of subtracting it.
func (h *Handlers) Incr(w http.ResponseWriter, r *http.Request) {
	h.decrementBy(w, r, -1)
}

// Decr handles `/decr`.
func (h *Handlers) Decr(w http.ResponseWriter, r *http.Request) {
	h.decrementBy(w, r, 1)
}

type searchResponse struct {
	Key   string  `json:"key"`
	ID    string  `json:"id,omitempty"`
	When  int64   `json:"when"`
	Count int64   `json:"count"`
	Data  *string `json:"data,omitempty"`
}

// searchResultsResponse wraps a search's results in the "results" key,
// matching the original C search_cb's json_object_object_add(jsobj,
// "results", ...) envelope rather than a bare array.
type searchResultsResponse struct {
	Results []searchResponse `json:"results"`
}

// Search handles `/search`.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	namespace := r.FormValue("namespace")
	if namespace == "" {
		writeText(w, http.StatusBadRequest, constant.RespErrMissingRequired)
		return
	}

	limit := 0
	if raw := r.FormValue("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	var tsFloor int64
	if raw := r.FormValue("ts"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			tsFloor = v
		}
	}

	results, err := h.store.Search(store.SearchInput{
		Namespace: namespace,
		Key:       r.FormValue("key"),
		ID:        r.FormValue("id"),
		Locale:    r.FormValue("locale"),
		Limit:     limit,
		TSFloor:   tsFloor,
	})
	if err != nil {
		h.writeStoreErr(w, r, constant.CtxSearch, err)
		return
	}

	out := make([]searchResponse, len(results))
	for i, res := range results {
		out[i] = searchResponse{Key: res.Key, ID: res.ID, When: res.When, Count: res.Count, Data: res.Data}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(searchResultsResponse{Results: out})
}

// Health handles `/health`.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	applog.CtxDebug(r.Context(), constant.MsgHealthcheckRequest, applog.LoggerInfo{ContextFunction: constant.CtxAPI})
	writeText(w, http.StatusOK, constant.MsgHealthy)
}

// Metrics handles `/metrics`, refreshing the registry-shape gauges
// from the live store immediately before delegating to promhttp.
func (h *Handlers) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics.RefreshGauges(h.store)
	metrics.Handler().ServeHTTP(w, r)
}
