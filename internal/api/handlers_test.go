package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-k/autocompleted/internal/store"
)

func newTestStore() *store.Store {
	return store.New(store.Config{MaxElems: 1000, DefaultSearchLimit: 100}, nil)
}

func doRequest(t *testing.T, h http.HandlerFunc, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path+"?"+form.Encode(), nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestPutHandlerSuccess(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Put, http.MethodPost, "/put", url.Values{
		"namespace": {"ns"},
		"key":       {"hello"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestPutHandlerMissingArgs(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Put, http.MethodPost, "/put", url.Values{"namespace": {"ns"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_REQ_ARG", rec.Body.String())
}

func TestPutHandlerRejectsBadTimestamp(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Put, http.MethodPost, "/put", url.Values{
		"namespace": {"ns"}, "key": {"hello"}, "ts": {"not-a-number"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelHandlerIdempotent(t *testing.T) {
	st := newTestStore()
	h := NewHandlers(st)
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "hello"})
	require.NoError(t, err)

	rec := doRequest(t, h.Del, http.MethodPost, "/del", url.Values{"namespace": {"ns"}, "key": {"hello"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h.Del, http.MethodPost, "/del", url.Values{"namespace": {"ns"}, "key": {"hello"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIncrAndDecrHandlers(t *testing.T) {
	st := newTestStore()
	h := NewHandlers(st)
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "counter"})
	require.NoError(t, err)

	rec := doRequest(t, h.Decr, http.MethodPost, "/decr", url.Values{
		"namespace": {"ns"}, "key": {"counter"}, "value": {"1"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	results, err := st.Search(store.SearchInput{Namespace: "ns", Key: "counter"})
	require.NoError(t, err)
	assert.Empty(t, results, "count should have hit zero and been deleted")

	rec = doRequest(t, h.Incr, http.MethodPost, "/incr", url.Values{
		"namespace": {"ns"}, "key": {"counter"}, "value": {"1"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "KEY_NOT_FOUND", rec.Body.String())
}

func TestDecrHandlerMissingArgs(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Decr, http.MethodPost, "/decr", url.Values{"namespace": {"ns"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerReturnsJSON(t *testing.T) {
	st := newTestStore()
	h := NewHandlers(st)
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "hello"})
	require.NoError(t, err)

	rec := doRequest(t, h.Search, http.MethodGet, "/search", url.Values{"namespace": {"ns"}, "key": {"hel"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "application/json"))

	var out searchResultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, "hello", out.Results[0].Key)
}

func TestSearchHandlerRequiresNamespace(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Search, http.MethodGet, "/search", url.Values{"key": {"hel"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	h := NewHandlers(newTestStore())
	rec := doRequest(t, h.Health, http.MethodGet, "/health", url.Values{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestNukeHandlerRemovesMatchingEntries(t *testing.T) {
	st := newTestStore()
	h := NewHandlers(st)
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "apple"})
	require.NoError(t, err)
	_, err = st.Put(store.PutInput{Namespace: "ns", Key: "application"})
	require.NoError(t, err)
	_, err = st.Put(store.PutInput{Namespace: "ns", Key: "banana"})
	require.NoError(t, err)

	rec := doRequest(t, h.Nuke, http.MethodPost, "/nuke", url.Values{"namespace": {"ns"}, "key": {"app"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	results, err := st.Search(store.SearchInput{Namespace: "ns", Key: ""})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "banana", results[0].Key)
}
