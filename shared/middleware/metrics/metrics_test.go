package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/v1/boards/{board}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/v1/boards/{board}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/v1/boards/42", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/v1/boards/{board}", "418"))

	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	CardsMoved.Add(0)
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "kanban_cards_moved_total"))
}
