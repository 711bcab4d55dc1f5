package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/leads/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/leads/{id}", "404"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/leads/{id}", "404"))
	assert.Equal(t, 2.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(activeConnections))
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(leadsIngested)
	RecordLeadsIngested(5)
	assert.Equal(t, 5.0, testutil.ToFloat64(leadsIngested)-before)

	sent := testutil.ToFloat64(emailsDispatched.WithLabelValues("sent"))
	RecordEmailDispatch("sent", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(emailsDispatched.WithLabelValues("sent"))-sent)

	stage := testutil.ToFloat64(leadParseStages.WithLabelValues("text_blocks"))
	RecordParseStage("text_blocks")
	assert.Equal(t, 1.0, testutil.ToFloat64(leadParseStages.WithLabelValues("text_blocks"))-stage)

	errs := testutil.ToFloat64(integrationErrors.WithLabelValues("gemini"))
	RecordIntegrationError("gemini")
	assert.Equal(t, 1.0, testutil.ToFloat64(integrationErrors.WithLabelValues("gemini"))-errs)
}
