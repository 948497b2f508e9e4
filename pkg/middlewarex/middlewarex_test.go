package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"hsc_predictor/pkg/contextx"
	"hsc_predictor/pkg/logx"
	"hsc_predictor/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		seen = traceID
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.NotEmpty(seen)
	rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.Header.Set("X-Trace-Id", "given")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	rq.Equal(contextx.TraceID("given"), seen)
	rq.Equal("given", w.Header().Get("X-Trace-Id"))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("model exploded")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), "Internal error")
}

func TestRequestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))
	masker := logx.NewSensitiveDataMasker()

	handler := middlewarex.TraceID(
		middlewarex.BaseLogger(base)(
			middlewarex.Logger(
				middlewarex.RequestLogging(masker, 1024)(
					middlewarex.ResponseLogging(masker, 1024)(
						http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
							w.Write([]byte(`{"message":"ok"}`)) //nolint:errcheck
						}),
					),
				),
			),
		),
	)

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("age=17&tuition_fee=5000"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	handler.ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()
	rq.Contains(out, logx.FieldHTTPRequest)
	rq.Contains(out, logx.FieldHTTPResponse)
	rq.Contains(out, "tuition_fee=[MASKED]")
	rq.NotContains(out, "tuition_fee=5000")
	rq.Contains(out, `"`+logx.FieldTraceID+`"`)
}

func TestHTTPMetrics(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	metrics := middlewarex.NewHTTPMetrics(registry, "test")

	router := chi.NewRouter()
	router.Use(metrics.Handler)
	router.Get("/v1/form/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/form/1", http.NoBody))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/form/2", http.NoBody))

	count, err := testutil.GatherAndCount(registry, "test_http_request_duration_seconds")
	rq.NoError(err)
	rq.Equal(1, count)
}
