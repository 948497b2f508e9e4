package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"hsc_predictor/pkg/metrics"
)

func TestPrometheusServerHandler(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
		Name: "hsc_test_total",
		Help: "Test counter.",
	})
	registry.MustRegister(counter)
	counter.Inc()

	testCases := []struct {
		name       string
		endpoint   string
		statusCode int
		contains   string
	}{
		{
			name:       "Metrics handler",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   "hsc_test_total 1",
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			w := httptest.NewRecorder()
			metrics.NewPrometheusServer(":0", registry).Handler().
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, w.Code)
			rq.Contains(w.Body.String(), tc.contains)
		})
	}
}

func TestPrometheusServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prometheusServer := metrics.NewPrometheusServer(":10010", nil)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return prometheusServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10010/metrics", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)
	rq.NoError(err)

	rq.Equal(http.StatusOK, resp.StatusCode)

	cancel()

	rq.NoError(g.Wait())
}
