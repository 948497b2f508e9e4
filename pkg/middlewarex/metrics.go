package middlewarex

import (
	"cmp"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zenazn/goji/web/mutil"
)

const unmatchedRoute = "unmatched"

type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registerer prometheus.Registerer, namespace string) HTTPMetrics {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registerer.MustRegister(duration)

	return HTTPMetrics{duration: duration}
}

// Handler observes request duration. The route label is the chi pattern, not
// the raw path, to keep cardinality bounded.
func (m HTTPMetrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := cmp.Or(lw.Status(), http.StatusOK)

		m.duration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
