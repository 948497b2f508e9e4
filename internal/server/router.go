package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hsc_predictor/pkg/logx"
	"hsc_predictor/pkg/middlewarex"
)

type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *middlewarex.HTTPMetrics
	LogFieldMaxLen int
}

// NewRouter mounts s behind the middleware stack every request goes through.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()
	r := chi.NewRouter()

	if opts.Logger != nil {
		r.Use(middlewarex.BaseLogger(opts.Logger))
	}

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
	)

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler)
	}

	if opts.LogFieldMaxLen > 0 {
		r.Use(
			middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
			middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
		)
	}

	s.RegisterRoutes(r)

	return r
}
