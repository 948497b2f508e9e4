package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"hsc_predictor/internal/config"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/infrastructure/telemetry"
	"hsc_predictor/internal/server"
	"hsc_predictor/pkg/application/modules"
	"hsc_predictor/pkg/contextx"
	"hsc_predictor/pkg/logx"
	"hsc_predictor/pkg/middlewarex"
)

const (
	metricsNamespace  = "hsc_predictor"
	readHeaderTimeout = 5 * time.Second
)

// Run loads the model and serves the form, the probes and the metrics until
// ctx is cancelled. A model that cannot be loaded stops startup before any
// port is bound.
func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 2. Model
	model, err := newModel(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newModel: %w", err)
	}
	defer model.close(ctx)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	httpMetrics := middlewarex.NewHTTPMetrics(registry, metricsNamespace)

	// 4. Service
	svc := gpa.NewService(model.capability, cfg.Bounds.GPA()).
		WithObserver(telemetry.NewPredictions(registry, metricsNamespace))

	router := server.NewRouter(
		server.NewServer(server.NewPredictionServer(svc)),
		server.RouterOptions{
			Logger:         log,
			Metrics:        &httpMetrics,
			LogFieldMaxLen: cfg.App.LogFieldMaxLen,
		},
	)

	// 5. Servers
	g, ctx := errgroup.WithContext(ctx)

	probeServer := modules.NewProbeServer(cfg.App.Name, cfg.App.Version, model.describe, cfg.HTTP.ProbeAddr)
	probeServer.Run(ctx, g)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	})

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsAddr,
		Gatherer:      registry,
	}.Run(ctx, g)

	probeServer.Server.MarkReady()

	log.Info("application started", slog.String(logx.FieldModelName, model.describe))

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
