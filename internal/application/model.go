package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"hsc_predictor/internal/config"
	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/infrastructure/cache"
	"hsc_predictor/internal/infrastructure/model"
	"hsc_predictor/pkg/application/connectors"
	"hsc_predictor/pkg/httpx"
	"hsc_predictor/pkg/logx"
)

type loadedModel struct {
	capability gpa.Model
	describe   string
	close      func(context.Context)
}

// newModel builds the model capability: the local artifact, or the remote
// endpoint when MODEL_URL is set, optionally behind a prediction cache.
func newModel(ctx context.Context, cfg config.Config) (loadedModel, error) {
	loaded := loadedModel{close: func(context.Context) {}}

	if cfg.Model.URL != "" {
		remote := model.NewRemote(cfg.Model.URL, &http.Client{ //nolint:exhaustruct
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(cfg.App.LogFieldMaxLen),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		})

		loaded.capability = remote
		loaded.describe = remote.Describe()
	} else {
		pipeline, err := model.Load(ctx, cfg.Model.Path)
		if err != nil {
			return loadedModel{}, fmt.Errorf("model.Load: %w", err)
		}

		loaded.capability = pipeline
		loaded.describe = pipeline.Describe()
	}

	var storage cache.Storage

	switch cfg.Cache.Backend {
	case cache.BackendMemory:
		storage = cache.NewMemory(cfg.Cache.TTL)
	case cache.BackendRedis:
		redis := &connectors.Redis{ //nolint:exhaustruct
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		storage = cache.NewRedis(redis.Client(ctx))
		loaded.close = redis.Close
	default:
		return loaded, nil
	}

	loaded.capability = cache.NewModel(loaded.capability, storage, cfg.Cache.TTL)

	logger(ctx).Info(
		"prediction cache enabled",
		slog.String(logx.FieldCacheBackend, string(cfg.Cache.Backend)),
	)

	return loaded, nil
}
