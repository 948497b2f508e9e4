package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/internal/infrastructure/cache"
)

type Config struct {
	App    App
	HTTP   HTTP
	Model  Model
	Bounds Bounds
	Cache  Cache
	Redis  Redis
}

type App struct {
	Name           string     `env:"APP_NAME"          envDefault:"hsc-predictor"`
	Version        string     `env:"APP_VERSION"       envDefault:"dev"`
	LogLevel       slog.Level `env:"LOG_LEVEL"         envDefault:"info"`
	LogNoColor     bool       `env:"LOG_NO_COLOR"`
	LogFieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR"             envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeAddr       string        `env:"PROBE_ADDR"            envDefault:":8081"`
	MetricsAddr     string        `env:"METRICS_ADDR"          envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Bounds.GPA().Validate(); err != nil {
		return Config{}, fmt.Errorf("bounds.Validate: %w", err)
	}

	switch config.Cache.Backend {
	case cache.BackendNone, cache.BackendMemory, cache.BackendRedis:
	default:
		return Config{}, fmt.Errorf("CACHE_BACKEND: unknown backend %q", config.Cache.Backend)
	}

	return config, nil
}

// GPA converts the configured ranges into the orchestrator's bounds.
func (b Bounds) GPA() gpa.Bounds {
	return gpa.Bounds{
		AgeMin:     b.AgeMin,
		AgeMax:     b.AgeMax,
		SSCMin:     b.SSCMin,
		SSCMax:     b.SSCMax,
		TuitionMin: b.TuitionMin,
		TuitionMax: b.TuitionMax,
	}
}
