package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/errcodes"
	"hsc_predictor/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "hsc:prediction:"

var ErrMiss = domain.NewError(errcodes.CacheMiss, "cache miss")

type Backend string

const (
	BackendNone   Backend = "none"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// Storage keeps raw model outputs by record key. Get returns ErrMiss for
// absent keys.
type Storage interface {
	Get(ctx context.Context, key string) (float64, error)
	Set(ctx context.Context, key string, value float64, ttl time.Duration) error
}

type model interface {
	Predict(ctx context.Context, record entity.FeatureRecord) (float64, error)
}

// Model memoizes another model's raw output. Storage failures are logged and
// fall through to the wrapped model. Errors are never cached.
type Model struct {
	next    model
	storage Storage
	ttl     time.Duration
}

func NewModel(next model, storage Storage, ttl time.Duration) *Model {
	return &Model{
		next:    next,
		storage: storage,
		ttl:     ttl,
	}
}

func (m *Model) Predict(ctx context.Context, record entity.FeatureRecord) (float64, error) {
	key, err := Key(record)
	if err != nil {
		logger(ctx).Warn("cache.Key", logx.Error(err))
		return m.next.Predict(ctx, record)
	}

	v, err := m.storage.Get(ctx, key)
	if err == nil {
		logger(ctx).Debug("prediction served from cache", slog.Bool(logx.FieldCacheHit, true))
		return v, nil
	}

	if !errors.Is(err, ErrMiss) {
		logger(ctx).Warn("storage.Get", logx.Error(err))
	}

	v, err = m.next.Predict(ctx, record)
	if err != nil {
		return 0, err //nolint:wrapcheck // the wrapped model's error is the answer
	}

	if err = m.storage.Set(ctx, key, v, m.ttl); err != nil {
		logger(ctx).Warn("storage.Set", logx.Error(err))
	}

	return v, nil
}

// Key derives a stable key from the record's canonical JSON form.
func Key(record entity.FeatureRecord) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	sum := sha256.Sum256(data)

	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
