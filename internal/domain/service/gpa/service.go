package gpa

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/contextx"
	"hsc_predictor/pkg/errcodes"
	"hsc_predictor/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Model is a trained regression model: one record in, one number out.
type Model interface {
	Predict(ctx context.Context, record entity.FeatureRecord) (float64, error)
}

type observer interface {
	ObservePrediction(outcome string, clamped bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObservePrediction(string, bool, time.Duration) {}

// Service validates a request, asks the model and turns the answer into a
// message. It keeps no state between calls.
type Service struct {
	model    Model
	bounds   Bounds
	observer observer
}

func NewService(model Model, bounds Bounds) *Service {
	return &Service{
		model:    model,
		bounds:   bounds,
		observer: nopObserver{},
	}
}

func (s *Service) WithObserver(o observer) *Service {
	s.observer = o
	return s
}

func (s *Service) Bounds() Bounds {
	return s.bounds
}

// PredictGPA returns the text to show for req.
func (s *Service) PredictGPA(ctx context.Context, req entity.PredictionRequest) string {
	return s.Predict(ctx, req).Message()
}

// Predict never returns an error: validation and model failures are part of
// the Result.
func (s *Service) Predict(ctx context.Context, req entity.PredictionRequest) Result {
	start := time.Now()
	result := s.predict(ctx, req)

	s.observer.ObservePrediction(result.Outcome.String(), result.Clamped, time.Since(start))

	return result
}

func (s *Service) predict(ctx context.Context, req entity.PredictionRequest) Result {
	if v, ok := s.bounds.check(req); !ok {
		logger(ctx).Info("prediction request rejected", slog.String(logx.FieldRule, string(v.rule)))
		return invalid(v)
	}

	raw, err := s.invoke(ctx, req.Features())
	if err != nil {
		logger(ctx).Error("model.Predict", logx.Error(err))
		return failed(err)
	}

	if math.IsNaN(raw) {
		err = domain.NewError(errcodes.ModelBadResponse, "model returned NaN")
		logger(ctx).Error("model.Predict", logx.Error(err))

		return failed(err)
	}

	result := success(raw)

	if result.Clamped {
		logger(ctx).Warn(
			"model output outside GPA scale, clamped",
			slog.Float64(logx.FieldRawGPA, raw),
			slog.Float64(logx.FieldGPA, result.GPA),
		)
	} else {
		logger(ctx).Debug("prediction done", slog.Float64(logx.FieldGPA, result.GPA))
	}

	return result
}

func (s *Service) invoke(ctx context.Context, record entity.FeatureRecord) (raw float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = domain.NewError(errcodes.ModelPanicked, fmt.Sprintf("model panicked: %v", rec))
		}
	}()

	return s.model.Predict(ctx, record)
}
