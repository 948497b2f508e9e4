package model

import (
	"context"
	"fmt"
	"log/slog"

	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/logx"
)

// Pipeline is a loaded artifact ready to serve predictions. It is read-only
// after Load and safe for concurrent use.
type Pipeline struct {
	name      string
	version   string
	kind      EstimatorKind
	encoder   encoder
	estimator estimator
}

// Load reads the artifact at path and builds a Pipeline from it.
func Load(ctx context.Context, path string) (*Pipeline, error) {
	artifact, err := ReadArtifact(path)
	if err != nil {
		return nil, fmt.Errorf("model.ReadArtifact: %w", err)
	}

	p := NewPipeline(artifact)

	logger(ctx).Info(
		"model loaded",
		slog.String(logx.FieldModelPath, path),
		slog.String(logx.FieldModelName, p.name),
		slog.String(logx.FieldModelVersion, p.version),
		slog.String(logx.FieldModelKind, string(p.kind)),
	)

	return p, nil
}

// NewPipeline builds a Pipeline from an artifact that passed Validate.
func NewPipeline(artifact Artifact) *Pipeline {
	return &Pipeline{
		name:      artifact.Name,
		version:   artifact.Version,
		kind:      artifact.Estimator.Kind,
		encoder:   newEncoder(artifact.Features),
		estimator: newEstimator(artifact.Estimator),
	}
}

func (p *Pipeline) Predict(_ context.Context, record entity.FeatureRecord) (float64, error) {
	x, err := p.encoder.encode(record)
	if err != nil {
		return 0, fmt.Errorf("encoder.encode: %w", err)
	}

	return p.estimator.evaluate(x), nil
}

// Describe returns a short "name@version" label for probes and logs.
func (p *Pipeline) Describe() string {
	if p.version == "" {
		return p.name
	}

	return p.name + "@" + p.version
}
