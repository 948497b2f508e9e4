package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"hsc_predictor/internal/domain"
	"hsc_predictor/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type FeatureKind string

const (
	FeatureNumeric     FeatureKind = "numeric"
	FeatureCategorical FeatureKind = "categorical"
)

type EstimatorKind string

const (
	EstimatorForest EstimatorKind = "forest"
	EstimatorLinear EstimatorKind = "linear"
)

// Artifact is the portable form of a trained pipeline: the input columns with
// their preprocessing, followed by the fitted estimator.
type Artifact struct {
	Name      string    `json:"name"      yaml:"name"`
	Version   string    `json:"version"   yaml:"version"`
	Target    string    `json:"target"    yaml:"target"`
	Features  []Feature `json:"features"  yaml:"features"`
	Estimator Estimator `json:"estimator" yaml:"estimator"`
}

type Feature struct {
	Name       string      `json:"name"                 yaml:"name"`
	Kind       FeatureKind `json:"kind"                 yaml:"kind"`
	Categories []string    `json:"categories,omitempty" yaml:"categories,omitempty"`
}

type Estimator struct {
	Kind         EstimatorKind `json:"kind"                   yaml:"kind"`
	Trees        []Tree        `json:"trees,omitempty"        yaml:"trees,omitempty"`
	Intercept    float64       `json:"intercept,omitempty"    yaml:"intercept,omitempty"`
	Coefficients []float64     `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
}

type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Node is either a leaf carrying Value or a split sending x[Feature] <=
// Threshold to Left and everything else to Right.
type Node struct {
	Leaf      bool    `json:"leaf,omitempty"      yaml:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty"     yaml:"value,omitempty"`
	Feature   int     `json:"feature,omitempty"   yaml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"      yaml:"left,omitempty"`
	Right     int     `json:"right,omitempty"     yaml:"right,omitempty"`
}

var errArtifact = errors.New("malformed artifact")

// ReadArtifact reads an artifact from path. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func ReadArtifact(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, domain.WrapError(err, errcodes.ModelArtifactInvalid, "read model artifact")
	}

	artifact, err := ParseArtifact(data, filepath.Ext(path))
	if err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", path, err)
	}

	return artifact, nil
}

func ParseArtifact(data []byte, ext string) (Artifact, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Artifact{}, domain.WrapError(errArtifact, errcodes.ModelArtifactInvalid, "empty model artifact")
	}

	var (
		artifact Artifact
		err      error
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &artifact)
	default:
		err = json.Unmarshal(data, &artifact)
	}

	if err != nil {
		return Artifact{}, domain.WrapError(err, errcodes.ModelArtifactInvalid, "decode model artifact")
	}

	if err = artifact.Validate(); err != nil {
		return Artifact{}, domain.WrapError(err, errcodes.ModelArtifactInvalid, "invalid model artifact")
	}

	return artifact, nil
}

// Width is the length of the encoded feature vector.
func (a Artifact) Width() int {
	width := 0

	for _, f := range a.Features {
		if f.Kind == FeatureCategorical {
			width += len(f.Categories)
		} else {
			width++
		}
	}

	return width
}

func (a Artifact) Validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("no features: %w", errArtifact)
	}

	seen := make(map[string]struct{}, len(a.Features))

	for i, f := range a.Features {
		if f.Name == "" {
			return fmt.Errorf("feature %d: empty name: %w", i, errArtifact)
		}

		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("feature %q: duplicated: %w", f.Name, errArtifact)
		}

		seen[f.Name] = struct{}{}

		switch f.Kind {
		case FeatureNumeric:
		case FeatureCategorical:
			if len(f.Categories) == 0 {
				return fmt.Errorf("feature %q: no categories: %w", f.Name, errArtifact)
			}
		default:
			return fmt.Errorf("feature %q: unknown kind %q: %w", f.Name, f.Kind, errArtifact)
		}
	}

	return a.Estimator.validate(a.Width())
}

func (e Estimator) validate(width int) error {
	switch e.Kind {
	case EstimatorForest:
		if len(e.Trees) == 0 {
			return fmt.Errorf("forest without trees: %w", errArtifact)
		}

		for i, t := range e.Trees {
			if err := t.validate(width); err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
		}
	case EstimatorLinear:
		if len(e.Coefficients) != width {
			return fmt.Errorf("%d coefficients for %d encoded columns: %w", len(e.Coefficients), width, errArtifact)
		}
	default:
		return fmt.Errorf("unknown estimator kind %q: %w", e.Kind, errArtifact)
	}

	return nil
}

// validate also requires children to come after their parent, so evaluation
// always reaches a leaf.
func (t Tree) validate(width int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("no nodes: %w", errArtifact)
	}

	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}

		if n.Feature < 0 || n.Feature >= width {
			return fmt.Errorf("node %d: feature %d out of range: %w", i, n.Feature, errArtifact)
		}

		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child %d out of range: %w", i, child, errArtifact)
			}
		}
	}

	return nil
}
