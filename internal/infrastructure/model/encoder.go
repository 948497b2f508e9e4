package model

import (
	"errors"
	"fmt"

	"hsc_predictor/internal/domain"
	"hsc_predictor/internal/domain/entity"
	"hsc_predictor/pkg/errcodes"
)

var errSchema = errors.New("record does not match model schema")

type column struct {
	name       string
	kind       FeatureKind
	offset     int
	categories map[string]int
}

// encoder turns a named record into the dense vector the estimator was
// fitted on. Categories the model never saw encode as all zeros.
type encoder struct {
	columns []column
	width   int
}

func newEncoder(features []Feature) encoder {
	enc := encoder{columns: make([]column, 0, len(features))}

	for _, f := range features {
		col := column{name: f.Name, kind: f.Kind, offset: enc.width}

		if f.Kind == FeatureCategorical {
			col.categories = make(map[string]int, len(f.Categories))
			for i, c := range f.Categories {
				col.categories[c] = i
			}

			enc.width += len(f.Categories)
		} else {
			enc.width++
		}

		enc.columns = append(enc.columns, col)
	}

	return enc
}

func (e encoder) encode(record entity.FeatureRecord) ([]float64, error) {
	vector := make([]float64, e.width)

	for _, col := range e.columns {
		raw, ok := record[col.name]
		if !ok {
			return nil, schemaMismatch(fmt.Errorf("column %q missing: %w", col.name, errSchema))
		}

		switch col.kind {
		case FeatureNumeric:
			v, ok := toFloat(raw)
			if !ok {
				return nil, schemaMismatch(fmt.Errorf("column %q: %T is not numeric: %w", col.name, raw, errSchema))
			}

			vector[col.offset] = v
		case FeatureCategorical:
			s, ok := toCategory(raw)
			if !ok {
				return nil, schemaMismatch(fmt.Errorf("column %q: %T is not categorical: %w", col.name, raw, errSchema))
			}

			if i, known := col.categories[s]; known {
				vector[col.offset+i] = 1
			}
		}
	}

	return vector, nil
}

func schemaMismatch(err error) error {
	return domain.WrapError(err, errcodes.ModelSchemaMismatch, "schema mismatch")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toCategory(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}
