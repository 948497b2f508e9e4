package gpa

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinGPA = 0.0
	MaxGPA = 5.0
)

// Bounds are the accepted ranges for the numeric attributes the model is
// sensitive to. Age is checked as AgeMin <= age < AgeMax; SSC result and
// tuition fee bounds are inclusive on both ends.
type Bounds struct {
	AgeMin     float64
	AgeMax     float64
	SSCMin     float64
	SSCMax     float64
	TuitionMin float64
	TuitionMax float64
}

func DefaultBounds() Bounds {
	return Bounds{
		AgeMin:     15,
		AgeMax:     30,
		SSCMin:     2.50,
		SSCMax:     5.00,
		TuitionMin: 0,
		TuitionMax: 134168,
	}
}

var ErrInvalidBounds = errors.New("invalid bounds")

func (b Bounds) Validate() error {
	pairs := []struct {
		name     string
		min, max float64
	}{
		{"age", b.AgeMin, b.AgeMax},
		{"ssc result", b.SSCMin, b.SSCMax},
		{"tuition fee", b.TuitionMin, b.TuitionMax},
	}

	for _, p := range pairs {
		if math.IsNaN(p.min) || math.IsNaN(p.max) || p.min >= p.max {
			return fmt.Errorf("%s: min %g must be below max %g: %w", p.name, p.min, p.max, ErrInvalidBounds)
		}
	}

	if b.TuitionMin < 0 {
		return fmt.Errorf("tuition fee: min %g is negative: %w", b.TuitionMin, ErrInvalidBounds)
	}

	if b.SSCMin < MinGPA || b.SSCMax > MaxGPA {
		return fmt.Errorf("ssc result: [%g, %g] outside the GPA scale: %w", b.SSCMin, b.SSCMax, ErrInvalidBounds)
	}

	return nil
}

// Clamp limits v to [lo, hi] and reports whether v had to be changed.
func Clamp(v, lo, hi float64) (float64, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	default:
		return v, false
	}
}
