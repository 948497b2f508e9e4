package model

type estimator interface {
	evaluate(x []float64) float64
}

type forest struct {
	trees []Tree
}

// evaluate averages the trees, as a regression forest does.
func (f forest) evaluate(x []float64) float64 {
	sum := 0.0

	for _, t := range f.trees {
		sum += t.evaluate(x)
	}

	return sum / float64(len(f.trees))
}

func (t Tree) evaluate(x []float64) float64 {
	i := 0

	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]

		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}

	return t.Nodes[i].Value
}

type linear struct {
	intercept    float64
	coefficients []float64
}

func (l linear) evaluate(x []float64) float64 {
	y := l.intercept

	for i, c := range l.coefficients {
		y += c * x[i]
	}

	return y
}

func newEstimator(e Estimator) estimator {
	if e.Kind == EstimatorLinear {
		return linear{intercept: e.Intercept, coefficients: e.Coefficients}
	}

	return forest{trees: e.Trees}
}
