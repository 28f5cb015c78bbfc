package training

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ElasticNet is a linear model with a combined L1/L2 penalty, fitted by
// cyclic coordinate descent on the objective
//
//	1/(2n) * ||y - Xw - b||^2 + alpha*l1Ratio*||w||_1
//	                          + alpha*(1-l1Ratio)/2*||w||^2
//
// which matches the usual elastic-net parameterization (alpha is the overall
// regularization strength, l1Ratio the L1/L2 mixing).
type ElasticNet struct {
	Alpha   float64
	L1Ratio float64
	MaxIter int
	Tol     float64

	coef      []float64
	intercept float64
}

func NewElasticNet(alpha, l1Ratio float64) *ElasticNet {
	return &ElasticNet{
		Alpha:   alpha,
		L1Ratio: l1Ratio,
		MaxIter: 10000,
		Tol:     1e-6,
	}
}

// Fit estimates coefficients and intercept. Columns and targets are centered
// internally, so the caller may pass either raw or standardized features.
func (e *ElasticNet) Fit(x *mat.Dense, y []float64) error {
	n, cols := x.Dims()
	if n != len(y) {
		return fmt.Errorf("got %d rows but %d targets", n, len(y))
	}
	if n == 0 || cols == 0 {
		return fmt.Errorf("empty design matrix")
	}

	colMeans := make([]float64, cols)
	xc := mat.NewDense(n, cols, nil)
	col := make([]float64, n)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		colMeans[j] = floats.Sum(col) / float64(n)
		for i := 0; i < n; i++ {
			xc.Set(i, j, col[i]-colMeans[j])
		}
	}
	yMean := floats.Sum(y) / float64(n)
	residual := make([]float64, n)
	for i := range y {
		residual[i] = y[i] - yMean
	}

	// per-column squared norms, 1/n scaled
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, xc)
		norms[j] = floats.Dot(col, col) / float64(n)
	}

	w := make([]float64, cols)
	l1 := e.Alpha * e.L1Ratio
	l2 := e.Alpha * (1 - e.L1Ratio)
	for iter := 0; iter < e.MaxIter; iter++ {
		maxDelta := 0.0
		for j := 0; j < cols; j++ {
			if norms[j] == 0 {
				continue
			}
			mat.Col(col, j, xc)
			// rho is the partial correlation with w[j] backed out
			rho := floats.Dot(col, residual)/float64(n) + norms[j]*w[j]
			next := softThreshold(rho, l1) / (norms[j] + l2)
			if delta := next - w[j]; delta != 0 {
				floats.AddScaled(residual, -delta, col)
				if math.Abs(delta) > maxDelta {
					maxDelta = math.Abs(delta)
				}
				w[j] = next
			}
		}
		if maxDelta < e.Tol {
			break
		}
	}

	e.coef = w
	e.intercept = yMean - floats.Dot(w, colMeans)
	return nil
}

// Predict applies the fitted model row-wise.
func (e *ElasticNet) Predict(x *mat.Dense) []float64 {
	n, cols := x.Dims()
	out := make([]float64, n)
	row := make([]float64, cols)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		out[i] = floats.Dot(row, e.coef) + e.intercept
	}
	return out
}

// Coef returns the fitted coefficients in feature order.
func (e *ElasticNet) Coef() []float64 {
	return e.coef
}

func (e *ElasticNet) Intercept() float64 {
	return e.intercept
}

func softThreshold(v, threshold float64) float64 {
	switch {
	case v > threshold:
		return v - threshold
	case v < -threshold:
		return v + threshold
	default:
		return 0
	}
}
