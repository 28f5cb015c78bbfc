package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestElasticNetFitsLinearData(t *testing.T) {
	// y = 2*x + 1, no noise, no effective penalty
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := []float64{1, 3, 5, 7}

	net := NewElasticNet(0, 0.5)
	require.NoError(t, net.Fit(x, y))

	assert.InDelta(t, 2.0, net.Coef()[0], 1e-6)
	assert.InDelta(t, 1.0, net.Intercept(), 1e-6)

	pred := net.Predict(x)
	for i := range y {
		assert.InDelta(t, y[i], pred[i], 1e-6)
	}
}

func TestElasticNetTwoFeatures(t *testing.T) {
	// y = 1*x0 - 2*x1
	x := mat.NewDense(6, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 1,
		1, 2,
		3, 0,
	})
	y := make([]float64, 6)
	for i := 0; i < 6; i++ {
		y[i] = x.At(i, 0) - 2*x.At(i, 1)
	}

	net := NewElasticNet(0, 0.5)
	require.NoError(t, net.Fit(x, y))
	assert.InDelta(t, 1.0, net.Coef()[0], 1e-6)
	assert.InDelta(t, -2.0, net.Coef()[1], 1e-6)
	assert.InDelta(t, 0.0, net.Intercept(), 1e-6)
}

// A strong enough L1 penalty shrinks everything to zero and the model
// degrades to predicting the target mean.
func TestElasticNetHeavyPenalty(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{-1.5, -0.5, 0.5, 1.5})
	y := []float64{1, 3, 5, 7}

	net := NewElasticNet(1e6, 1.0)
	require.NoError(t, net.Fit(x, y))
	assert.Zero(t, net.Coef()[0])
	assert.InDelta(t, 4.0, net.Intercept(), 1e-9)
}

func TestElasticNetConstantColumn(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	y := []float64{0, 2, 4, 6}

	net := NewElasticNet(0, 0.5)
	require.NoError(t, net.Fit(x, y))
	// the constant column carries no signal and keeps a zero weight
	assert.Zero(t, net.Coef()[0])
	assert.InDelta(t, 2.0, net.Coef()[1], 1e-6)
}

func TestElasticNetRejectsBadInput(t *testing.T) {
	net := NewElasticNet(0.1, 0.5)
	assert.Error(t, net.Fit(mat.NewDense(2, 1, []float64{1, 2}), []float64{1}))
}

func TestSoftThreshold(t *testing.T) {
	assert.Equal(t, 0.5, softThreshold(1.5, 1.0))
	assert.Equal(t, -0.5, softThreshold(-1.5, 1.0))
	assert.Zero(t, softThreshold(0.5, 1.0))
	assert.Zero(t, softThreshold(-0.5, 1.0))
}
