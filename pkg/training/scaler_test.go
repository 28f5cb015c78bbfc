package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFitScaler(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 5,
		3, 5,
		5, 5,
		7, 5,
	})
	s := FitScaler(x)
	assert.InDelta(t, 4.0, s.Mean[0], 1e-12)
	assert.InDelta(t, 5.0, s.Mean[1], 1e-12)
	// population std of {1,3,5,7}
	assert.InDelta(t, 2.23606797749979, s.Std[0], 1e-12)
	// constant columns divide by 1, not 0
	assert.InDelta(t, 1.0, s.Std[1], 1e-12)
}

func TestScalerTransform(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 5,
		3, 5,
		5, 5,
		7, 5,
	})
	s := FitScaler(x)
	scaled, err := s.Transform(x)
	require.NoError(t, err)

	rows, cols := scaled.Dims()
	for j := 0; j < cols; j++ {
		sum := 0.0
		sumSq := 0.0
		for i := 0; i < rows; i++ {
			v := scaled.At(i, j)
			sum += v
			sumSq += v * v
		}
		assert.InDelta(t, 0.0, sum/float64(rows), 1e-12)
		if j == 0 {
			assert.InDelta(t, 1.0, sumSq/float64(rows), 1e-12)
		} else {
			// the constant column standardizes to all zeros
			assert.Zero(t, sumSq)
		}
	}
}

func TestScalerTransformDimensionMismatch(t *testing.T) {
	s := FitScaler(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	_, err := s.Transform(mat.NewDense(2, 3, nil))
	assert.Error(t, err)
}
