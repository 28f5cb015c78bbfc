package training

import (
	"fmt"
	"math/rand"
)

// TrainTestSplit shuffles the row indices deterministically by seed and
// splits them into a training and a held-out validation part.
func TrainTestSplit(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction %v out of (0,1)", testFraction)
	}
	idx := rand.New(rand.NewSource(seed)).Perm(n) //nolint:gosec // deterministic split
	testSize := int(float64(n) * testFraction)
	if testSize == 0 {
		testSize = 1
	}
	return idx[testSize:], idx[:testSize], nil
}

// KFold partitions the row indices 0..n-1 into k shuffled folds.
func KFold(n, k int, seed int64) ([][]int, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("fold count %d out of range for %d samples", k, n)
	}
	idx := rand.New(rand.NewSource(seed)).Perm(n) //nolint:gosec // deterministic folds
	folds := make([][]int, k)
	for i, row := range idx {
		folds[i%k] = append(folds[i%k], row)
	}
	return folds, nil
}
