package training

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/avelsner/crossrank/pkg/processing/stats"
)

// Params is one hyperparameter combination of the grid.
type Params struct {
	Alpha   float64
	L1Ratio float64
}

// CVResult is the cross-validated score of one combination.
type CVResult struct {
	Params
	MeanR2 float64
	StdR2  float64
}

// GridSearch evaluates every alpha/l1-ratio combination with k-fold
// cross-validation and keeps the combination with the best mean R^2. The
// fits are independent and fan out across workers.
type GridSearch struct {
	Alphas   []float64
	L1Ratios []float64
	Folds    int
	Seed     int64
	Workers  int
}

func DefaultGridSearch() *GridSearch {
	return &GridSearch{
		Alphas:   []float64{0.001, 0.01, 0.1, 0.5, 1.0},
		L1Ratios: []float64{0.1, 0.3, 0.5, 0.7, 0.9},
		Folds:    5,
		Seed:     42,
		Workers:  runtime.NumCPU(),
	}
}

// Run returns the best combination plus the full grid ordered by descending
// mean R^2.
func (g *GridSearch) Run(ctx context.Context, x *mat.Dense, y []float64) (Params, []CVResult, error) {
	n, _ := x.Dims()
	folds, err := KFold(n, g.Folds, g.Seed)
	if err != nil {
		return Params{}, nil, err
	}

	grid := make([]Params, 0, len(g.Alphas)*len(g.L1Ratios))
	for _, alpha := range g.Alphas {
		for _, l1 := range g.L1Ratios {
			grid = append(grid, Params{Alpha: alpha, L1Ratio: l1})
		}
	}
	results := make([]CVResult, len(grid))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.Workers, 1))
	for i, p := range grid {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.crossValidate(x, y, folds, p)
			if err != nil {
				return fmt.Errorf("cv for alpha=%v l1=%v: %w", p.Alpha, p.L1Ratio, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Params{}, nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MeanR2 > results[j].MeanR2
	})
	return results[0].Params, results, nil
}

//nolint:whitespace // can't make both editor and linter happy
func (g *GridSearch) crossValidate(
	x *mat.Dense, y []float64, folds [][]int, p Params,
) (CVResult, error) {
	scores := make([]float64, 0, len(folds))
	for f := range folds {
		holdout := folds[f]
		train := make([]int, 0, len(y)-len(holdout))
		for other := range folds {
			if other != f {
				train = append(train, folds[other]...)
			}
		}
		xTrain, yTrain := subset(x, y, train)
		xHold, yHold := subset(x, y, holdout)

		net := NewElasticNet(p.Alpha, p.L1Ratio)
		if err := net.Fit(xTrain, yTrain); err != nil {
			return CVResult{}, err
		}
		scores = append(scores, stats.RSquared(net.Predict(xHold), yHold))
	}
	return CVResult{
		Params: p,
		MeanR2: stats.Mean(scores),
		StdR2:  stats.PopStdDev(scores),
	}, nil
}

func subset(x *mat.Dense, y []float64, rows []int) (*mat.Dense, []float64) {
	_, cols := x.Dims()
	xs := mat.NewDense(len(rows), cols, nil)
	ys := make([]float64, len(rows))
	buf := make([]float64, cols)
	for i, row := range rows {
		mat.Row(buf, row, x)
		xs.SetRow(i, buf)
		ys[i] = y[row]
	}
	return xs, ys
}
