/*
Package boost implements two interchangeable multi-class gradient-boosting
variants sharing one training/prediction contract: an additive tree
ensemble and an additive linear ensemble. Both fit the multi-class
log-loss gradient for a fixed number of rounds with externally tuned
hyperparameters.
*/
package boost

import (
	"errors"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"

	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/model"
)

// ErrBadValue means the feature matrix contains a non-numeric entry.
var ErrBadValue = errors.New("non-numeric feature value")

func checkDataset(ds model.Dataset, classes int) error {
	if classes < 2 {
		return xerrors.Errorf("%v classes is not a classification problem", classes)
	}
	if err := checkSplit(ds.Train, classes); err != nil {
		return err
	}
	if ds.HasTest() {
		if err := dataset.CheckSchema(ds.Train.X, ds.Test.X); err != nil {
			return err
		}
		return checkSplit(ds.Test, classes)
	}
	return nil
}

func checkSplit(s dataset.Split, classes int) error {
	if s.X.Rows != len(s.Y) {
		return xerrors.Errorf("%v feature rows vs %v labels: %w", s.X.Rows, len(s.Y), dataset.ErrSchema)
	}
	for i, v := range s.Y {
		if v < 0 || v >= classes {
			return xerrors.Errorf("label %v at row %v not in [0,%v): %w", v, i, classes, dataset.ErrLabelRange)
		}
	}
	for i, v := range s.X.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return xerrors.Errorf("value %v in column `%v` row %v: %w",
				v, s.X.Names[i%s.X.Cols], i/s.X.Cols, ErrBadValue)
		}
	}
	return nil
}

// softmax fills probs from the flat raw score buffer, row by row.
func softmax(scores, probs []float64, classes int) {
	for i := 0; i < len(scores); i += classes {
		row := scores[i : i+classes]
		max := row[0]
		for _, v := range row[1:] {
			if v > max {
				max = v
			}
		}
		sum := 0.0
		for k, v := range row {
			e := math.Exp(v - max)
			probs[i+k] = e
			sum += e
		}
		for k := range row {
			probs[i+k] /= sum
		}
	}
}

// pushMetrics accounts every sample of a subset into the updater.
func pushMetrics(u model.MetricsUpdater, probs []float64, y []int, classes int) model.Scores {
	for i, label := range y {
		u.Update(probs[i*classes:(i+1)*classes], label)
	}
	return u.Complete()
}

// sample picks a fraction of [0,n) without replacement, sorted; the whole
// range when the fraction is 1 or more.
func sample(rng *rand.Rand, n int, fraction float64) []int {
	if fraction >= 1 {
		r := make([]int, n)
		for i := range r {
			r[i] = i
		}
		return r
	}
	k := int(fraction * float64(n))
	if k < 1 {
		k = 1
	}
	r := rng.Perm(n)[:k]
	sort.Ints(r)
	return r
}
