package boost

import (
	"math"
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"

	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/model"
	"github.com/go-ml-lab/harboost/tables"
)

// three well-separated clusters in two features
func clusters(t *testing.T) model.Dataset {
	t.Helper()
	centers := [][2]float64{{0, 0}, {6, 0}, {0, 6}}
	offsets := []float64{-0.4, -0.2, 0, 0.2, 0.4}
	var data []float64
	var y []int
	for k, c := range centers {
		for _, dx := range offsets {
			for _, dy := range offsets {
				data = append(data, c[0]+dx, c[1]+dy)
				y = append(y, k)
			}
		}
	}
	x := tables.LuckyNew([]string{"f0", "f1"}, len(y), data)
	train, err := dataset.Pair(x, y)
	assert.NilError(t, err)
	return model.Dataset{Train: train, Test: train, Classes: 3}
}

func training(rounds int) model.Training {
	return model.Training{Iterations: rounds, Metrics: model.Classification{Classes: 3}}
}

func Test_TreeBooster(t *testing.T) {
	ds := clusters(t)
	b := NewTreeBooster(3, 10, model.Params{"eta": 0.5, "max_depth": 3, "lambda": 1})
	pred, report, err := b.Feed(ds).Train(training(10))
	assert.NilError(t, err)
	assert.Assert(t, report.History.Rows == 10) // fixed rounds, no early stop
	assert.Assert(t, report.Train.Accuracy == 1.0)

	probs, err := pred.Predict(ds.Train.X)
	assert.NilError(t, err)
	assert.Assert(t, len(probs) == ds.Train.X.Rows*3)
	for i := 0; i < ds.Train.X.Rows; i++ {
		sum := 0.0
		for k := 0; k < 3; k++ {
			sum += probs[i*3+k]
		}
		assert.Assert(t, math.Abs(sum-1) < 1e-6)
	}
}

func Test_TreeBoosterImportance(t *testing.T) {
	ds := clusters(t)
	b := NewTreeBooster(3, 5, model.Params{"eta": 0.5, "max_depth": 3})
	pred, _, err := b.Feed(ds).Train(training(5))
	assert.NilError(t, err)
	imp := pred.(*TreeModel).GainImportance()
	assert.Assert(t, len(imp) > 0 && len(imp) <= 2)
	for i := 1; i < len(imp); i++ {
		assert.Assert(t, imp[i-1].Gain >= imp[i].Gain)
	}
}

func Test_TreeBoosterDeterminism(t *testing.T) {
	ds := clusters(t)
	p := model.Params{"eta": 0.3, "max_depth": 3, "subsample": 0.8, "colsample_bytree": 0.5, "seed": 7}
	a, _, err := NewTreeBooster(3, 5, p).Feed(ds).Train(training(5))
	assert.NilError(t, err)
	b, _, err := NewTreeBooster(3, 5, p).Feed(ds).Train(training(5))
	assert.NilError(t, err)
	pa, err := a.Predict(ds.Train.X)
	assert.NilError(t, err)
	pb, err := b.Predict(ds.Train.X)
	assert.NilError(t, err)
	assert.DeepEqual(t, pa, pb)
}

func Test_LinearBooster(t *testing.T) {
	ds := clusters(t)
	b := NewLinearBooster(3, 50, model.Params{"eta": 0.3, "lambda": 0.001, "alpha": 0.0001})
	pred, report, err := b.Feed(ds).Train(training(50))
	assert.NilError(t, err)
	assert.Assert(t, report.History.Rows == 50)
	assert.Assert(t, report.Train.Accuracy > 0.95)

	probs, err := pred.Predict(ds.Train.X)
	assert.NilError(t, err)
	for i := 0; i < ds.Train.X.Rows; i++ {
		sum := 0.0
		for k := 0; k < 3; k++ {
			sum += probs[i*3+k]
		}
		assert.Assert(t, math.Abs(sum-1) < 1e-6)
	}
	imp := pred.(*LinearModel).WeightImportance()
	assert.Assert(t, len(imp) > 0)
}

func Test_LabelRange(t *testing.T) {
	x := tables.LuckyNew([]string{"f0"}, 2, []float64{1, 2})
	ds := model.Dataset{Train: dataset.Split{X: x, Y: []int{0, 3}}, Classes: 3}
	_, _, err := NewTreeBooster(3, 2, nil).Feed(ds).Train(training(2))
	assert.Assert(t, xerrors.Is(err, dataset.ErrLabelRange))
	_, _, err = NewLinearBooster(3, 2, nil).Feed(ds).Train(training(2))
	assert.Assert(t, xerrors.Is(err, dataset.ErrLabelRange))
}

func Test_BadValue(t *testing.T) {
	x := tables.LuckyNew([]string{"f0"}, 2, []float64{1, math.NaN()})
	ds := model.Dataset{Train: dataset.Split{X: x, Y: []int{0, 1}}, Classes: 2}
	_, _, err := NewTreeBooster(2, 2, nil).Feed(ds).Train(model.Training{
		Iterations: 2, Metrics: model.Classification{Classes: 2}})
	assert.Assert(t, xerrors.Is(err, ErrBadValue))
}

func Test_PredictSchema(t *testing.T) {
	ds := clusters(t)
	pred, _, err := NewTreeBooster(3, 2, nil).Feed(ds).Train(training(2))
	assert.NilError(t, err)
	wide := tables.LuckyNew([]string{"f0", "f1", "f2"}, 1, []float64{1, 2, 3})
	_, err = pred.Predict(wide)
	assert.Assert(t, xerrors.Is(err, dataset.ErrSchema))
}
