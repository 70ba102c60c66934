package model

import (
	"io"

	"go-ml.dev/pkg/zorros"

	"github.com/go-ml-lab/harboost/tables"
)

/*
HungryModel is an ML algorithm grows from a data to predict something.
Needs to be fattened by Feed method to fit.
*/
type HungryModel interface {
	Feed(Dataset) FatModel
}

/*
Report is an ML training report
*/
type Report struct {
	History     *tables.Matrix // all iterations history
	TheBest     int            // the iteration with the best score (informational only)
	Test, Train Scores         // the final iteration metrics
	Score       float64        // the final iteration score
}

/*
Workout is a training iteration abstraction
*/
type Workout interface {
	Iteration() int
	TrainMetrics() MetricsUpdater
	TestMetrics() MetricsUpdater
	Complete(train, test Scores) (*Report, bool, error)
	Next() Workout
	Verbose(string)
}

/*
UnifiedTraining is an interface allowing to write any logging/staging backend for ML training
*/
type UnifiedTraining interface {
	// Workout returns the first iteration workout
	Workout() Workout
}

/*
Predictor is a trained multi-class probability model. It's immutable once
trained and consumed only by the evaluator.
*/
type Predictor interface {
	// Classes is the class count C of the model
	Classes() int
	// Features model uses when maps features,
	// the same as the column names of the training matrix
	Features() []string
	// Predict returns the flat row-major probability buffer of length
	// x.Rows*C; every row of C values sums to 1
	Predict(x *tables.Matrix) ([]float64, error)
}

/*
FatModel is fattened model (a training function of model instance bounded to a dataset)
*/
type FatModel func(workout Workout) (Predictor, *Report, error)

/*
Train a fattened (Fat) model
*/
func (f FatModel) Train(training UnifiedTraining) (Predictor, *Report, error) {
	w := training.Workout()
	if c, ok := w.(io.Closer); ok {
		defer c.Close()
	}
	return f(w)
}

/*
LuckyTrain trains fattened (Fat) model and trows any occurred errors as a panic
*/
func (f FatModel) LuckyTrain(training UnifiedTraining) (Predictor, *Report) {
	p, m, err := f.Train(training)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return p, m
}
