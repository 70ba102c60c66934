package model

import (
	"fmt"
	"reflect"

	"go-ml.dev/pkg/zorros/zlog"

	"github.com/go-ml-lab/harboost/fu"
	"github.com/go-ml-lab/harboost/tables"
)

/*
Training is the default implementation of unified training interface.

The iteration count is a fixed hyperparameter chosen externally: training
always runs all iterations, there is no early stopping and no checkpoint
selection. Per-iteration test metrics are diagnostic only.
*/
type Training struct {
	Iterations int         // rounds to train, always all of them
	Metrics    Metrics     // evaluating metrics
	Score      Score       // score function, NegLogLoss if nil
	Verbose    interface{} // print function func(string)
}

type training struct {
	Training
	done bool
}

type workout struct {
	iteration int
	training  *training
	perflog   [][2]Scores
	scorlog   []float64
}

func (t Training) Workout() Workout {
	t.Iterations = fu.Fnzi(t.Iterations, 1)
	if t.Score == nil {
		t.Score = NegLogLoss
	}
	return &workout{iteration: 0, training: &training{Training: t}}
}

func (w *workout) Iteration() int {
	return w.iteration
}

func (w *workout) TrainMetrics() MetricsUpdater {
	return w.training.Metrics.New(w.iteration, TrainSubset)
}

func (w *workout) TestMetrics() MetricsUpdater {
	return w.training.Metrics.New(w.iteration, TestSubset)
}

func (w *workout) report() *Report {
	report := &Report{}
	j := len(w.perflog) - 1
	report.History = w.history()
	report.TheBest = fu.Indmaxd(w.scorlog)
	report.Train = w.perflog[j][0]
	report.Test = w.perflog[j][1]
	report.Score = w.scorlog[j]
	return report
}

func (w *workout) history() *tables.Matrix {
	names := w.training.Metrics.Names()
	data := make([]float64, 0, len(w.perflog)*len(names))
	for i, p := range w.perflog {
		data = append(data, float64(i),
			p[0].Accuracy, p[0].LogLoss,
			p[1].Accuracy, p[1].LogLoss,
			w.scorlog[i])
	}
	return tables.LuckyNew(names, len(w.perflog), data)
}

func (w *workout) Complete(train, test Scores) (report *Report, done bool, err error) {
	maxiter := fu.Maxi(w.training.Iterations, 1)
	score := w.training.Score(train, test)
	w.scorlog = append(w.scorlog, score)
	w.perflog = append(w.perflog, [2]Scores{train, test})
	if w.iteration >= maxiter-1 {
		w.training.done = true
		done = true
		report = w.report()
	}
	if w.training.Verbose != nil {
		w.Verbose(fmt.Sprintf(
			"[%3d] loss: %.5f/%.5f, error: %.5f/%.5f, score: %.5f",
			w.iteration, train.LogLoss, test.LogLoss, train.Error(), test.Error(), score))
	}
	return
}

func (w *workout) Verbose(s string) {
	if w.training.Verbose != nil {
		vf := reflect.ValueOf(w.training.Verbose)
		vf.Call([]reflect.Value{reflect.ValueOf(s)})
	}
}

func (w *workout) Next() Workout {
	if w.training.done {
		zlog.Warning("training is already done")
		return nil
	}
	return &workout{
		iteration: w.iteration + 1,
		training:  w.training,
		scorlog:   w.scorlog,
		perflog:   w.perflog,
	}
}
