package model

import (
	"math"

	"github.com/go-ml-lab/harboost/fu"
)

// Eps is the probability floor for log-loss, consistent with common
// log-loss implementations.
const Eps = 1e-15

const (
	TrainSubset = "train"
	TestSubset  = "test"
)

/*
Scores is a single evaluation of a classifier over one data subset.
*/
type Scores struct {
	Accuracy float64 // fraction of samples with the true class predicted
	LogLoss  float64 // mean negative log-probability of the true class
}

// Error is the misclassification rate.
func (s Scores) Error() float64 { return 1 - s.Accuracy }

/*
MetricsUpdater accumulates per-sample predictions into subset metrics
*/
type MetricsUpdater interface {
	// Update accounts one sample: its C predicted class probabilities
	// and the true zero-based label
	Update(probs []float64, label int)
	Complete() Scores
}

/*
Metrics is a factory of per-iteration per-subset metric updaters
*/
type Metrics interface {
	New(iteration int, subset string) MetricsUpdater
	Names() []string
}

/*
Score maps train/test metrics of an iteration into a single value,
greater is better
*/
type Score func(train, test Scores) float64

// NegLogLoss scores an iteration by the negated test log-loss.
func NegLogLoss(train, test Scores) float64 { return -test.LogLoss }

/*
Classification is the Metrics implementation for multi-class classifiers:
accuracy and multi-class log-loss.
*/
type Classification struct {
	Classes int
}

func (c Classification) New(iteration int, subset string) MetricsUpdater {
	return &classificationUpdater{classes: c.Classes}
}

func (c Classification) Names() []string {
	return []string{"iteration", "train_accuracy", "train_logloss", "test_accuracy", "test_logloss", "score"}
}

type classificationUpdater struct {
	classes int
	count   int
	hits    int
	loss    float64
}

func (u *classificationUpdater) Update(probs []float64, label int) {
	if fu.Indmax(probs) == label {
		u.hits++
	}
	u.loss -= math.Log(fu.Clamp(probs[label], Eps, 1-Eps))
	u.count++
}

func (u *classificationUpdater) Complete() Scores {
	if u.count == 0 {
		return Scores{}
	}
	return Scores{
		Accuracy: float64(u.hits) / float64(u.count),
		LogLoss:  u.loss / float64(u.count),
	}
}
