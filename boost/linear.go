package boost

import (
	"math"
	"reflect"

	"golang.org/x/xerrors"

	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/model"
	"github.com/go-ml-lab/harboost/tables"
)

/*
LinearBooster is the additive linear ensemble variant: one linear score
per class, updated every round by a gradient step with L1 and L2
regularization.
*/
type LinearBooster struct {
	Classes int
	Rounds  int
	Eta     float64 // learning rate
	Lambda  float64 // L2 regularization
	Alpha   float64 // L1 regularization
}

/*
NewLinearBooster binds externally tuned hyperparameters over gblinear-alike
defaults. Unknown parameter names are fatal.
*/
func NewLinearBooster(classes, rounds int, p model.Params) LinearBooster {
	b := LinearBooster{Classes: classes, Rounds: rounds, Eta: 0.5}
	p.Apply(map[string]reflect.Value{
		"eta":    reflect.ValueOf(&b.Eta),
		"lambda": reflect.ValueOf(&b.Lambda),
		"alpha":  reflect.ValueOf(&b.Alpha),
	})
	return b
}

/*
Feed binds the booster to a dataset producing a fat model to train
*/
func (b LinearBooster) Feed(ds model.Dataset) model.FatModel {
	return func(w model.Workout) (model.Predictor, *model.Report, error) {
		if err := checkDataset(ds, b.Classes); err != nil {
			return nil, nil, err
		}
		x, y, c := ds.Train.X, ds.Train.Y, b.Classes
		m := &LinearModel{
			classes:  c,
			features: x.Names,
			weights:  make([]float64, x.Cols*c),
			bias:     make([]float64, c),
		}
		probs := make([]float64, x.Rows*c)
		grad := make([]float64, x.Cols*c)
		gbias := make([]float64, c)
		n := float64(x.Rows)
		for {
			m.scores(x, probs)
			softmax(probs, probs, c)
			for j := range grad {
				grad[j] = b.Lambda * m.weights[j]
			}
			for k := range gbias {
				gbias[k] = 0
			}
			for i := 0; i < x.Rows; i++ {
				row := x.Row(i)
				for k := 0; k < c; k++ {
					d := probs[i*c+k]
					if y[i] == k {
						d -= 1
					}
					d /= n
					gbias[k] += d
					for j, v := range row {
						grad[j*c+k] += v * d
					}
				}
			}
			for j := range m.weights {
				m.weights[j] = shrink(m.weights[j]-b.Eta*grad[j], b.Eta*b.Alpha)
			}
			for k := range m.bias {
				m.bias[k] -= b.Eta * gbias[k]
			}

			m.scores(x, probs)
			softmax(probs, probs, c)
			train := pushMetrics(w.TrainMetrics(), probs, y, c)
			test := train
			if ds.HasTest() {
				tp := make([]float64, ds.Test.X.Rows*c)
				m.scores(ds.Test.X, tp)
				softmax(tp, tp, c)
				test = pushMetrics(w.TestMetrics(), tp, ds.Test.Y, c)
			}
			report, done, err := w.Complete(train, test)
			if err != nil || done {
				return m, report, err
			}
			w = w.Next()
		}
	}
}

// shrink is the L1 soft-threshold operator.
func shrink(u, t float64) float64 {
	if u > t {
		return u - t
	}
	if u < -t {
		return u + t
	}
	return 0
}

/*
LinearModel is a trained additive linear ensemble. Immutable.
*/
type LinearModel struct {
	classes  int
	features []string
	weights  []float64 // features x classes
	bias     []float64
}

func (m *LinearModel) Classes() int { return m.classes }

func (m *LinearModel) Features() []string { return m.features }

func (m *LinearModel) scores(x *tables.Matrix, out []float64) {
	c := m.classes
	for i := 0; i < x.Rows; i++ {
		row := x.Row(i)
		for k := 0; k < c; k++ {
			s := m.bias[k]
			for j, v := range row {
				s += v * m.weights[j*c+k]
			}
			out[i*c+k] = s
		}
	}
}

/*
Predict returns the flat row-major probability buffer of length x.Rows*C
*/
func (m *LinearModel) Predict(x *tables.Matrix) ([]float64, error) {
	if x.Cols != len(m.features) {
		return nil, xerrors.Errorf("model wants %v features, matrix has %v columns: %w",
			len(m.features), x.Cols, dataset.ErrSchema)
	}
	probs := make([]float64, x.Rows*m.classes)
	m.scores(x, probs)
	softmax(probs, probs, m.classes)
	return probs, nil
}

/*
WeightImportance ranks features by the summed magnitude of their class
weights. The split-gain ranking does not exist for the linear variant.
*/
func (m *LinearModel) WeightImportance() []Importance {
	r := make([]Importance, 0, len(m.features))
	for j, name := range m.features {
		g := 0.0
		for k := 0; k < m.classes; k++ {
			g += math.Abs(m.weights[j*m.classes+k])
		}
		if g > 0 {
			r = append(r, Importance{Name: name, Gain: g})
		}
	}
	sortImportance(r)
	return r
}
