package boost

import (
	"reflect"
	"sort"

	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"

	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/model"
	"github.com/go-ml-lab/harboost/tables"
)

/*
TreeBooster is the additive tree ensemble variant: every round fits one
shallow regression tree per class to the multi-class log-loss gradient of
the ensemble so far.
*/
type TreeBooster struct {
	Classes        int     // class count C
	Rounds         int     // boosting rounds, fixed externally
	Eta            float64 // shrinkage per round
	MaxDepth       int     // maximum tree depth
	MinChildWeight float64 // minimum hessian mass per leaf
	Subsample      float64 // row subsampling fraction per round
	Colsample      float64 // feature subsampling fraction per tree
	Lambda         float64 // L2 regularization on leaf weights
	Gamma          float64 // minimum split gain
	Seed           int64
}

/*
NewTreeBooster binds externally tuned hyperparameters over xgboost-alike
defaults. Unknown parameter names are fatal.
*/
func NewTreeBooster(classes, rounds int, p model.Params) TreeBooster {
	b := TreeBooster{
		Classes:        classes,
		Rounds:         rounds,
		Eta:            0.3,
		MaxDepth:       6,
		MinChildWeight: 1,
		Subsample:      1,
		Colsample:      1,
		Lambda:         1,
	}
	p.Apply(map[string]reflect.Value{
		"eta":              reflect.ValueOf(&b.Eta),
		"max_depth":        reflect.ValueOf(&b.MaxDepth),
		"min_child_weight": reflect.ValueOf(&b.MinChildWeight),
		"subsample":        reflect.ValueOf(&b.Subsample),
		"colsample_bytree": reflect.ValueOf(&b.Colsample),
		"lambda":           reflect.ValueOf(&b.Lambda),
		"gamma":            reflect.ValueOf(&b.Gamma),
		"seed":             reflect.ValueOf(&b.Seed),
	})
	return b
}

/*
Feed binds the booster to a dataset producing a fat model to train
*/
func (b TreeBooster) Feed(ds model.Dataset) model.FatModel {
	return func(w model.Workout) (model.Predictor, *model.Report, error) {
		if err := checkDataset(ds, b.Classes); err != nil {
			return nil, nil, err
		}
		x, y, c := ds.Train.X, ds.Train.Y, b.Classes
		rng := rand.New(rand.NewSource(uint64(b.Seed)))
		m := &TreeModel{
			classes:  c,
			eta:      b.Eta,
			features: x.Names,
			gain:     make([]float64, x.Cols),
		}
		builder := &treeBuilder{
			x:              x,
			maxDepth:       b.MaxDepth,
			minChildWeight: b.MinChildWeight,
			lambda:         b.Lambda,
			gamma:          b.Gamma,
			gain:           m.gain,
		}
		scores := make([]float64, x.Rows*c)
		probs := make([]float64, x.Rows*c)
		grad := make([]float64, x.Rows)
		hess := make([]float64, x.Rows)
		var testScores, testProbs []float64
		if ds.HasTest() {
			testScores = make([]float64, ds.Test.X.Rows*c)
			testProbs = make([]float64, ds.Test.X.Rows*c)
		}
		for {
			softmax(scores, probs, c)
			rows := sample(rng, x.Rows, b.Subsample)
			round := make([]*treeNode, c)
			for k := 0; k < c; k++ {
				for _, i := range rows {
					p := probs[i*c+k]
					grad[i] = p
					if y[i] == k {
						grad[i] = p - 1
					}
					hess[i] = p * (1 - p)
				}
				builder.grad, builder.hess = grad, hess
				tree := builder.build(rows, sample(rng, x.Cols, b.Colsample), b.MaxDepth)
				round[k] = tree
				for i := 0; i < x.Rows; i++ {
					scores[i*c+k] += b.Eta * tree.predict(x.Row(i))
				}
				if ds.HasTest() {
					for i := 0; i < ds.Test.X.Rows; i++ {
						testScores[i*c+k] += b.Eta * tree.predict(ds.Test.X.Row(i))
					}
				}
			}
			m.trees = append(m.trees, round)

			softmax(scores, probs, c)
			train := pushMetrics(w.TrainMetrics(), probs, y, c)
			test := train
			if ds.HasTest() {
				softmax(testScores, testProbs, c)
				test = pushMetrics(w.TestMetrics(), testProbs, ds.Test.Y, c)
			}
			report, done, err := w.Complete(train, test)
			if err != nil || done {
				return m, report, err
			}
			w = w.Next()
		}
	}
}

/*
TreeModel is a trained additive tree ensemble. Immutable.
*/
type TreeModel struct {
	classes  int
	eta      float64
	features []string
	trees    [][]*treeNode // rounds x classes
	gain     []float64     // split gain accumulated per feature
}

func (m *TreeModel) Classes() int { return m.classes }

func (m *TreeModel) Features() []string { return m.features }

/*
Predict returns the flat row-major probability buffer of length x.Rows*C
*/
func (m *TreeModel) Predict(x *tables.Matrix) ([]float64, error) {
	if x.Cols != len(m.features) {
		return nil, xerrors.Errorf("model wants %v features, matrix has %v columns: %w",
			len(m.features), x.Cols, dataset.ErrSchema)
	}
	scores := make([]float64, x.Rows*m.classes)
	for i := 0; i < x.Rows; i++ {
		row := x.Row(i)
		for _, round := range m.trees {
			for k, tree := range round {
				scores[i*m.classes+k] += m.eta * tree.predict(row)
			}
		}
	}
	probs := make([]float64, len(scores))
	softmax(scores, probs, m.classes)
	return probs, nil
}

/*
Importance is a feature ranked by its total split-gain contribution
*/
type Importance struct {
	Name string
	Gain float64
}

/*
GainImportance ranks features by accumulated split gain, descending,
dropping features no tree ever split on.
*/
func (m *TreeModel) GainImportance() []Importance {
	r := make([]Importance, 0, len(m.gain))
	for j, g := range m.gain {
		if g > 0 {
			r = append(r, Importance{Name: m.features[j], Gain: g})
		}
	}
	sortImportance(r)
	return r
}

func sortImportance(r []Importance) {
	sort.Slice(r, func(a, b int) bool {
		if r[a].Gain == r[b].Gain {
			return r[a].Name < r[b].Name
		}
		return r[a].Gain > r[b].Gain
	})
}
