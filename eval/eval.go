/*
Package eval applies a trained classifier to the test split and derives
the reported quality figures: accuracy, multi-class log-loss, and the
confusion matrix. Labels go in zero-based and come out in the original
1-based activity encoding.
*/
package eval

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/xerrors"

	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/fu"
	"github.com/go-ml-lab/harboost/model"
	"github.com/go-ml-lab/harboost/tables"
)

// ErrShape means the flat probability buffer does not agree with the
// expected samples x classes layout.
var ErrShape = errors.New("prediction shape mismatch")

// LabelBase is the source HAR activity encoding: classes are 1-based.
const LabelBase = 1

/*
Result is the evaluation of one trained model over one test split
*/
type Result struct {
	Probabilities *tables.Matrix // samples x classes, rows sum to 1
	Predicted     []int          // predicted labels, restored to the source 1-based encoding
	Accuracy      float64
	LogLoss       float64
	Confusion     *Confusion
}

/*
Reshape turns the flat row-major probability buffer into a samples x
classes table, failing on any layout disagreement.
*/
func Reshape(buf []float64, rows, classes int) (*tables.Matrix, error) {
	if classes < 1 || len(buf)%classes != 0 {
		return nil, xerrors.Errorf("buffer of %v values is not divisible by %v classes: %w",
			len(buf), classes, ErrShape)
	}
	if len(buf) != rows*classes {
		return nil, xerrors.Errorf("buffer holds %v rows, test split has %v: %w",
			len(buf)/classes, rows, ErrShape)
	}
	names := make([]string, classes)
	for k := range names {
		names[k] = "class" + strconv.Itoa(k+LabelBase)
	}
	return tables.New(names, rows, buf)
}

/*
Evaluate runs the model over the test features and scores it against the
true zero-based labels.
*/
func Evaluate(m model.Predictor, x *tables.Matrix, y []int) (*Result, error) {
	if x.Rows != len(y) {
		return nil, xerrors.Errorf("%v feature rows vs %v labels: %w", x.Rows, len(y), ErrShape)
	}
	buf, err := m.Predict(x)
	if err != nil {
		return nil, err
	}
	probs, err := Reshape(buf, x.Rows, m.Classes())
	if err != nil {
		return nil, err
	}
	return Score(probs, y)
}

/*
Score derives predicted labels, accuracy, log-loss and the confusion
matrix from a probability table and true zero-based labels.
*/
func Score(probs *tables.Matrix, y []int) (*Result, error) {
	if probs.Rows != len(y) {
		return nil, xerrors.Errorf("%v probability rows vs %v labels: %w", probs.Rows, len(y), ErrShape)
	}
	c := probs.Cols
	onehot := OneHot(y, c)
	predicted := make([]int, probs.Rows)
	confusion := NewConfusion(c)
	hits := 0
	loss := 0.0
	for i := 0; i < probs.Rows; i++ {
		row := probs.Row(i)
		k := fu.Indmax(row) // ties break to the lowest class index
		predicted[i] = k
		confusion.Add(y[i], k)
		if k == y[i] {
			hits++
		}
		for q, v := range onehot.Row(i) {
			if v != 0 {
				loss -= v * math.Log(fu.Clamp(row[q], model.Eps, 1-model.Eps))
			}
		}
	}
	return &Result{
		Probabilities: probs,
		Predicted:     dataset.Restore(predicted, LabelBase),
		Accuracy:      float64(hits) / float64(probs.Rows),
		LogLoss:       loss / float64(probs.Rows),
		Confusion:     confusion,
	}, nil
}

/*
OneHot expands zero-based labels into a samples x classes indicator table
*/
func OneHot(y []int, classes int) *tables.Matrix {
	names := make([]string, classes)
	for k := range names {
		names[k] = "class" + strconv.Itoa(k+LabelBase)
	}
	data := make([]float64, len(y)*classes)
	for i, v := range y {
		data[i*classes+v] = 1
	}
	return tables.LuckyNew(names, len(y), data)
}

/*
Confusion is a classes x classes count table, true class by row,
predicted class by column.
*/
type Confusion struct {
	Classes int
	Counts  []int
}

func NewConfusion(classes int) *Confusion {
	return &Confusion{Classes: classes, Counts: make([]int, classes*classes)}
}

// Add accounts one sample by its true and predicted zero-based labels.
func (c *Confusion) Add(actual, predicted int) {
	c.Counts[actual*c.Classes+predicted]++
}

func (c *Confusion) At(actual, predicted int) int {
	return c.Counts[actual*c.Classes+predicted]
}

/*
Accuracy is the diagonal sum over the total count; it equals the
directly computed accuracy by construction.
*/
func (c *Confusion) Accuracy() float64 {
	total, diag := 0, 0
	for i := 0; i < c.Classes; i++ {
		for j := 0; j < c.Classes; j++ {
			if i == j {
				diag += c.At(i, j)
			}
			total += c.At(i, j)
		}
	}
	if total == 0 {
		return 0
	}
	return float64(diag) / float64(total)
}

/*
Render writes the confusion matrix labeled by class names; when names is
nil the 1-based class numbers are used.
*/
func (c *Confusion) Render(names []string) string {
	if names == nil {
		names = make([]string, c.Classes)
		for k := range names {
			names[k] = strconv.Itoa(k + LabelBase)
		}
	}
	var sb strings.Builder
	w := tablewriter.NewWriter(&sb)
	w.SetHeader(append([]string{"actual \\ predicted"}, names...))
	for i := 0; i < c.Classes; i++ {
		row := make([]string, c.Classes+1)
		row[0] = names[i]
		for j := 0; j < c.Classes; j++ {
			row[j+1] = strconv.Itoa(c.At(i, j))
		}
		w.Append(row)
	}
	w.Render()
	return sb.String()
}

func (c *Confusion) String() string {
	return c.Render(nil)
}
