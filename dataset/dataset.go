/*
Package dataset loads prepared HAR feature/label artifacts and validates
them before modeling. Cleaning and feature extraction happen upstream;
here a malformed input is fatal, never repaired.
*/
package dataset

import (
	"errors"

	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"

	"github.com/go-ml-lab/harboost/tables"
)

var (
	// ErrSchema means the train and test partitions disagree on columns,
	// or a feature-name lookup entry is missing.
	ErrSchema = errors.New("input schema mismatch")
	// ErrLabelRange means a label value falls outside the expected class domain.
	ErrLabelRange = errors.New("label out of range")
)

/*
Split is one partition of the dataset: a feature matrix and the aligned
zero-based label vector.
*/
type Split struct {
	X *tables.Matrix
	Y []int
}

/*
Pair binds features to labels, failing when row counts disagree.
*/
func Pair(x *tables.Matrix, y []int) (Split, error) {
	if x.Rows != len(y) {
		return Split{}, xerrors.Errorf("%v features rows vs %v labels: %w", x.Rows, len(y), ErrSchema)
	}
	return Split{X: x, Y: y}, nil
}

/*
CheckSchema verifies the two partitions carry identical columns in
identical order.
*/
func CheckSchema(train, test *tables.Matrix) error {
	if train.SameSchema(test) {
		return nil
	}
	if train.Cols != test.Cols {
		return xerrors.Errorf("train has %v columns, test has %v: %w", train.Cols, test.Cols, ErrSchema)
	}
	for j := range train.Names {
		if train.Names[j] != test.Names[j] {
			return xerrors.Errorf("column %v is `%v` in train but `%v` in test: %w",
				j, train.Names[j], test.Names[j], ErrSchema)
		}
	}
	return xerrors.Errorf("train and test schemas differ: %w", ErrSchema)
}

/*
SplitIndicator partitions a matrix by a boolean is-train column, dropping
the indicator from both results. A non-zero indicator selects train.
*/
func SplitIndicator(m *tables.Matrix, col string) (train, test *tables.Matrix, err error) {
	q := m.Index(col)
	if q < 0 {
		return nil, nil, xerrors.Errorf("no indicator column `%v`: %w", col, ErrSchema)
	}
	if train, err = m.Filter(func(row []float64) bool { return row[q] != 0 }).Drop(col); err != nil {
		return nil, nil, err
	}
	if test, err = m.Filter(func(row []float64) bool { return row[q] == 0 }).Drop(col); err != nil {
		return nil, nil, err
	}
	return
}

/*
ToLabels converts a numeric label column into integers, rejecting any
non-integral value instead of truncating it.
*/
func ToLabels(col []float64) ([]int, error) {
	y := make([]int, len(col))
	for i, x := range col {
		y[i] = int(x)
		if float64(y[i]) != x {
			return nil, zorros.Errorf("label `%v` at row %v is not an integer", x, i)
		}
	}
	return y, nil
}

/*
Remap re-encodes labels from the source base-first domain [base,base+classes)
into the contiguous zero-based domain the boosters require. The re-encoding
is an explicit integer offset, a bijection Restore inverts exactly.
*/
func Remap(y []int, base, classes int) ([]int, error) {
	r := make([]int, len(y))
	for i, v := range y {
		if v < base || v >= base+classes {
			return nil, xerrors.Errorf("label %v at row %v not in [%v,%v): %w", v, i, base, base+classes, ErrLabelRange)
		}
		r[i] = v - base
	}
	return r, nil
}

/*
Restore maps zero-based labels back into the source base-first domain.
*/
func Restore(y []int, base int) []int {
	r := make([]int, len(y))
	for i, v := range y {
		r[i] = v + base
	}
	return r
}
