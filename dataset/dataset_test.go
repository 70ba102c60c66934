package dataset

import (
	"strings"
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"

	"github.com/go-ml-lab/harboost/tables"
)

func Test_RemapBijection(t *testing.T) {
	y := []int{1, 6, 3, 2, 5, 4, 1, 1, 6}
	z, err := Remap(y, 1, 6)
	assert.NilError(t, err)
	assert.DeepEqual(t, z, []int{0, 5, 2, 1, 4, 3, 0, 0, 5})
	assert.DeepEqual(t, Restore(z, 1), y)
}

func Test_RemapRange(t *testing.T) {
	_, err := Remap([]int{1, 7}, 1, 6)
	assert.Assert(t, xerrors.Is(err, ErrLabelRange))
	_, err = Remap([]int{0, 3}, 1, 6)
	assert.Assert(t, xerrors.Is(err, ErrLabelRange))
}

func Test_ToLabels(t *testing.T) {
	y, err := ToLabels([]float64{1, 6, 3})
	assert.NilError(t, err)
	assert.DeepEqual(t, y, []int{1, 6, 3})

	// a fractional activity code must fail loudly, never truncate into
	// a value the range check would accept
	_, err = ToLabels([]float64{1, 1.5, 3})
	assert.Assert(t, err != nil)
}

func Test_CheckSchema(t *testing.T) {
	a := tables.LuckyNew([]string{"f0", "f1"}, 1, []float64{1, 2})
	b := tables.LuckyNew([]string{"f0", "f1"}, 2, []float64{1, 2, 3, 4})
	c := tables.LuckyNew([]string{"f1", "f0"}, 1, []float64{1, 2})
	d := tables.LuckyNew([]string{"f0"}, 1, []float64{1})
	assert.NilError(t, CheckSchema(a, b))
	assert.Assert(t, xerrors.Is(CheckSchema(a, c), ErrSchema))
	assert.Assert(t, xerrors.Is(CheckSchema(a, d), ErrSchema))
}

func Test_Pair(t *testing.T) {
	x := tables.LuckyNew([]string{"f0"}, 2, []float64{1, 2})
	_, err := Pair(x, []int{0})
	assert.Assert(t, xerrors.Is(err, ErrSchema))
	s, err := Pair(x, []int{0, 1})
	assert.NilError(t, err)
	assert.Assert(t, s.X.Rows == 2)
}

func Test_SplitIndicator(t *testing.T) {
	m := tables.LuckyNew([]string{"f0", "istrain"}, 3, []float64{1, 1, 2, 0, 3, 1})
	train, test, err := SplitIndicator(m, "istrain")
	assert.NilError(t, err)
	assert.DeepEqual(t, train.Names, []string{"f0"})
	assert.DeepEqual(t, train.Data, []float64{1, 3})
	assert.DeepEqual(t, test.Data, []float64{2})

	_, _, err = SplitIndicator(m, "nosuch")
	assert.Assert(t, xerrors.Is(err, ErrSchema))
}

func Test_FromCSV(t *testing.T) {
	m, err := FromCSV(strings.NewReader("f0,f1\n1.5,2\n3,4\n"))
	assert.NilError(t, err)
	assert.DeepEqual(t, m.Names, []string{"f0", "f1"})
	assert.DeepEqual(t, m.Data, []float64{1.5, 2, 3, 4})
}

func Test_FromCSVNonNumeric(t *testing.T) {
	_, err := FromCSV(strings.NewReader("f0,f1\n1.5,oops\n3,4\n"))
	assert.Assert(t, err != nil)
}

func Test_ReadNames(t *testing.T) {
	nt, err := ReadNames(strings.NewReader("id,name\nf0,tBodyAcc-mean()-X\nf1,tBodyAcc-mean()-Y\n"))
	assert.NilError(t, err)
	r, err := nt.Resolve([]string{"f1", "f0"})
	assert.NilError(t, err)
	assert.DeepEqual(t, r, []string{"tBodyAcc-mean()-Y", "tBodyAcc-mean()-X"})

	_, err = nt.Resolve([]string{"f2"})
	assert.Assert(t, xerrors.Is(err, ErrSchema))
}
