package pca

import (
	"math"
	"testing"

	"gotest.tools/assert"

	"github.com/go-ml-lab/harboost/tables"
)

func line(t *testing.T) *tables.Matrix {
	t.Helper()
	// points along y = 2x with a small orthogonal wiggle
	data := []float64{
		0, 0.1, 1, 1.9, 2, 4.1, 3, 5.9, 4, 8.1, 5, 9.9,
	}
	return tables.LuckyNew([]string{"f0", "f1"}, 6, data)
}

func Test_Deterministic(t *testing.T) {
	a, err := Project(line(t), 2)
	assert.NilError(t, err)
	b, err := Project(line(t), 2)
	assert.NilError(t, err)
	assert.DeepEqual(t, a.Coords.Data, b.Coords.Data)
	assert.DeepEqual(t, a.Explained, b.Explained)
}

func Test_ExplainedOrder(t *testing.T) {
	p, err := Project(line(t), 2)
	assert.NilError(t, err)
	assert.Assert(t, len(p.Explained) == 2)
	assert.Assert(t, p.Explained[0] >= p.Explained[1])
	// nearly collinear data puts almost all variance on PC1
	assert.Assert(t, p.Explained[0] > 0.99)
	sum := p.Explained[0] + p.Explained[1]
	assert.Assert(t, math.Abs(sum-1) < 1e-9)
}

func Test_CoordsCentered(t *testing.T) {
	p, err := Project(line(t), 1)
	assert.NilError(t, err)
	assert.DeepEqual(t, p.Coords.Names, []string{"PC1"})
	mean := 0.0
	for i := 0; i < p.Coords.Rows; i++ {
		mean += p.Coords.At(i, 0)
	}
	assert.Assert(t, math.Abs(mean/float64(p.Coords.Rows)) < 1e-9)
}

func Test_ZeroVarianceColumn(t *testing.T) {
	m := tables.LuckyNew([]string{"f0", "const"}, 4, []float64{
		1, 7, 2, 7, 3, 7, 4, 7,
	})
	p, err := Project(m, 2)
	assert.NilError(t, err)
	// the constant direction contributes a degenerate component
	assert.Assert(t, p.Explained[1] < 1e-12)
}

func Test_KClamped(t *testing.T) {
	p, err := Project(line(t), 10)
	assert.NilError(t, err)
	assert.Assert(t, p.Coords.Cols == 2)
}
