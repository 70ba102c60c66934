package tables

import (
	"testing"

	"gotest.tools/assert"
)

func Test_New(t *testing.T) {
	m, err := New([]string{"a", "b"}, 2, []float64{1, 2, 3, 4})
	assert.NilError(t, err)
	assert.Assert(t, m.At(1, 0) == 3)
	assert.DeepEqual(t, m.Row(0), []float64{1, 2})

	_, err = New([]string{"a", "b"}, 2, []float64{1, 2, 3})
	assert.Assert(t, err != nil)
}

func Test_Select(t *testing.T) {
	m := LuckyNew([]string{"a", "b", "c"}, 2, []float64{1, 2, 3, 4, 5, 6})
	q, err := m.Select("c", "a")
	assert.NilError(t, err)
	assert.DeepEqual(t, q.Names, []string{"c", "a"})
	assert.DeepEqual(t, q.Data, []float64{3, 1, 6, 4})

	_, err = m.Select("a", "nosuch")
	assert.Assert(t, err != nil)
}

func Test_Drop(t *testing.T) {
	m := LuckyNew([]string{"a", "istrain", "b"}, 2, []float64{1, 1, 2, 3, 0, 4})
	q, err := m.Drop("istrain")
	assert.NilError(t, err)
	assert.DeepEqual(t, q.Names, []string{"a", "b"})
	assert.DeepEqual(t, q.Data, []float64{1, 2, 3, 4})

	_, err = m.Drop("nosuch")
	assert.Assert(t, err != nil)
}

func Test_Filter(t *testing.T) {
	m := LuckyNew([]string{"a", "flag"}, 3, []float64{1, 1, 2, 0, 3, 1})
	q := m.Filter(func(row []float64) bool { return row[1] == 1 })
	assert.Assert(t, q.Rows == 2)
	assert.DeepEqual(t, q.Data, []float64{1, 1, 3, 1})
}

func Test_SameSchema(t *testing.T) {
	m := LuckyNew([]string{"a", "b"}, 1, []float64{1, 2})
	q := LuckyNew([]string{"a", "b"}, 2, []float64{1, 2, 3, 4})
	r := LuckyNew([]string{"b", "a"}, 1, []float64{1, 2})
	assert.Assert(t, m.SameSchema(q))
	assert.Assert(t, !m.SameSchema(r))
}

func Test_Col(t *testing.T) {
	m := LuckyNew([]string{"a", "b"}, 2, []float64{1, 2, 3, 4})
	b, err := m.Col("b")
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []float64{2, 4})
}
