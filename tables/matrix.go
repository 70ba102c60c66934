package tables

import (
	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/mat"
)

/*
Matrix is a dense row-major table of float64 values with ordered, named
columns. Every pipeline stage produces a new Matrix and never mutates
one it received.
*/
type Matrix struct {
	Names []string
	Data  []float64
	Rows  int
	Cols  int
}

/*
New creates a Matrix over the given row-major data.
*/
func New(names []string, rows int, data []float64) (*Matrix, error) {
	if len(data) != rows*len(names) {
		return nil, zorros.Errorf("matrix data has %v values, want %v rows x %v columns", len(data), rows, len(names))
	}
	return &Matrix{Names: names, Data: data, Rows: rows, Cols: len(names)}, nil
}

/*
LuckyNew creates a Matrix and throws any occurred error as a panic.
*/
func LuckyNew(names []string, rows int, data []float64) *Matrix {
	m, err := New(names, rows, data)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return m
}

// Row returns the i-th row as a slice view, not a copy.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Col copies the named column out of the matrix.
func (m *Matrix) Col(name string) ([]float64, error) {
	j := m.Index(name)
	if j < 0 {
		return nil, zorros.Errorf("matrix has no column `%v`", name)
	}
	r := make([]float64, m.Rows)
	for i := 0; i < m.Rows; i++ {
		r[i] = m.Data[i*m.Cols+j]
	}
	return r, nil
}

// Index returns the position of the named column or -1.
func (m *Matrix) Index(name string) int {
	for j, n := range m.Names {
		if n == name {
			return j
		}
	}
	return -1
}

/*
Select returns a new Matrix holding the named columns in the given order.
*/
func (m *Matrix) Select(names ...string) (*Matrix, error) {
	idx := make([]int, len(names))
	for q, name := range names {
		j := m.Index(name)
		if j < 0 {
			return nil, zorros.Errorf("matrix has no column `%v`", name)
		}
		idx[q] = j
	}
	data := make([]float64, 0, m.Rows*len(names))
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for _, j := range idx {
			data = append(data, row[j])
		}
	}
	return &Matrix{Names: append([]string{}, names...), Data: data, Rows: m.Rows, Cols: len(names)}, nil
}

/*
Drop returns a new Matrix without the named column.
*/
func (m *Matrix) Drop(name string) (*Matrix, error) {
	q := m.Index(name)
	if q < 0 {
		return nil, zorros.Errorf("matrix has no column `%v`", name)
	}
	names := make([]string, 0, m.Cols-1)
	names = append(names, m.Names[:q]...)
	names = append(names, m.Names[q+1:]...)
	data := make([]float64, 0, m.Rows*(m.Cols-1))
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		data = append(data, row[:q]...)
		data = append(data, row[q+1:]...)
	}
	return &Matrix{Names: names, Data: data, Rows: m.Rows, Cols: m.Cols - 1}, nil
}

/*
Filter returns a new Matrix holding the rows the predicate selects.
*/
func (m *Matrix) Filter(keep func(row []float64) bool) *Matrix {
	data := make([]float64, 0, len(m.Data))
	rows := 0
	for i := 0; i < m.Rows; i++ {
		if keep(m.Row(i)) {
			data = append(data, m.Row(i)...)
			rows++
		}
	}
	return &Matrix{Names: m.Names, Data: data, Rows: rows, Cols: m.Cols}
}

/*
SameSchema reports whether two matrices have the same columns
in the same order.
*/
func (m *Matrix) SameSchema(q *Matrix) bool {
	if m.Cols != q.Cols {
		return false
	}
	for j := range m.Names {
		if m.Names[j] != q.Names[j] {
			return false
		}
	}
	return true
}

// Dense wraps the matrix data as a gonum view sharing the same backing slice.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.Rows, m.Cols, m.Data)
}
