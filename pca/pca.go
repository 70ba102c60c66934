/*
Package pca computes the covariance-based orthogonal projection of the
training features for visual diagnostics. Nothing downstream consumes it:
the boosters train on the raw feature matrix.
*/
package pca

import (
	"strconv"

	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/go-ml-lab/harboost/fu"
	"github.com/go-ml-lab/harboost/tables"
)

/*
Projection holds per-sample coordinates along the ordered principal
components and the explained-variance proportion of each component.
*/
type Projection struct {
	Coords    *tables.Matrix // samples x k, columns PC1..PCk
	Explained []float64      // variance proportions, descending
}

/*
Project computes the top-k principal components of the matrix and the
sample coordinates along them. Deterministic given identical input;
zero-variance columns flow through as degenerate components.
*/
func Project(x *tables.Matrix, k int) (*Projection, error) {
	if x.Rows < 2 {
		return nil, zorros.Errorf("%v samples are not enough for components", x.Rows)
	}
	k = fu.Mini(fu.Maxi(k, 1), fu.Mini(x.Rows, x.Cols))

	var pc stat.PC
	if ok := pc.PrincipalComponents(x.Dense(), nil); !ok {
		return nil, zorros.Errorf("principal components decomposition failed")
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)
	vars := pc.VarsTo(nil)

	total := 0.0
	for _, v := range vars {
		total += v
	}
	explained := make([]float64, k)
	for i := range explained {
		if total > 0 {
			explained[i] = vars[i] / total
		}
	}

	centered := center(x)
	var coords mat.Dense
	coords.Mul(centered, vec.Slice(0, x.Cols, 0, k))

	names := make([]string, k)
	for i := range names {
		names[i] = "PC" + strconv.Itoa(i+1)
	}
	data := make([]float64, x.Rows*k)
	for i := 0; i < x.Rows; i++ {
		copy(data[i*k:(i+1)*k], coords.RawRowView(i))
	}
	m, err := tables.New(names, x.Rows, data)
	if err != nil {
		return nil, err
	}
	return &Projection{Coords: m, Explained: explained}, nil
}

func center(x *tables.Matrix) *mat.Dense {
	means := make([]float64, x.Cols)
	for i := 0; i < x.Rows; i++ {
		for j, v := range x.Row(i) {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(x.Rows)
	}
	c := mat.NewDense(x.Rows, x.Cols, nil)
	for i := 0; i < x.Rows; i++ {
		for j, v := range x.Row(i) {
			c.Set(i, j, v-means[j])
		}
	}
	return c
}
