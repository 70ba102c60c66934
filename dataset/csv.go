package dataset

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/zorros"

	"github.com/go-ml-lab/harboost/tables"
)

/*
Open opens a dataset artifact, transparently decoding xz-compressed files
by their .xz suffix.
*/
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, zorros.Wrapf(err, "bad xz stream in `%v`: %v", path, err.Error())
	}
	return &xzFile{r, f}, nil
}

type xzFile struct {
	io.Reader
	f *os.File
}

func (x *xzFile) Close() error { return x.f.Close() }

/*
FromCSV reads a numeric feature table from CSV with a header row.
*/
func FromCSV(r io.Reader) (*tables.Matrix, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, zorros.Trace(df.Err)
	}
	return fromFrame(df)
}

/*
ReadCSVFile reads a numeric feature table from a plain or xz-compressed
CSV file.
*/
func ReadCSVFile(path string) (*tables.Matrix, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return FromCSV(r)
}

func fromFrame(df dataframe.DataFrame) (*tables.Matrix, error) {
	names := df.Names()
	rows, cols := df.Nrow(), df.Ncol()
	data := make([]float64, rows*cols)
	for j, name := range names {
		col := df.Col(name).Float()
		for i, v := range col {
			if math.IsNaN(v) {
				return nil, zorros.Errorf("non-numeric value in column `%v` row %v", name, i)
			}
			data[i*cols+j] = v
		}
	}
	return tables.New(names, rows, data)
}

/*
ReadLabels reads an integer label column from a single-column CSV
(or the named column of a wider one).
*/
func ReadLabels(path, col string) ([]int, error) {
	m, err := ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	if col == "" {
		col = m.Names[0]
	}
	v, err := m.Col(col)
	if err != nil {
		return nil, err
	}
	y, err := ToLabels(v)
	if err != nil {
		return nil, zorros.Wrapf(err, "bad labels in `%v`: %v", path, err.Error())
	}
	return y, nil
}
