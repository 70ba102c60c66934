package dataset

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"
)

/*
NameTable maps internal feature identifiers (f0, f1, ...) to
human-readable sensor-signal names.
*/
type NameTable map[string]string

/*
ReadNames loads the lookup from a two-column CSV (id,name) with a header.
*/
func ReadNames(r io.Reader) (NameTable, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, zorros.Trace(df.Err)
	}
	if df.Ncol() < 2 {
		return nil, zorros.Errorf("feature-name lookup needs id and name columns, got %v", df.Names())
	}
	ids := df.Col(df.Names()[0]).Records()
	names := df.Col(df.Names()[1]).Records()
	t := make(NameTable, len(ids))
	for i, id := range ids {
		t[id] = names[i]
	}
	return t, nil
}

/*
ReadNamesFile loads the lookup from a plain or xz-compressed CSV file.
*/
func ReadNamesFile(path string) (NameTable, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadNames(r)
}

/*
Resolve translates internal feature identifiers into sensor-signal names,
failing on any identifier the lookup does not know.
*/
func (t NameTable) Resolve(ids []string) ([]string, error) {
	r := make([]string, len(ids))
	for i, id := range ids {
		n, ok := t[id]
		if !ok {
			return nil, xerrors.Errorf("no feature-name entry for `%v`: %w", id, ErrSchema)
		}
		r[i] = n
	}
	return r, nil
}
