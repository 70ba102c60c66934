package dataset

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/zorros"

	"github.com/go-ml-lab/harboost/tables"
)

/*
FromSQLite reads a numeric feature table from a SQLite database, columns
in schema order.
*/
func FromSQLite(path, table string) (*tables.Matrix, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer db.Close()
	rows, err := db.Query("select * from " + table)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to query table `%v`: %v", table, err.Error())
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	var data []float64
	row := make([]float64, len(names))
	ptrs := make([]interface{}, len(names))
	for j := range row {
		ptrs[j] = &row[j]
	}
	n := 0
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, zorros.Wrapf(err, "non-numeric value in table `%v` row %v: %v", table, n, err.Error())
		}
		data = append(data, row...)
		n++
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return tables.New(names, n, data)
}
