package tables

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/xerrors"
)

/*
ReadSQL reads a table from the result set of the query. Every selected
column must scan as float64.
*/
func ReadSQL(db *sql.DB, query string, args ...interface{}) (*Table, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, xerrors.Errorf("tables: query failed: %w", err)
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return nil, xerrors.Errorf("tables: %w", err)
	}
	cols := make([][]float64, len(names))
	vals := make([]float64, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, xerrors.Errorf("tables: scan failed: %w", err)
		}
		for i, v := range vals {
			cols[i] = append(cols[i], v)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, xerrors.Errorf("tables: %w", err)
	}
	return New(names, cols)
}

/*
ReadSQLite reads a table from a query against an SQLite database file.
*/
func ReadSQLite(path, query string, args ...interface{}) (*Table, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, xerrors.Errorf("tables: failed to open `%v`: %w", path, err)
	}
	defer db.Close()
	return ReadSQL(db, query, args...)
}
