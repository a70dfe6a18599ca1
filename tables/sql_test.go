package tables

import (
	"database/sql"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func Test_ReadSQLite(t *testing.T) {
	dir, err := ioutil.TempDir("", "tables-test-")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "test.db")
	db, err := sql.Open("sqlite3", path)
	assert.NilError(t, err)
	_, err = db.Exec("create table samples (f1 real, f2 real)")
	assert.NilError(t, err)
	_, err = db.Exec("insert into samples values (1.5, 2), (3, 4), (5, 6.5)")
	assert.NilError(t, err)
	assert.NilError(t, db.Close())

	q, err := ReadSQLite(path, "select f1, f2 from samples order by f1")
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 3)
	assert.DeepEqual(t, q.Col("f1"), []float64{1.5, 3, 5})
	assert.DeepEqual(t, q.Col("f2"), []float64{2, 4, 6.5})

	_, err = ReadSQLite(path, "select f1 from nosuch")
	assert.Assert(t, err != nil)
}
