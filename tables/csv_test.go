package tables

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
	"gotest.tools/assert"
)

const irisHead = "SepalLength,SepalWidth,PetalLength,PetalWidth\n" +
	"5.1,3.5,1.4,0.2\n" +
	"4.9,3.0,1.4,0.2\n" +
	"4.7,3.2,1.3,0.2\n"

func Test_ReadCSV(t *testing.T) {
	q, err := ReadCSV(strings.NewReader(irisHead))
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 3)
	assert.Equal(t, q.Width(), 4)
	assert.DeepEqual(t, q.Col("SepalWidth"), []float64{3.5, 3.0, 3.2})
}

func Test_ReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("A,B\n1\n"))
	assert.Assert(t, err != nil)
	_, err = ReadCSV(strings.NewReader("A,B\n1,x\n"))
	assert.Assert(t, err != nil)
}

func Test_ReadCSVFileXz(t *testing.T) {
	dir, err := ioutil.TempDir("", "tables-test-")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "iris.csv.xz")
	f, err := os.Create(path)
	assert.NilError(t, err)
	w, err := xz.NewWriter(f)
	assert.NilError(t, err)
	_, err = w.Write([]byte(irisHead))
	assert.NilError(t, err)
	assert.NilError(t, w.Close())
	assert.NilError(t, f.Close())
	q, err := ReadCSVFile(path)
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 3)
	assert.DeepEqual(t, q.Col("PetalWidth"), []float64{0.2, 0.2, 0.2})
}
