package tables

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"golang.org/x/xerrors"
)

/*
ReadCSV reads a table from CSV data. The first record holds column
names, every following record holds float64 values.
*/
func ReadCSV(r io.Reader) (*Table, error) {
	c := csv.NewReader(r)
	names, err := c.Read()
	if err != nil {
		return nil, xerrors.Errorf("tables: failed to read csv header: %w", err)
	}
	cols := make([][]float64, len(names))
	for line := 2; ; line++ {
		rec, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("tables: failed to read csv: %w", err)
		}
		if len(rec) != len(names) {
			return nil, xerrors.Errorf("tables: csv line %d has %d fields, want %d: %w", line, len(rec), len(names), ErrDimension)
		}
		for i, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, xerrors.Errorf("tables: csv line %d column `%v`: %w", line, names[i], err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	return New(names, cols)
}

/*
ReadCSVFile reads a table from a CSV file, decompressing it first
when the file name ends with .xz.
*/
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("tables: %w", err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		if r, err = xz.NewReader(f); err != nil {
			return nil, xerrors.Errorf("tables: failed to open xz stream: %w", err)
		}
	}
	return ReadCSV(r)
}
