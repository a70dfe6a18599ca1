/*
Package scale implements zero-mean/unit-variance standardization of
numeric tables and vectors.
*/
package scale

import (
	"math"

	"github.com/micboat/autofeat/tables"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat"
)

/*
StandardScaler fits per-column mean and standard deviation on a table
and applies the same affine transform afterwards. A zero-variance
column keeps scale 1 so it standardizes to all zeros instead of NaN.
*/
type StandardScaler struct {
	names []string
	mean  []float64
	scale []float64
}

/*
Fit computes per-column mean and standard deviation.
*/
func (s *StandardScaler) Fit(t *tables.Table) *StandardScaler {
	s.names = t.Names()
	s.mean = make([]float64, len(s.names))
	s.scale = make([]float64, len(s.names))
	for i, name := range s.names {
		s.mean[i], s.scale[i] = moments(t.Col(name))
	}
	return s
}

/*
Transform standardizes every fitted column, producing a new table.
*/
func (s *StandardScaler) Transform(t *tables.Table) (*tables.Table, error) {
	if s.mean == nil {
		return nil, xerrors.New("scale: transform on unfitted scaler")
	}
	cols := make([][]float64, len(s.names))
	for i, name := range s.names {
		c := t.Col(name)
		if c == nil {
			return nil, xerrors.Errorf("scale: unknown column `%v`", name)
		}
		r := make([]float64, len(c))
		for j, v := range c {
			r[j] = (v - s.mean[i]) / s.scale[i]
		}
		cols[i] = r
	}
	return tables.New(s.names, cols)
}

/*
FitTransform fits the scaler and standardizes in one call.
*/
func (s *StandardScaler) FitTransform(t *tables.Table) (*tables.Table, error) {
	return s.Fit(t).Transform(t)
}

/*
Vector standardizes a single vector to zero mean and unit variance.
A zero-variance vector yields all zeros.
*/
func Vector(a []float64) []float64 {
	mean, scale := moments(a)
	r := make([]float64, len(a))
	for i, v := range a {
		r[i] = (v - mean) / scale
	}
	return r
}

// population moments, matching the fit side of the transform
func moments(a []float64) (mean, scale float64) {
	mean = stat.Mean(a, nil)
	var v float64
	for _, x := range a {
		v += (x - mean) * (x - mean)
	}
	v /= float64(len(a))
	if v > 0 {
		scale = math.Sqrt(v)
	} else {
		scale = 1
	}
	return
}
