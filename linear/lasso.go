/*
Package linear implements cross-validated L1-regularized linear
regression fitted by coordinate descent.
*/
package linear

import (
	"math"

	"github.com/micboat/autofeat/fu"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultEps     = 1e-16
	DefaultAlphas  = 20
	DefaultFolds   = 5
	DefaultMaxIter = 1000
	DefaultTol     = 1e-4

	// ratio between the largest and the smallest alpha on the grid
	alphaRatio = 1e-3
)

/*
LassoCV is an L1-regularized linear regression with the regularization
strength selected by k-fold cross-validation over a geometric grid of
alphas. Folds are contiguous row blocks so the fit is deterministic.
Degenerate inputs (constant columns, constant target, non-converged
descent) never fail the fit; the affected coefficients come out zero.
*/
type LassoCV struct {
	Eps     float64 // guard added to vanishing column norms
	Alphas  int     // size of the alpha grid
	Folds   int     // cross-validation folds
	MaxIter int     // coordinate descent sweeps per fit
	Tol     float64 // coordinate descent stop tolerance

	coef      []float64
	intercept float64
	alpha     float64
}

/*
Fit selects alpha by cross-validation and refits on all rows.
*/
func (m *LassoCV) Fit(x *mat.Dense, y []float64) error {
	n, p := x.Dims()
	if n != len(y) {
		return xerrors.Errorf("linear: %d rows for %d targets", n, len(y))
	}
	if p < 1 {
		return xerrors.New("linear: fit without features")
	}
	eps := fu.Fnzd(m.Eps, DefaultEps)
	tol := fu.Fnzd(m.Tol, DefaultTol)
	maxIter := fu.Fnzi(m.MaxIter, DefaultMaxIter)
	cols := make([][]float64, p)
	for j := range cols {
		cols[j] = mat.Col(nil, j, x)
	}
	grid := m.grid(cols, y)
	if len(grid) == 1 {
		m.alpha = grid[0]
	} else {
		folds := fu.Mini(fu.Fnzi(m.Folds, DefaultFolds), n)
		m.alpha = grid[fu.Indmind(m.validate(cols, y, grid, folds, eps, tol, maxIter))]
	}
	m.coef = make([]float64, p)
	m.intercept = descend(cols, y, m.alpha, m.coef, eps, tol, maxIter)
	return nil
}

/*
Coef returns a copy of the fitted per-feature coefficients.
*/
func (m *LassoCV) Coef() []float64 {
	r := make([]float64, len(m.coef))
	copy(r, m.coef)
	return r
}

/*
Intercept returns the fitted intercept.
*/
func (m *LassoCV) Intercept() float64 { return m.intercept }

/*
Alpha returns the regularization strength chosen by cross-validation.
*/
func (m *LassoCV) Alpha() float64 { return m.alpha }

/*
Predict computes x*coef + intercept for every row of x.
*/
func (m *LassoCV) Predict(x *mat.Dense) []float64 {
	n, p := x.Dims()
	r := make([]float64, n)
	for i := range r {
		v := m.intercept
		for j := 0; j < p; j++ {
			v += m.coef[j] * x.At(i, j)
		}
		r[i] = v
	}
	return r
}

// geometric alpha grid downward from the data-driven maximum;
// a single zero alpha when the data carries no signal at all
func (m *LassoCV) grid(cols [][]float64, y []float64) []float64 {
	yc := center(y)
	alphaMax := 0.
	for _, c := range cols {
		if w := math.Abs(fu.Dot(center(c), yc)) / float64(len(y)); w > alphaMax {
			alphaMax = w
		}
	}
	if alphaMax <= 0 {
		return []float64{0}
	}
	k := fu.Fnzi(m.Alphas, DefaultAlphas)
	if k < 2 {
		return []float64{alphaMax}
	}
	grid := make([]float64, k)
	for i := range grid {
		grid[i] = alphaMax * math.Pow(alphaRatio, float64(i)/float64(k-1))
	}
	return grid
}

// mean squared validation error per alpha, averaged over contiguous folds
func (m *LassoCV) validate(cols [][]float64, y []float64, grid []float64, folds int, eps, tol float64, maxIter int) []float64 {
	n := len(y)
	mse := make([]float64, len(grid))
	for f := 0; f < folds; f++ {
		lo, hi := f*n/folds, (f+1)*n/folds
		if lo == hi {
			continue
		}
		tc := make([][]float64, len(cols))
		for j, c := range cols {
			tc[j] = append(append([]float64{}, c[:lo]...), c[hi:]...)
		}
		ty := append(append([]float64{}, y[:lo]...), y[hi:]...)
		w := make([]float64, len(cols))
		// the grid descends, so w warm-starts every next alpha
		for a, alpha := range grid {
			intercept := descend(tc, ty, alpha, w, eps, tol, maxIter)
			for i := lo; i < hi; i++ {
				v := intercept
				for j, c := range cols {
					v += w[j] * c[i]
				}
				mse[a] += (y[i] - v) * (y[i] - v) / float64(n)
			}
		}
	}
	return mse
}

// cyclic coordinate descent on centered data; w is both the warm
// start and the result, the returned value is the intercept
func descend(cols [][]float64, y []float64, alpha float64, w []float64, eps, tol float64, maxIter int) float64 {
	n := len(y)
	means := make([]float64, len(cols))
	norms := make([]float64, len(cols))
	xc := make([][]float64, len(cols))
	for j, c := range cols {
		xc[j] = center(c)
		means[j] = fu.Mean(c)
		norms[j] = fu.Dot(xc[j], xc[j])
	}
	ybar := fu.Mean(y)
	r := make([]float64, n)
	for i := range r {
		r[i] = y[i] - ybar
		for j := range w {
			r[i] -= w[j] * xc[j][i]
		}
	}
	thr := float64(n) * alpha
	for it := 0; it < maxIter; it++ {
		delta := 0.
		for j := range w {
			if norms[j] <= eps {
				w[j] = 0
				continue
			}
			old := w[j]
			rho := fu.Dot(xc[j], r) + norms[j]*old
			w[j] = soft(rho, thr) / norms[j]
			if d := w[j] - old; d != 0 {
				for i := range r {
					r[i] -= d * xc[j][i]
				}
				delta = math.Max(delta, math.Abs(d))
			}
		}
		if delta <= tol {
			break
		}
	}
	intercept := ybar
	for j := range w {
		intercept -= w[j] * means[j]
	}
	return intercept
}

func soft(v, thr float64) float64 {
	switch {
	case v > thr:
		return v - thr
	case v < -thr:
		return v + thr
	}
	return 0
}

func center(a []float64) []float64 {
	mean := fu.Mean(a)
	r := make([]float64, len(a))
	for i, x := range a {
		r[i] = x - mean
	}
	return r
}
