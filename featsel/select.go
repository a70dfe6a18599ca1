/*
Package featsel selects a small predictive subset of numeric features
for a downstream regression model.

The selection alternates between scoring not-yet-selected columns by
correlation with the current residual target, fitting an L1-regularized
regression on the grown feature set, pruning features with near-zero
coefficients, and tracking the best feature set seen on a held-out
validation split until the validation residual starts cycling or the
iteration budget runs out.
*/
package featsel

import (
	"fmt"
	"math"
	"sort"

	"github.com/micboat/autofeat/fu"
	"github.com/micboat/autofeat/linear"
	"github.com/micboat/autofeat/scale"
	"github.com/micboat/autofeat/tables"
	"golang.org/x/xerrors"
)

const (
	DefaultMaxIt = 100
	DefaultEps   = 1e-16

	// coefficients at or below this magnitude drop their feature
	coefThreshold = 1e-6
)

/*
Options controls a selection run. The zero value runs zero iterations;
start from DefaultOptions for the usual configuration.
*/
type Options struct {
	Scaled  bool    // the table is already zero-mean/unit-variance
	MaxIt   int     // iteration budget; 0 skips the loop entirely
	Eps     float64 // numerical-stability parameter forwarded to the regression
	Verbose int     // 0 is silent, higher prints progress lines
}

/*
DefaultOptions returns the usual configuration: unscaled input,
100 iterations, eps 1e-16, silent.
*/
func DefaultOptions() Options {
	return Options{MaxIt: DefaultMaxIt, Eps: DefaultEps}
}

/*
Report carries the outcome of a selection run.
*/
type Report struct {
	Cols       []string  // the best feature set
	History    []float64 // validation residual recorded at the start of every iteration
	TheBest    int       // iteration that produced Cols, -1 if none improved on the baseline
	Residual   float64   // smallest validation residual seen
	Iterations int       // iterations actually run
}

/*
Select returns column names of df with which a regression model can be
trained against target. The result is a subset of df's columns sized
at most half the training rows; it is empty when no fit ever improved
on the predict-nothing baseline.
*/
func Select(df *tables.Table, target []float64, opt Options) ([]string, error) {
	r, err := SelectReport(df, target, opt)
	if err != nil {
		return nil, err
	}
	return r.Cols, nil
}

/*
SelectReport is Select with the run diagnostics attached.
*/
func SelectReport(df *tables.Table, target []float64, opt Options) (*Report, error) {
	if df.Width() < 1 || df.Len() < 1 {
		return nil, xerrors.New("featsel: empty table")
	}
	if !opt.Scaled {
		if opt.Verbose > 0 {
			fmt.Println("featsel: scaling data...")
		}
		var err error
		if df, err = new(scale.StandardScaler).FitTransform(df); err != nil {
			return nil, err
		}
	}
	n := df.Len()
	trainLen := fu.Mini(n, fu.Maxi(3, int(0.8*float64(n))))
	targetTrain, targetTest := splitVec(target, trainLen)
	if len(targetTrain) != trainLen || len(targetTest) != n-trainLen {
		return nil, xerrors.Errorf("featsel: df and target dimension mismatch (%d rows, %d targets): %w",
			n, len(target), tables.ErrDimension)
	}

	// up to thr features, as much as a regression model is comfortable with
	thr := trainLen / 2
	newTarget := append([]float64{}, targetTrain...)
	residual := fu.MeanAbs(targetTest)
	smallest := 10 * residual
	var history []float64
	goodCols := []string{}
	bestCols := []string{}
	best := -1
	it := 0
	for it < opt.MaxIt && fu.CountClose(residual, history) < 2 {
		if opt.Verbose > 0 && it%10 == 0 {
			fmt.Printf("featsel: iteration %3d; %3d selected features with residual: %.6f\n",
				it, len(goodCols), residual)
		}
		history = append(history, residual)
		it++
		goodCols = append(goodCols, rankCandidates(df, trainLen, goodCols, newTarget, thr-len(goodCols))...)
		x, err := df.Matrix(goodCols, 0, trainLen)
		if err != nil {
			return nil, err
		}
		reg := linear.LassoCV{Eps: fu.Fnzd(opt.Eps, DefaultEps)}
		if err = reg.Fit(x, targetTrain); err != nil {
			return nil, err
		}
		newTarget = fu.Sub(targetTrain, reg.Predict(x))
		residual = math.NaN() // stays NaN when every row went into training
		if trainLen < n {
			xt, err := df.Matrix(goodCols, trainLen, n)
			if err != nil {
				return nil, err
			}
			residual = fu.Mad(targetTest, reg.Predict(xt))
		}
		coef := reg.Coef()
		kept := make([]string, 0, len(goodCols))
		for i, c := range goodCols {
			if math.Abs(coef[i]) > coefThreshold {
				kept = append(kept, c)
			}
		}
		goodCols = kept
		if residual < smallest {
			smallest = residual
			bestCols = append([]string{}, goodCols...)
			best = it - 1
		}
	}
	if opt.Verbose > 0 {
		fmt.Printf("featsel: iteration %3d; %3d selected features with residual: %.6f  --> done\n",
			it, len(bestCols), smallest)
	}
	return &Report{Cols: bestCols, History: history, TheBest: best, Residual: smallest, Iterations: it}, nil
}

// splitVec partitions a into a prefix of at most trainLen values and
// the remainder
func splitVec(a []float64, trainLen int) (train, test []float64) {
	cut := fu.Mini(trainLen, len(a))
	return a[:cut], a[cut:]
}

// rankCandidates scores every column outside goodCols by the absolute
// dot product of its training rows with the standardized residual
// target and returns up to k top-scoring names. k <= 0 returns none.
func rankCandidates(df *tables.Table, trainLen int, goodCols []string, newTarget []float64, k int) []string {
	if k <= 0 {
		return nil
	}
	z := scale.Vector(newTarget)
	type scored struct {
		name string
		w    float64
	}
	var cand []scored
	for _, name := range df.Names() {
		if member(goodCols, name) {
			continue
		}
		cand = append(cand, scored{name, math.Abs(fu.Dot(z, df.Col(name)[:trainLen]))})
	}
	sort.SliceStable(cand, func(i, j int) bool { return cand[i].w > cand[j].w })
	r := make([]string, 0, fu.Mini(k, len(cand)))
	for i := 0; i < fu.Mini(k, len(cand)); i++ {
		r = append(r, cand[i].name)
	}
	return r
}

func member(a []string, s string) bool {
	for _, x := range a {
		if x == s {
			return true
		}
	}
	return false
}
