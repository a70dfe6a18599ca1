package fu

import "math"

func Mean(a []float64) float64 {
	var c float64
	for _, x := range a {
		c += x
	}
	return c / float64(len(a))
}

func MeanAbs(a []float64) float64 {
	var c float64
	for _, x := range a {
		c += math.Abs(x)
	}
	return c / float64(len(a))
}

func Mad(a, b []float64) float64 {
	var c float64
	for i, x := range a {
		c += math.Abs(x - b[i])
	}
	return c / float64(len(a))
}

func Sub(a, b []float64) []float64 {
	r := make([]float64, len(a))
	for i, x := range a {
		r[i] = x - b[i]
	}
	return r
}

func Dot(a, b []float64) float64 {
	var c float64
	for i, x := range a {
		c += x * b[i]
	}
	return c
}

const (
	CloseRtol = 1e-5
	CloseAtol = 1e-8
)

func Close(a, b float64) bool {
	return math.Abs(a-b) <= CloseAtol+CloseRtol*math.Abs(b)
}

func CountClose(v float64, a []float64) int {
	n := 0
	for _, x := range a {
		if Close(v, x) {
			n++
		}
	}
	return n
}

func Indmind(a []float64) int {
	j := 0
	for i, x := range a {
		if x < a[j] {
			j = i
		}
	}
	return j
}
