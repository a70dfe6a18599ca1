package fu

func Mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Fnzi(x, dflt int) int {
	if x != 0 {
		return x
	}
	return dflt
}

func Fnzd(x, dflt float64) float64 {
	if x != 0 {
		return x
	}
	return dflt
}
