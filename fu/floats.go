package fu

// Indmax is the first-max argmax: on ties the lowest index wins.
func Indmax(a []float64) int {
	k := 0
	for i := 1; i < len(a); i++ {
		if a[i] > a[k] {
			k = i
		}
	}
	return k
}

// Indmaxd is the index of the last maximum.
func Indmaxd(a []float64) int {
	k := 0
	for i := 1; i < len(a); i++ {
		if a[i] >= a[k] {
			k = i
		}
	}
	return k
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
