package easel

// MakeArray builds a slice of n elements where element i is fn(i).
// The classroom-friendly cousin of a for loop over append.
func MakeArray[T any](n int, fn func(i int) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp interpolates linearly between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
