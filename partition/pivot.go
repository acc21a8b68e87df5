package partition

import "math/rand"

// Pivot picks the index of the pivot for buf[lo..hi]. The returned index must lie within
// the range.
type Pivot[T any] func(buf []T, lo, hi int, cmp func(a, b T) int) int

// Midpoint returns the middle index of the range.
func Midpoint[T any](_ []T, lo, hi int, _ func(a, b T) int) int {
	return lo + (hi-lo)/2
}

// MedianOfThree returns whichever of the first, middle and last index holds the median
// of the three values.
func MedianOfThree[T any](buf []T, lo, hi int, cmp func(a, b T) int) int {
	a, b, c := lo, lo+(hi-lo)/2, hi
	if cmp(buf[a], buf[b]) > 0 {
		a, b = b, a
	}
	if cmp(buf[b], buf[c]) > 0 {
		b = c
		if cmp(buf[a], buf[b]) > 0 {
			b = a
		}
	}
	return b
}

// Random returns a Pivot choosing a uniformly random index of the range from r. r is
// used without locking.
func Random[T any](r *rand.Rand) Pivot[T] {
	return func(_ []T, lo, hi int, _ func(a, b T) int) int {
		return lo + r.Intn(hi-lo+1)
	}
}
