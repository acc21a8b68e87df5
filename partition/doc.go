// Package partition implements the in-place partition step of a lazy quicksort.
//
// The engine works on an index range of a shared buffer rather than on a sub-slice, so
// the caller keeps ownership of a single backing array and describes the active range
// with inclusive bounds:
//
//	p := partition.Lomuto(buf, lo, hi, partition.Midpoint(buf, lo, hi, cmp), cmp)
//	// buf[lo:p]    compare not greater than buf[p]
//	// buf[p+1:hi+1] compare greater than buf[p]
//
// Pivot selection is a separate, injectable Pivot. Midpoint is the default and is purely
// positional, so inputs crafted against it are quadratic; MedianOfThree and Random trade
// a few comparisons or a source of randomness for robustness. Elements equal to the pivot
// always stay before it, so no pivot rule helps with heavily repeated values.
package partition
