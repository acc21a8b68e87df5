package partition

import "fmt"

// MinLen is the smallest range the engine accepts. Shorter ranges are resolved
// directly by the caller.
const MinLen = 3

// Lomuto partitions buf[lo..hi] (inclusive) around the element at index p and returns
// the index the pivot ends up at. Elements comparing greater than the pivot are moved
// after it; every other element stays before it. Each non-pivot element is compared
// exactly once and nothing outside the range is touched.
func Lomuto[T any](buf []T, lo, hi, p int, cmp func(a, b T) int) int {
	if lo < 0 || hi >= len(buf) || hi-lo+1 < MinLen {
		panic(fmt.Sprintf("partition: invalid range [%d, %d] for buffer of length %d", lo, hi, len(buf)))
	}
	if p < lo || p > hi {
		panic(fmt.Sprintf("partition: pivot %d outside range [%d, %d]", p, lo, hi))
	}

	buf[p], buf[hi] = buf[hi], buf[p]
	store := lo
	for i := lo; i < hi; i++ {
		if cmp(buf[i], buf[hi]) <= 0 {
			buf[i], buf[store] = buf[store], buf[i]
			store++
		}
	}
	buf[store], buf[hi] = buf[hi], buf[store]
	return store
}
