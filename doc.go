// Package lazysort provides a lazily evaluated sorted sequence.
//
// An Iterator takes ownership of an unordered buffer and emits its elements in
// ascending order, one per call to Next, doing only as much partitioning as each element
// requires. Taking the first k elements of n costs roughly O(n + k log n) comparisons
// instead of the O(n log n) of a full sort, which makes it a good fit for "top k" style
// consumers that may stop early.
//
// # Algorithm
//
// The iterator is a lazy quicksort. It keeps a single in-place buffer and a stack of
// pending index ranges. The range on top of the stack always holds the smallest values
// not yet emitted. Next pops that range and:
//   - emits it directly when it holds one element,
//   - orders the pair and emits the smaller one when it holds two,
//   - otherwise partitions it around a pivot, pushes the part holding larger values and
//     the pivot itself, and keeps narrowing the part holding smaller values.
//
// Pivot selection is positional (the midpoint of the range) unless another
// partition.Pivot is supplied with WithPivot. Inputs crafted against the midpoint rule,
// and inputs dominated by a single repeated value, degrade to quadratic time.
//
// # Orderings
//
// Sorted uses the built-in order of cmp.Ordered types, SortedPartial resolves
// incomparable pairs with an ordering.Policy and SortedBy uses a caller-supplied
// comparator verbatim. Equal elements are not kept in input order.
//
// # Example Usage
//
//	it := lazysort.Sorted(slices.Values([]int{9, 7, 1, 1, 6, 3, 1, 4, 22}))
//	for v := range it.All() {
//	    fmt.Println(v)
//	    if v > 3 {
//	        break // the rest of the buffer is never sorted
//	    }
//	}
//
// An Iterator is single pass, cannot be rewound and is not safe for concurrent use.
package lazysort
