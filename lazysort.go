package lazysort

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/davidvella/lazysort/ordering"
	"github.com/davidvella/lazysort/partition"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// span is an inclusive range of buffer indices whose elements are not yet ordered
// relative to each other, but are ordered relative to everything outside the range.
type span struct {
	lo, hi int
}

// Iterator emits the elements of its buffer in ascending order.
type Iterator[T any] struct {
	buf     []T
	size    int
	emitted int
	pending []span // top of the stack holds the lowest pending indices

	compare  ordering.Func[T]
	pivot    partition.Pivot[T]
	logger   log.Logger
	observer Observer
	stats    Stats
}

// New returns an Iterator over buf ordered by compare.
//
// New takes ownership of buf: the caller must neither read nor modify it afterwards, as
// the iterator reorders it in place and clears emitted slots.
func New[T any](buf []T, compare ordering.Func[T], opts ...Option[T]) *Iterator[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator[T]{
		buf:      buf,
		size:     len(buf),
		pivot:    o.pivot,
		logger:   o.logger,
		observer: o.observer,
	}
	it.compare = func(a, b T) int {
		it.stats.Comparisons++
		return compare(a, b)
	}
	if len(buf) > 0 {
		it.push(span{lo: 0, hi: len(buf) - 1})
	}
	return it
}

// Sorted collects seq and returns an Iterator over it in the built-in order of T.
func Sorted[T cmp.Ordered](seq iter.Seq[T], opts ...Option[T]) *Iterator[T] {
	return New(slices.Collect(seq), ordering.Total[T](), opts...)
}

// SortedSlice returns an Iterator over buf in the built-in order of T. Like New it takes
// ownership of buf.
func SortedSlice[T cmp.Ordered](buf []T, opts ...Option[T]) *Iterator[T] {
	return New(buf, ordering.Total[T](), opts...)
}

// SortedPartial collects seq and returns an Iterator ordered by the partial comparison
// pf. Incomparable pairs are reported as Less or Greater according to policy.
func SortedPartial[T any](seq iter.Seq[T], pf ordering.PartialFunc[T], policy ordering.Policy, opts ...Option[T]) *Iterator[T] {
	return New(slices.Collect(seq), ordering.Partial(pf, policy), opts...)
}

// SortedBy collects seq and returns an Iterator ordered by compare.
func SortedBy[T any](seq iter.Seq[T], compare ordering.Func[T], opts ...Option[T]) *Iterator[T] {
	return New(slices.Collect(seq), compare, opts...)
}

// Len returns the number of elements not yet emitted.
func (it *Iterator[T]) Len() int {
	return it.size - it.emitted
}

// Stats returns the work done so far.
func (it *Iterator[T]) Stats() Stats {
	return it.stats
}

// Next returns the smallest element not yet emitted. ok is false once every element has
// been emitted, and stays false on every later call.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if len(it.pending) == 0 {
		return v, false
	}

	before := it.stats
	r := it.pop()
	for {
		switch r.hi - r.lo {
		case 0:
			return it.emit(r.lo, before), true
		case 1:
			if it.compare(it.buf[r.lo], it.buf[r.hi]) > 0 {
				it.buf[r.lo], it.buf[r.hi] = it.buf[r.hi], it.buf[r.lo]
			}
			it.push(span{lo: r.hi, hi: r.hi})
			return it.emit(r.lo, before), true
		}

		p := partition.Lomuto(it.buf, r.lo, r.hi, it.pivot(it.buf, r.lo, r.hi, it.compare), it.compare)
		it.stats.Partitions++
		level.Debug(it.logger).Log("msg", "partitioned range", "lo", r.lo, "hi", r.hi, "pivot", p, "pending", len(it.pending))

		if p < r.hi {
			it.push(span{lo: p + 1, hi: r.hi})
		}
		if p == r.lo {
			return it.emit(p, before), true
		}
		it.push(span{lo: p, hi: p})
		r = span{lo: r.lo, hi: p - 1}
	}
}

// All returns a sequence of the elements not yet emitted. Breaking out of the loop
// leaves the remaining elements pending.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// emit removes the element at index i, which must be the next unemitted index.
func (it *Iterator[T]) emit(i int, before Stats) T {
	if i != it.emitted {
		panic(fmt.Sprintf("lazysort: emitting index %d but %d elements were emitted", i, it.emitted))
	}

	var zero T
	v := it.buf[i]
	it.buf[i] = zero
	it.emitted++
	it.stats.Emitted++

	if len(it.pending) == 0 {
		level.Debug(it.logger).Log("msg", "exhausted", "emitted", it.emitted, "comparisons", it.stats.Comparisons, "partitions", it.stats.Partitions)
		it.buf = nil
	}
	if it.observer != nil {
		it.observer.ObserveNext(Step{
			Comparisons: it.stats.Comparisons - before.Comparisons,
			Partitions:  it.stats.Partitions - before.Partitions,
			Pending:     len(it.pending),
		})
	}
	return v
}

func (it *Iterator[T]) push(r span) {
	if r.lo > r.hi || r.lo < it.emitted || r.hi >= it.size {
		panic(fmt.Sprintf("lazysort: invalid range [%d, %d] for %d elements with %d emitted", r.lo, r.hi, it.size, it.emitted))
	}
	it.pending = append(it.pending, r)
	it.stats.MaxPending = max(it.stats.MaxPending, len(it.pending))
}

func (it *Iterator[T]) pop() span {
	last := len(it.pending) - 1
	r := it.pending[last]
	it.pending = it.pending[:last]
	return r
}
