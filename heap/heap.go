package heap

import (
	"iter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type tree[T any] struct {
	value    T
	children []*tree[T]
}

// Heap is a min-heap ordered by a three-way comparator.
type Heap[T any] struct {
	trees   []*tree[T]
	size    int
	compare func(a, b T) int
	fanOut  int
	logger  log.Logger
}

// New returns an empty heap ordered by compare.
func New[T any](compare func(a, b T) int, opts ...Option) *Heap[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{
		compare: compare,
		fanOut:  o.fanOut,
		logger:  o.logger,
	}
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// Add inserts v.
func (h *Heap[T]) Add(v T) {
	t := &tree[T]{value: v}
	h.size++
	if n := len(h.trees); n > 0 && h.accepts(h.trees[n-1], t) {
		h.trees[n-1].children = append(h.trees[n-1].children, t)
		return
	}
	h.trees = append(h.trees, t)
}

// PopMin removes and returns the smallest value. ok is false when the heap is empty.
func (h *Heap[T]) PopMin() (v T, ok bool) {
	if len(h.trees) == 0 {
		return v, false
	}

	smallest := 0
	for i := 1; i < len(h.trees); {
		switch {
		case h.compare(h.trees[smallest].value, h.trees[i].value) > 0:
			smallest = i
			i++
		case h.accepts(h.trees[smallest], h.trees[i]):
			h.trees[smallest].children = append(h.trees[smallest].children, h.swapRemove(i))
		default:
			i++
		}
	}

	top := h.swapRemove(smallest)
	if len(top.children) > 0 {
		level.Debug(h.logger).Log("msg", "promoting subtrees", "subtrees", len(top.children))
		h.trees = append(h.trees, top.children...)
	}
	h.size--
	level.Debug(h.logger).Log("msg", "popped minimum", "trees", len(h.trees), "smallest", smallest)
	return top.value, true
}

// All pops every remaining value in ascending order.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.PopMin()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// accepts reports whether child can be attached under parent without breaking heap
// order or the fan-out limit.
func (h *Heap[T]) accepts(parent, child *tree[T]) bool {
	return h.compare(parent.value, child.value) <= 0 && len(parent.children) < h.fanOut
}

func (h *Heap[T]) swapRemove(i int) *tree[T] {
	t := h.trees[i]
	last := len(h.trees) - 1
	h.trees[i] = h.trees[last]
	h.trees[last] = nil
	h.trees = h.trees[:last]
	return t
}
