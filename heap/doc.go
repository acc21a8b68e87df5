// Package heap implements a forest-of-trees min-heap with a bounded fan-out.
//
// Every tree is heap ordered: a node is never greater than any of its descendants.
// Adding a value either attaches it as a new child of the most recently added root, when
// that root is not greater than the value and still has room, or starts a new root.
// PopMin scans the roots for the minimum, folding acceptable roots into the running
// minimum as it goes so later scans are shorter, then removes the minimum root and
// promotes its children to roots.
//
// Basic usage:
//
//	h := heap.New(cmp.Compare[int])
//	h.Add(10)
//	h.Add(1)
//	h.Add(5)
//
//	for v := range h.All() {
//	    fmt.Println(v) // 1, 5, 10
//	}
//
// Like the lazy sort iterator, a Heap only orders as much as each PopMin requires. It is
// not safe for concurrent use.
package heap
