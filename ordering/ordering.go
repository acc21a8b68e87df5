package ordering

import "cmp"

// Func is a three-way comparator.
type Func[T any] func(a, b T) int

// Total returns the built-in ordering of T.
func Total[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that sorts in the opposite direction of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By orders values of T by the key extracted from each of them.
func By[T, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) int {
		return f(key(a), key(b))
	}
}

// Less adapts a comparator to the less-than form some containers expect.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}
