package ordering

import (
	"cmp"
	"fmt"
)

// PartialFunc compares a and b. ok is false when the pair is incomparable, in which
// case c is ignored.
type PartialFunc[T any] func(a, b T) (c int, ok bool)

// Policy decides how an incomparable pair is reported.
type Policy int

const (
	// IncomparableFirst reports an incomparable pair as Less.
	IncomparableFirst Policy = iota
	// IncomparableLast reports an incomparable pair as Greater.
	IncomparableLast
)

func (p Policy) String() string {
	switch p {
	case IncomparableFirst:
		return "incomparable-first"
	case IncomparableLast:
		return "incomparable-last"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) result() int {
	if p == IncomparableLast {
		return 1
	}
	return -1
}

// Partial turns a partial comparison into a Func. Whenever pf reports a pair as
// incomparable the result is fixed by policy, so the same input always sorts the same
// way.
func Partial[T any](pf PartialFunc[T], policy Policy) Func[T] {
	incomparable := policy.result()
	return func(a, b T) int {
		if c, ok := pf(a, b); ok {
			return c
		}
		return incomparable
	}
}

// PartialFloat compares two floating point numbers. NaN is incomparable with every
// value, itself included.
func PartialFloat[T ~float32 | ~float64](a, b T) (int, bool) {
	if isNaN(a) || isNaN(b) {
		return 0, false
	}
	return cmp.Compare(a, b), true
}

// Float orders floating point numbers with every NaN placed before all other values
// (IncomparableFirst) or after them (IncomparableLast). NaNs are equivalent to each
// other. Unlike Partial(PartialFloat, policy) this is a consistent total order.
func Float[T ~float32 | ~float64](policy Policy) Func[T] {
	nan := policy.result()
	return func(a, b T) int {
		aNaN, bNaN := isNaN(a), isNaN(b)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return nan
		case bNaN:
			return -nan
		}
		return cmp.Compare(a, b)
	}
}

func isNaN[T ~float32 | ~float64](x T) bool {
	return x != x
}
