// Package ordering provides the comparison strategies used to drive a lazy sort.
//
// Every strategy is reduced to a single three-way comparator, Func, which returns a
// negative number when a sorts before b, zero when they are equivalent and a positive
// number when a sorts after b.
//
// Three families are provided:
//   - Total orders, which delegate to the built-in ordering of cmp.Ordered types.
//   - Partial orders, where some pairs have no defined relation. A Policy decides
//     deterministically whether an incomparable pair reports Less or Greater.
//   - Custom comparators, used verbatim.
//
// Basic usage:
//
//	byAge := ordering.By(func(p Person) int { return p.Age }, ordering.Total[int]())
//	floats := ordering.Partial[float64](ordering.PartialFloat[float64], ordering.IncomparableLast)
//
// Comparators must be stateless and should describe a consistent weak ordering. Nothing
// in this module validates that; an inconsistent comparator yields an unspecified order.
package ordering
