package lazysort

import (
	"iter"

	"github.com/davidvella/lazysort/loser"
	"github.com/davidvella/lazysort/ordering"
)

// Merge combines sequences that are each ascending under compare into a single
// ascending sequence. Inputs are pulled one element at a time, so merging the All
// sequences of several Iterators keeps every one of them lazy.
func Merge[T any](compare ordering.Func[T], sequences ...iter.Seq[T]) iter.Seq[T] {
	return loser.New(sequences, compare).All()
}
