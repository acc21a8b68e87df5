// Package loser implements a tournament tree (also known as a loser tree) for merging
// several ascending sequences into one ascending sequence. It is based on the work by
// Bryan Boreham (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree where each internal node holds the "loser" of the
// comparison between its children, and the root holds the overall winner. Advancing the
// winning input only replays the games on the path from its leaf to the root, so each
// merged element costs O(log k) comparisons for k inputs.
//
// Basic usage:
//
//	tree := loser.New(
//	    []iter.Seq[int]{slices.Values([]int{1, 3, 5}), slices.Values([]int{2, 4, 6})},
//	    cmp.Compare[int],
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, 4, 5, 6
//	}
//
// Implementation details:
//   - For node N, its children are at positions 2N and 2N+1.
//   - Leaf nodes are stored in positions M to 2M-1 for M inputs.
//   - Internal nodes are stored in positions 1 to M-1.
//   - Node 0 holds the current winner.
//
// An exhausted input is marked done and loses every game, so no sentinel maximum value
// is needed. Inputs are consumed through iter.Pull and stopped when the merge ends,
// including when the consumer breaks out early.
package loser
