// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"
)

// New returns a tree merging sequences, each of which must already be ascending under
// compare. The relative order of equal values from different inputs is unspecified.
func New[E any](sequences []iter.Seq[E], compare func(a, b E) int) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		compare:   compare,
	}
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []iter.Seq[E]
	compare   func(a, b E) int
}

type node[E any] struct {
	index int              // This is the loser for all nodes except the 0th, where it is the winner.
	value E                // Value copied from the loser node, or winner for node 0.
	done  bool             // Copied along with value; a done entry loses every game.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E]) moveNext(index int) {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// less reports whether a strictly wins against b.
func (t *Tree[E]) less(a, b *node[E]) bool {
	if a.done || b.done {
		return !a.done && b.done
	}
	return t.compare(a.value, b.value) < 0
}

// All merges the inputs. It can only be ranged over once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s)
			t.nodes[i+len(t.sequences)].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i + len(t.sequences)) // Call next() on each item to get the first value.
		}
		t.initialize()
		for !t.nodes[0].done && yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.setWinner(winner, t.nodes[winner].value, t.nodes[winner].done)
}

func (t *Tree[E]) setWinner(pos int, value E, done bool) {
	t.nodes[0].index = pos
	t.nodes[0].value = value
	t.nodes[0].done = done
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.less(&nodes[right], &nodes[left]) {
		loser, winner = left, right
	} else {
		loser, winner = right, left
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	nodes[pos].done = nodes[loser].done
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	winner := node[E]{index: pos, value: nodes[pos].value, done: nodes[pos].done}
	for n := parent(pos); n != 0; n = parent(n) {
		stored := &nodes[n]
		if t.less(stored, &winner) {
			// Record the current winner as the loser here; the old loser moves up.
			stored.index, winner.index = winner.index, stored.index
			stored.value, winner.value = winner.value, stored.value
			stored.done, winner.done = winner.done, stored.done
		}
	}
	// winner.index is now the overall winner; store it in node 0.
	t.setWinner(winner.index, winner.value, winner.done)
}

func parent(i int) int { return i >> 1 }
