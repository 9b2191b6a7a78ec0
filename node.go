// Package skipnode implements the node-level engine of an indexable skip
// list. A chain of nodes hangs off a valueless head sentinel; every node
// carries one forward link per level it participates in, together with the
// number of bottom-level steps that link jumps over. Summing those spans
// along any level recovers a node's position without scanning, which is what
// makes indexed access, insertion and removal logarithmic.
//
// The engine is deliberately low-level: it never picks node levels and never
// interprets values. The owning container supplies a precomputed level for
// each new node and a bottom-level step count ("distance") for each
// positional operation. All operations assume exclusive access.
package skipnode

import "math/bits"

// LevelsRequired returns the minimum head height able to index a chain of n
// elements. Height grows by one each time n crosses a power of two.
func LevelsRequired(n int) int {
	if n == 0 {
		return 1
	}
	return bits.Len(uint(n))
}

// Node is one element of the chain, or the head sentinel when value is
// absent. A node of level L owns its links[0] successor and carries L+1
// forward links in total; links above 0 and the prev back-reference are
// advisory shortcuts that every structural edit must keep consistent.
type Node[V any] struct {
	// value is nil only for the head sentinel.
	value *V
	// level is the highest link tier this node participates in, zero-based.
	level int
	// prev is the immediately preceding node at level 0; nil for the head.
	prev *Node[V]
	// links[i] is the successor at level i; len(links) == level+1.
	links []*Node[V]
	// linksLen[i] is the number of level-0 steps covered by links[i], or,
	// when links[i] is nil, the number of elements left to the end.
	linksLen []int
}

// NewHead returns a head sentinel spanning totalLevels link tiers. All links
// start nil and all spans zero. The head must stay at least as tall as every
// node ever inserted under it; maintaining that is the container's job.
func NewHead[V any](totalLevels int) *Node[V] {
	return &Node[V]{
		level:    totalLevels - 1,
		links:    make([]*Node[V], totalLevels),
		linksLen: make([]int, totalLevels),
	}
}

// New returns a detached node holding value, sized for the given zero-based
// level. Its links are wired up when it is passed to Insert.
func New[V any](value V, level int) *Node[V] {
	return &Node[V]{
		value:    &value,
		level:    level,
		links:    make([]*Node[V], level+1),
		linksLen: make([]int, level+1),
	}
}

// IsHead reports whether n is the head sentinel. Only the head has no
// predecessor.
func (n *Node[V]) IsHead() bool {
	return n.prev == nil
}

// Level returns the node's zero-based height.
func (n *Node[V]) Level() int {
	return n.level
}

// Next returns the immediate successor in the chain, or nil at the end.
func (n *Node[V]) Next() *Node[V] {
	return n.links[0]
}

// Value returns the node's value. ok is false only for the head sentinel and
// for nodes already consumed by TakeValue.
func (n *Node[V]) Value() (V, bool) {
	if n.value == nil {
		var zero V
		return zero, false
	}
	return *n.value, true
}

// TakeValue moves the value out of the node, leaving it empty. Used after
// Remove and by the consuming iterator.
func (n *Node[V]) TakeValue() (V, bool) {
	if n.value == nil {
		var zero V
		return zero, false
	}
	v := *n.value
	n.value = nil
	return v, true
}

// detachNext severs and returns the immediate successor, clearing the level-0
// link and span here and the back-reference there. The caller must make sure
// no link at level 1 or above still reaches the detached node once its edit
// completes.
func (n *Node[V]) detachNext() *Node[V] {
	next := n.links[0]
	if next == nil {
		return nil
	}
	next.prev = nil
	n.links[0] = nil
	n.linksLen[0] = 0
	return next
}

// replaceNext installs newNext as the immediate successor, wiring its
// back-reference and setting the level-0 span to one. The previous successor,
// if any, is detached and returned; the caller must reattach or discard it
// and fix any higher links.
func (n *Node[V]) replaceNext(newNext *Node[V]) *Node[V] {
	old := n.detachNext()
	newNext.prev = n
	n.links[0] = newNext
	n.linksLen[0] = 1
	return old
}

// Clear tears down the entire chain below the head, leaving the head empty.
// Teardown is a loop rather than per-node recursion: chain length is
// unbounded, and breaking every link as we go also keeps a long chain from
// surviving as one big retained graph. Links above level 0 are never
// dereferenced again, so clearing them node by node is safe in any order.
func (n *Node[V]) Clear() {
	node := n.detachNext()
	for node != nil {
		next := node.detachNext()
		for i := range node.links {
			node.links[i] = nil
			node.linksLen[i] = 0
		}
		node.value = nil
		node = next
	}
	for i := range n.links {
		n.links[i] = nil
		n.linksLen[i] = 0
	}
}
