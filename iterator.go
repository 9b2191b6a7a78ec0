package skipnode

// IntoIter consumes a detached chain from either end. It owns the current
// front node, keeps an advisory pointer to the current back node, and tracks
// the exact remaining count. Once a chain has been handed to an IntoIter the
// head it came from is empty and the iterator is the only way to reach the
// values.
type IntoIter[V any] struct {
	first *Node[V]
	last  *Node[V]
	size  int
}

// Drain detaches the whole chain below the head into a consuming iterator
// and resets the head to empty. Locating the back node descends level by
// level, going as far right as each level allows, so setup stays
// logarithmic apart from the one length scan.
func (n *Node[V]) Drain() *IntoIter[V] {
	size, _ := n.Distance(0, nil)

	last := n
	for level := n.level; level >= 0; level-- {
		last, _ = last.advanceWhile(level, func(_, _ *Node[V]) bool { return true })
	}

	first := n.detachNext()
	for i := range n.links {
		n.links[i] = nil
		n.linksLen[i] = 0
	}

	it := &IntoIter[V]{first: first, size: size}
	if first != nil {
		it.last = last
	}
	return it
}

// Next pops the front value. It detaches the popped node's successor to
// become the new front, which also clears that successor's back-reference so
// NextBack can later tell when the two ends have met.
func (it *IntoIter[V]) Next() (V, bool) {
	if it.first == nil {
		var zero V
		return zero, false
	}
	popped := it.first
	it.first = popped.detachNext()
	if it.first == nil {
		it.last = nil
	}
	it.size--
	return popped.TakeValue()
}

// NextBack pops the back value. When the back node has no predecessor it is
// also the held front node and the iterator collapses to empty; otherwise
// ownership of the back node is reclaimed by severing the predecessor's
// forward link, the same primitive every other structural edit goes through.
func (it *IntoIter[V]) NextBack() (V, bool) {
	if it.first == nil {
		var zero V
		return zero, false
	}
	newLast := it.last.prev
	var popped *Node[V]
	if newLast == nil {
		popped = it.first
		it.first = nil
	} else {
		popped = newLast.detachNext()
	}
	it.last = newLast
	it.size--
	return popped.TakeValue()
}

// Len returns the exact number of values left in the iterator.
func (it *IntoIter[V]) Len() int {
	return it.size
}
