package skipnode

// advanceIf inspects the link at the given level and, when it exists and the
// predicate accepts the step, returns the successor together with the span
// just crossed. When the step is refused it returns the receiver itself with
// ok false, so callers in a loop can keep using the same reference.
func (n *Node[V]) advanceIf(level int, pred func(current, next *Node[V]) bool) (*Node[V], int, bool) {
	next := n.links[level]
	if next != nil && pred(n, next) {
		return next, n.linksLen[level], true
	}
	return n, 0, false
}

// advanceWhile repeatedly applies advanceIf until it refuses, returning the
// furthest node reached and the total distance travelled.
func (n *Node[V]) advanceWhile(level int, pred func(current, next *Node[V]) bool) (*Node[V], int) {
	current := n
	travelled := 0
	for {
		next, steps, ok := current.advanceIf(level, pred)
		if !ok {
			return current, travelled
		}
		current = next
		travelled += steps
	}
}

// AdvanceAtMost takes as many hops at the given level as maxDistance allows,
// stopping before any hop whose span would overshoot the remaining budget.
// It returns the node reached and the distance actually travelled, which is
// all the container needs to descend level by level during an indexed search.
func (n *Node[V]) AdvanceAtMost(level, maxDistance int) (*Node[V], int) {
	budget := maxDistance
	return n.advanceWhile(level, func(current, _ *Node[V]) bool {
		step := current.linksLen[level]
		if step > budget {
			return false
		}
		budget -= step
		return true
	})
}

// Distance returns the number of level-0 steps from n to target when walking
// forward at the given level. A nil target measures to the logical end of the
// chain instead. ok is false when the target is never encountered, for
// example because it precedes n or is not linked at this level; callers can
// recover by retrying at level 0.
func (n *Node[V]) Distance(level int, target *Node[V]) (int, bool) {
	if target == nil {
		dest, travelled := n.advanceWhile(level, func(_, _ *Node[V]) bool { return true })
		return travelled + dest.linksLen[level], true
	}
	dest, travelled := n.advanceWhile(level, func(current, _ *Node[V]) bool {
		return current != target
	})
	if dest != target {
		return 0, false
	}
	return travelled, true
}
