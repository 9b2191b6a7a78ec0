package skipnode

import "fmt"

// Insert splices newNode into the chain so that it sits distance level-0
// steps after n, pushing whatever occupied that position rightwards. It
// returns the inserted node and the distance actually travelled, which is
// one more than the distance consumed locating the splice point. A distance
// beyond the end of the chain inserts at the reachable end.
//
// The locater closure shares one remaining-distance budget across every
// recursion level: each level consumes what its hops cover and the rest is
// left for the levels below.
func (n *Node[V]) Insert(newNode *Node[V], distance int) (*Node[V], int) {
	distanceLeft := distance
	locate := func(node *Node[V], level int) (*Node[V], int) {
		dest, travelled := node.AdvanceAtMost(level, distanceLeft)
		distanceLeft -= travelled
		return dest, travelled
	}
	return n.insertAt(n.level, newNode, locate)
}

// insertAt descends from the given level to level 0, performs the physical
// splice there, and patches links and spans while unwinding.
//
// At each level above 0 the freshly inserted node either reaches this level,
// in which case it takes over the predecessor's link here (its span is the
// predecessor's old span plus one minus the distance consumed below, the
// predecessor keeps the consumed part), or it does not, in which case the
// span crossing over its position simply grows by one.
func (n *Node[V]) insertAt(level int, newNode *Node[V], locate func(*Node[V], int) (*Node[V], int)) (*Node[V], int) {
	prev, prevDistance := locate(n, level)
	if level == 0 {
		if tail := prev.detachNext(); tail != nil {
			newNode.replaceNext(tail)
		}
		prev.replaceNext(newNode)
		return newNode, prevDistance + 1
	}

	inserted, insertDistance := prev.insertAt(level-1, newNode, locate)
	if level <= inserted.level {
		inserted.links[level] = prev.links[level]
		inserted.linksLen[level] = prev.linksLen[level] + 1 - insertDistance
		prev.links[level] = inserted
		prev.linksLen[level] = insertDistance
	} else {
		prev.linksLen[level]++
	}
	return inserted, insertDistance + prevDistance
}

// Remove unsplices and returns the node sitting distance level-0 steps after
// n, together with the distance actually travelled. ok is false when there is
// no node at that distance: a walk that lands on the final node with budget
// to spare has nothing left after it to remove. The returned node
// comes back with every link cleared, so holding on to it cannot keep the
// rest of the chain alive.
func (n *Node[V]) Remove(distance int) (*Node[V], int, bool) {
	distanceLeft := distance
	locate := func(node *Node[V], level int) (*Node[V], int, bool) {
		dest, travelled := node.AdvanceAtMost(level, distanceLeft)
		distanceLeft -= travelled
		if dest.links[0] == nil {
			return nil, 0, false
		}
		return dest, travelled, true
	}

	removed, travelled, ok := n.removeAt(n.level, locate)
	if !ok {
		return nil, 0, false
	}
	for i := range removed.links {
		removed.links[i] = nil
		removed.linksLen[i] = 0
	}
	return removed, travelled, true
}

// removeAt mirrors insertAt: descend to level 0, detach the target there and
// reattach its successor, then patch links and spans while unwinding. At each
// level the removed node reached, the predecessor inherits its link and
// absorbs its span; everywhere above, the crossing span shrinks by one.
//
// The predecessor's recorded span must equal the distance consumed while
// descending into a level; a mismatch means the splice bookkeeping itself is
// broken, and silently continuing would corrupt every later rank query.
func (n *Node[V]) removeAt(level int, locate func(*Node[V], int) (*Node[V], int, bool)) (*Node[V], int, bool) {
	prev, prevDistance, ok := locate(n, level)
	if !ok {
		return nil, 0, false
	}
	if level == 0 {
		removed := prev.detachNext()
		if newNext := removed.detachNext(); newNext != nil {
			prev.replaceNext(newNext)
		}
		return removed, prevDistance + 1, true
	}

	removed, distance, ok := prev.removeAt(level-1, locate)
	if !ok {
		return nil, 0, false
	}
	if level <= removed.level {
		if prev.linksLen[level] != distance {
			panic(fmt.Sprintf("skipnode: span mismatch unwinding removal at level %d: recorded %d, consumed %d",
				level, prev.linksLen[level], distance))
		}
		prev.links[level] = removed.links[level]
		prev.linksLen[level] = distance + removed.linksLen[level] - 1
	} else {
		prev.linksLen[level]--
	}
	return removed, prevDistance + distance, true
}
