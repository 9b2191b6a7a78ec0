package skipnode

import "fmt"

// Verify walks every level of the chain below head and reports the first
// inconsistency it finds: a link slice of the wrong length, a broken or
// cyclic back-reference, a span that does not match the real level-0
// distance, or a level whose spans do not sum to the chain length. Span
// corruption never crashes on its own, it just silently skews every later
// rank query, so containers and tests are expected to call this after
// anything suspicious. The walk is O(n) per level.
func Verify[V any](head *Node[V]) error {
	if head == nil {
		return fmt.Errorf("skipnode: nil head")
	}
	if !head.IsHead() {
		return fmt.Errorf("skipnode: head has a predecessor")
	}

	length := 0
	prev := head
	for node := head.links[0]; node != nil; node = node.links[0] {
		length++
		if node.value == nil {
			return fmt.Errorf("skipnode: node at rank %d has no value", length-1)
		}
		if len(node.links) != node.level+1 || len(node.linksLen) != node.level+1 {
			return fmt.Errorf("skipnode: node at rank %d has %d links and %d spans for level %d",
				length-1, len(node.links), len(node.linksLen), node.level)
		}
		if node.prev != prev {
			return fmt.Errorf("skipnode: broken back-reference at rank %d", length-1)
		}
		if node.level > head.level {
			return fmt.Errorf("skipnode: node at rank %d has level %d above head level %d",
				length-1, node.level, head.level)
		}
		prev = node
	}

	for level := 0; level <= head.level; level++ {
		covered := 0
		node := head
		for node.links[level] != nil {
			next := node.links[level]
			if next.level < level {
				return fmt.Errorf("skipnode: level %d link at distance %d reaches a node of level %d",
					level, covered, next.level)
			}
			d, ok := node.Distance(0, next)
			if !ok {
				return fmt.Errorf("skipnode: level %d link at distance %d skips outside the chain",
					level, covered)
			}
			if node.linksLen[level] != d {
				return fmt.Errorf("skipnode: level %d span at distance %d records %d steps, chain has %d",
					level, covered, node.linksLen[level], d)
			}
			covered += d
			node = next
		}
		if covered+node.linksLen[level] != length {
			return fmt.Errorf("skipnode: level %d spans cover %d of %d elements",
				level, covered+node.linksLen[level], length)
		}
	}
	return nil
}
