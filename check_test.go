package skipnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsConsistentChains(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 100} {
		assert.NoError(t, Verify(newListForTest(t, n)), "size %d", n)
	}
}

func TestVerifyRejectsNilHead(t *testing.T) {
	assert.Error(t, Verify[int](nil))
}

func TestVerifyRejectsNonHead(t *testing.T) {
	head := newListForTest(t, 3)
	assert.Error(t, Verify(head.Next()))
}

func TestVerifyDetectsCorruptSpan(t *testing.T) {
	head := newListForTest(t, 8)
	require.NoError(t, Verify(head))

	head.linksLen[2]++
	err := Verify(head)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 2")
}

func TestVerifyDetectsBrokenBackReference(t *testing.T) {
	head := newListForTest(t, 4)

	head.Next().Next().prev = head
	assert.Error(t, Verify(head))
}

func TestVerifyReportsLinkBelowItsLevel(t *testing.T) {
	head := newListForTest(t, 4)

	// Point a level-1 link at a node that only participates in level 0; the
	// walk must report this rather than index past the node's links.
	head.links[1] = head.Next()

	var err error
	require.NotPanics(t, func() { err = Verify(head) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 1")
}

func TestVerifyDetectsUndercountedTail(t *testing.T) {
	head := newListForTest(t, 5)

	// The last node's span at level 0 must cover the remaining elements.
	last := nodeAt(t, head, 4)
	last.linksLen[0] = 1
	assert.Error(t, Verify(head))
}
