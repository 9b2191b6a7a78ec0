package skipnode

import "testing"

func buildChain(b *testing.B, n int, seed uint64) *Node[int] {
	b.Helper()
	rng := NewSeededRNG(seed)
	head := NewHead[int](LevelsRequired(n))
	for i := 0; i < n; i++ {
		head.Insert(New(i, rng.Level(head.Level())), i)
	}
	return head
}

func BenchmarkInsertAppend(b *testing.B) {
	rng := NewSeededRNG(1)
	head := NewHead[int](32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head.Insert(New(i, rng.Level(31)), i)
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	const size = 1 << 14
	head := buildChain(b, size, 1)
	rng := NewSeededRNG(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head.Insert(New(i, rng.Level(head.Level())), size/2)
	}
}

func BenchmarkRemoveFront(b *testing.B) {
	head := buildChain(b, b.N, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head.Remove(0)
	}
}

func BenchmarkAdvanceAtMost(b *testing.B) {
	const size = 1 << 16
	head := buildChain(b, size, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head.AdvanceAtMost(head.Level(), i%size)
	}
}
