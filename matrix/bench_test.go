package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/katalvlaran/sparsemat/store"
)

// benchCoords builds n deterministic pseudo-random 2-D positions.
func benchCoords(n int) [][2]uint64 {
	rng := rand.New(rand.NewSource(42))
	pos := make([][2]uint64, n)
	for i := range pos {
		pos[i] = [2]uint64{rng.Uint64() % (1 << 20), rng.Uint64() % (1 << 20)}
	}
	return pos
}

// BenchmarkSetHashBacked measures proxy writes against the hash store.
func BenchmarkSetHashBacked(b *testing.B) {
	pos := benchCoords(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := matrix.New(matrix.Options[int]{Store: store.NewHash[int](len(pos))})
		for j, p := range pos {
			m.At(p[0], p[1]).Set(j + 1)
		}
	}
}

// BenchmarkSetOrderedBacked measures proxy writes against the ordered store.
func BenchmarkSetOrderedBacked(b *testing.B) {
	pos := benchCoords(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := matrix.New(matrix.DefaultOptions[int]())
		for j, p := range pos {
			m.At(p[0], p[1]).Set(j + 1)
		}
	}
}

// BenchmarkGetHashBacked measures proxy reads, half hits and half default.
func BenchmarkGetHashBacked(b *testing.B) {
	pos := benchCoords(1 << 14)
	m, _ := matrix.New(matrix.Options[int]{Store: store.NewHash[int](len(pos))})
	for j, p := range pos[:len(pos)/2] {
		m.At(p[0], p[1]).Set(j + 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pos[i%len(pos)]
		_ = m.At(p[0], p[1]).Get()
	}
}
