package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/katalvlaran/sparsemat/store"
)

// eachBacking runs fn with a fresh 2-D int matrix over every shipped store.
func eachBacking(t *testing.T, fn func(t *testing.T, m *matrix.Matrix[int])) {
	t.Helper()
	backings := []struct {
		name string
		make func() store.Store[int]
	}{
		{"Ordered", func() store.Store[int] { return store.NewOrdered[int]() }},
		{"Hash", func() store.Store[int] { return store.NewHash[int](0) }},
	}
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			m, err := matrix.New(matrix.Options[int]{Store: b.make()})
			require.NoError(t, err)
			fn(t, m)
		})
	}
}

func TestIteratorEmptyMatrix(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		require.Equal(t, m.End(), m.Begin())
		require.False(t, m.Begin().Valid())
	})
}

func TestIteratorWalksAllEntries(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		want := map[[2]uint64]int{}
		for i := uint64(0); i < 20; i++ {
			m.At(i%5, i).Set(int(i) + 1)
			want[[2]uint64{i % 5, i}] = int(i) + 1
		}

		got := map[[2]uint64]int{}
		for it := m.Begin(); it != m.End(); it = it.Next() {
			e := it.Entry()
			key := [2]uint64{e.Coords[0], e.Coords[1]}
			_, dup := got[key]
			require.False(t, dup, "duplicate entry at %v", e.Coords)
			got[key] = e.Value
		}
		require.Equal(t, want, got)
	})
}

// TestIteratorSymmetry: advancing Begin exactly Size times reaches End, and
// stepping back from End lands on the last forward-visited entry.
func TestIteratorSymmetry(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		m.At(0, 0).Set(1)
		m.At(0, 1).Set(2)
		m.At(4, 2).Set(3)

		it := m.Begin()
		var last matrix.Iterator[int]
		for i := 0; i < m.Size(); i++ {
			require.True(t, it.Valid())
			last = it
			it = it.Next()
		}
		require.Equal(t, m.End(), it)
		require.Equal(t, last, m.End().Prev())
		require.Equal(t, last.Entry(), m.End().Prev().Entry())
	})
}

func TestIteratorBidirectional(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		m.At(1, 1).Set(11)
		m.At(2, 2).Set(22)

		it := m.Begin().Next()
		require.Equal(t, m.Begin(), it.Prev())
		require.Equal(t, m.Begin().Entry(), it.Prev().Entry())
	})
}

// TestIteratorOrderedOrder pins the traversal order of the ordered store:
// coordinate-lexicographic.
func TestIteratorOrderedOrder(t *testing.T) {
	m, err := matrix.New(matrix.DefaultOptions[int]())
	require.NoError(t, err)

	m.At(1, 0).Set(3)
	m.At(0, 1).Set(2)
	m.At(0, 0).Set(1)

	var seen []int
	for it := m.Begin(); it != m.End(); it = it.Next() {
		seen = append(seen, it.Entry().Value)
	}
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestIteratorEntryIsACopy: mutating a dereferenced entry never writes
// through to the matrix.
func TestIteratorEntryIsACopy(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		m.At(3, 3).Set(5)

		e := m.Begin().Entry()
		e.Value = 99
		e.Coords[0] = 77
		require.Equal(t, 5, m.At(3, 3).Get())
		require.Equal(t, 1, m.Size())
		require.Equal(t, uint64(3), m.Begin().Entry().Coords[0])
	})
}

func TestIteratorEndNotDereferenceable(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		m.At(0, 0).Set(1)
		require.False(t, m.End().Valid())
		require.Panics(t, func() { m.End().Entry() })
	})
}

// Entries deleted by assigning the default disappear from traversal.
func TestIterationSkipsDeletedEntries(t *testing.T) {
	eachBacking(t, func(t *testing.T, m *matrix.Matrix[int]) {
		m.At(0, 0).Set(1)
		m.At(0, 1).Set(2)
		m.At(0, 0).Set(0) // default ⇒ deleted

		count := 0
		for it := m.Begin(); it != m.End(); it = it.Next() {
			e := it.Entry()
			require.Equal(t, uint64(1), e.Coords[1])
			require.Equal(t, 2, e.Value)
			count++
		}
		require.Equal(t, 1, count)
	})
}
