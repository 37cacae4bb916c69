package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

func ax(q, r int) hex.AxialVector { return hex.NewAxialVector(q, r) }

func TestRectHash_Empty(t *testing.T) {
	s := storage.New[cell]()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(ax(12, -42))
	assert.False(t, ok)
	assert.Nil(t, s.GetMut(ax(12, -42)))
	assert.False(t, s.ContainsPosition(ax(12, -42)))
	_, ok = s.Remove(ax(12, -42))
	assert.False(t, ok)
}

func TestRectHash_GetAndGetMut(t *testing.T) {
	s := storage.New[cell]()
	s.Insert(ax(12, -42), cell{42})

	got, ok := s.Get(ax(12, -42))
	require.True(t, ok)
	assert.Equal(t, cell{42}, got)

	s.GetMut(ax(12, -42)).value = 12
	got, _ = s.Get(ax(12, -42))
	assert.Equal(t, cell{12}, got)

	assert.True(t, s.ContainsPosition(ax(12, -42)))
	assert.False(t, s.ContainsPosition(ax(12, -41)))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestRectHash_InsertReplaceRemove(t *testing.T) {
	s := storage.New[cell]()
	_, replaced := s.Insert(ax(-5, 24), cell{7})
	assert.False(t, replaced)
	old, replaced := s.Insert(ax(-5, 24), cell{8})
	assert.True(t, replaced)
	assert.Equal(t, cell{7}, old)
	assert.Equal(t, 1, s.Len())

	v, ok := s.Remove(ax(-5, 24))
	require.True(t, ok)
	assert.Equal(t, cell{8}, v)
	assert.Equal(t, 0, s.Len())
	_, ok = s.Remove(ax(-5, 24))
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

// TestRectHash_Coordinates fills a window straddling negative and positive
// blocks and reads every position back.
func TestRectHash_Coordinates(t *testing.T) {
	s := storage.New[cell]()
	for q := -10; q < 10; q++ {
		for r := -5; r < 15; r++ {
			s.Insert(ax(q, r), cell{q*89 + r*97})
		}
	}
	for q := -10; q < 10; q++ {
		for r := -5; r < 15; r++ {
			got, ok := s.Get(ax(q, r))
			require.True(t, ok, "(%d,%d)", q, r)
			require.Equal(t, cell{q*89 + r*97}, got)
		}
	}
	assert.Equal(t, 400, s.Len())
	assert.False(t, s.ContainsPosition(ax(10, 0)))
	assert.False(t, s.ContainsPosition(ax(0, -6)))
}

func TestRectHash_Iteration(t *testing.T) {
	s := storage.New[cell]()
	for _, in := range []struct {
		q, r, v int
	}{{12, -42, 93}, {-5, 24, 7}, {12, -42, 42}, {0, 0, 1}} {
		s.Insert(ax(in.q, in.r), cell{in.v})
	}
	require.Equal(t, 3, s.Len())

	got := map[hex.AxialVector]int{}
	for pos, h := range s.All() {
		got[pos] = h.value
	}
	assert.Equal(t, map[hex.AxialVector]int{ax(12, -42): 42, ax(-5, 24): 7, ax(0, 0): 1}, got)

	for h := range s.Hexes() {
		h.value = 0
	}
	for pos := range s.Positions() {
		v, _ := s.Get(pos)
		assert.Equal(t, 0, v.value)
	}

	assert.Equal(t, []hex.AxialVector{ax(-5, 24), ax(0, 0), ax(12, -42)}, s.SortedPositions())
}

func TestRectHash_IterationEarlyStop(t *testing.T) {
	s := storage.New[cell]()
	for q := 0; q < 40; q++ {
		s.Insert(ax(q, -q), cell{q})
	}
	n := 0
	for range s.All() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestRectHash_Clear(t *testing.T) {
	s := storage.New[cell]()
	for q := -20; q < 20; q += 3 {
		s.Insert(ax(q, q), cell{q})
	}
	s.Clear()
	assert.True(t, s.IsEmpty())
	n := 0
	for range s.All() {
		n++
	}
	assert.Zero(t, n)
	_, replaced := s.Insert(ax(1, 1), cell{1})
	assert.False(t, replaced)
	assert.Equal(t, 1, s.Len())
}

// TestRectHash_LenMatchesIteration interleaves inserts and removals and
// checks Len against a full count after each step.
func TestRectHash_LenMatchesIteration(t *testing.T) {
	s := storage.New[int]()
	ref := map[hex.AxialVector]int{}
	for i := 0; i < 500; i++ {
		p := ax((i*37)%29-14, (i*53)%31-15)
		if i%3 == 0 {
			s.Remove(p)
			delete(ref, p)
		} else {
			s.Insert(p, i)
			ref[p] = i
		}
		require.Equal(t, len(ref), s.Len())
	}
	n := 0
	for pos, v := range s.All() {
		require.Equal(t, ref[pos], *v)
		n++
	}
	assert.Equal(t, len(ref), n)
}
