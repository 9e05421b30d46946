package xlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	l := New(1, 2, 3, 4)
	oldHead, oldTail := l.head, l.tail

	l.Reverse()
	requireChain(t, l, 4, 3, 2, 1)
	require.Same(t, oldHead, l.tail)
	require.Same(t, oldTail, l.head)

	l.Reverse()
	requireChain(t, l, 1, 2, 3, 4)
	require.Same(t, oldHead, l.head)
	require.Same(t, oldTail, l.tail)

	single := New(1)
	single.Reverse()
	requireChain(t, single, 1)

	empty := New[int]()
	empty.Reverse()
	requireChain(t, empty)
}

func TestReversed(t *testing.T) {
	l := New(1, 2, 3)
	r := l.Reversed()
	requireChain(t, r, 3, 2, 1)
	requireChain(t, l, 1, 2, 3) // source untouched

	r.PushBack(0)
	requireChain(t, l, 1, 2, 3)

	require.True(t, Equal(l, l.Reversed().Reversed()))
	requireChain(t, New[int]().Reversed())
}

func TestExtend(t *testing.T) {
	t.Run("splices and empties donor", func(t *testing.T) {
		a := New(1, 2, 3)
		b := New(4, 5)
		donorHead := b.head

		a.Extend(b)
		requireChain(t, a, 1, 2, 3, 4, 5)
		requireChain(t, b)
		require.Same(t, donorHead, a.head.next.next.next) // spliced, not copied

		// the emptied donor stays usable
		b.PushBack(6)
		requireChain(t, b, 6)
		requireChain(t, a, 1, 2, 3, 4, 5)
	})
	t.Run("into empty receiver", func(t *testing.T) {
		a := New[int]()
		b := New(1, 2)
		a.Extend(b)
		requireChain(t, a, 1, 2)
		requireChain(t, b)
	})
	t.Run("empty donor", func(t *testing.T) {
		a := New(1, 2)
		a.Extend(New[int]())
		requireChain(t, a, 1, 2)
	})
	t.Run("self extend is a no-op", func(t *testing.T) {
		a := New(1, 2)
		a.Extend(a)
		requireChain(t, a, 1, 2)
	})
	t.Run("nil donor", func(t *testing.T) {
		a := New(1, 2)
		a.Extend(nil)
		requireChain(t, a, 1, 2)
	})
}

func TestCount(t *testing.T) {
	l := New(1, 2, 1, 3, 1)
	require.Equal(t, 3, Count(l, 1))
	require.Equal(t, 1, Count(l, 2))
	require.Equal(t, 0, Count(l, 9))
	require.Equal(t, 0, Count(New[int](), 1))
}

func TestContains(t *testing.T) {
	l := New("a", "b")
	require.True(t, Contains(l, "a"))
	require.True(t, Contains(l, "b"))
	require.False(t, Contains(l, "c"))
	require.False(t, Contains(New[string](), "a"))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(New[int](), New[int]()))
	require.True(t, Equal(New(1, 2, 3), New(1, 2, 3)))
	require.False(t, Equal(New(1, 2, 3), New(1, 2)))
	require.False(t, Equal(New(1, 2, 3), New(1, 9, 3)))
	require.False(t, Equal(New(1), New[int]()))
}
