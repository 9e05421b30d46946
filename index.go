package xlist

import (
	"fmt"

	"github.com/Brian-M-J/xlist/internal/xerrors"
)

// nth resolves a signed index to its node. Non-negative indexes walk forward
// from the head, negative indexes walk backward from the tail (-1 is the last
// element). Indexes outside [-length, length) resolve to nil.
func (l *List[T]) nth(idx int) *node[T] {
	if idx >= l.length || idx < -l.length {
		return nil
	}
	if idx >= 0 {
		n := l.head
		for i := 0; i < idx; i++ {
			n = n.next
		}

		return n
	}
	n := l.tail
	for i := -1; i > idx; i-- {
		n = n.prev
	}

	return n
}

func (l *List[T]) outOfBounds(idx int) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, idx, l.length),
		xerrors.WithSkipDepth(1),
	)
}

// Get returns a pointer to the element at idx, aliasing live list storage.
func (l *List[T]) Get(idx int) (*T, error) {
	n := l.nth(idx)
	if n == nil {
		return nil, l.outOfBounds(idx)
	}

	return &n.value, nil
}

// Set overwrites the element at idx in place. The chain is not modified.
func (l *List[T]) Set(idx int, v T) error {
	n := l.nth(idx)
	if n == nil {
		return l.outOfBounds(idx)
	}
	n.value = v

	return nil
}

// Swap exchanges the elements at positions i and j. The nodes stay in place,
// only values move.
func (l *List[T]) Swap(i, j int) error {
	a := l.nth(i)
	if a == nil {
		return l.outOfBounds(i)
	}
	b := l.nth(j)
	if b == nil {
		return l.outOfBounds(j)
	}
	a.value, b.value = b.value, a.value

	return nil
}

// Insert places v before the position idx currently refers to. A negative idx
// is offset by the length and then clamped to zero, so Insert(-1, v) puts v
// just before the current last element and an arbitrarily large negative idx
// degrades to PushFront. Insert(Len(), v) appends. Any larger idx fails with
// ErrOutOfBounds; on any failure the list is left untouched.
func (l *List[T]) Insert(idx int, v T) error {
	pos := idx
	if pos < 0 {
		pos += l.length
	}
	if pos < 0 {
		pos = 0
	}
	if pos == 0 {
		n, err := newNode(v)
		if err != nil {
			return err
		}
		l.linkFront(n)

		return nil
	}
	// Find the predecessor first: an out-of-bounds index must not allocate,
	// and a failed allocation must not touch any link.
	prev := l.head
	for i := 1; i < pos && prev != nil; i++ {
		prev = prev.next
	}
	if prev == nil {
		return l.outOfBounds(idx)
	}
	n, err := newNode(v)
	if err != nil {
		return err
	}
	l.linkAfter(n, prev)

	return nil
}

// PopAt removes and returns the element at idx. Unlike Insert, a negative idx
// selects the element counted from the tail and is never clamped: any index
// outside [-length, length) reports false without mutating the list.
func (l *List[T]) PopAt(idx int) (T, bool) {
	n := l.nth(idx)
	if n == nil {
		var zero T

		return zero, false
	}

	return l.unlink(n), true
}
