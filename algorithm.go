package xlist

// Reverse flips the list in place: every node trades its next and prev links,
// then head and tail trade places. No allocation happens.
func (l *List[T]) Reverse() {
	for n := l.head; n != nil; n = n.prev { // n.prev is the old next after the swap
		n.next, n.prev = n.prev, n.next
	}
	l.head, l.tail = l.tail, l.head
}

// Reversed returns a fresh list with the same elements in reverse order.
func (l *List[T]) Reversed() *List[T] {
	out := &List[T]{}
	for n := l.tail; n != nil; n = n.prev {
		out.PushBack(n.value)
	}

	return out
}

// Extend splices the whole chain of other after the tail of l in O(1),
// without copying a single node. Ownership transfers: other is left valid
// and empty. Extending a list with itself is a no-op.
func (l *List[T]) Extend(other *List[T]) {
	if other == nil || other == l {
		return
	}
	if other.head != nil {
		if l.head == nil {
			l.head = other.head
		} else {
			l.tail.next = other.head
			other.head.prev = l.tail
		}
		l.tail = other.tail
		l.length += other.length
	}
	other.head = nil
	other.tail = nil
	other.length = 0
}

// Count returns how many elements of l equal v.
func Count[T comparable](l *List[T], v T) int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			count++
		}
	}

	return count
}

// Contains reports whether at least one element of l equals v.
func Contains[T comparable](l *List[T], v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}

	return false
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.length != b.length {
		return false
	}
	for an, bn := a.head, b.head; an != nil; an, bn = an.next, bn.next {
		if an.value != bn.value {
			return false
		}
	}

	return true
}
