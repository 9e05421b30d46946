package xlist

import (
	"github.com/Brian-M-J/xlist/internal/xiter"
)

// All yields every (index, element) pair from head to tail.
// On go1.23+ the result can be consumed with range-over-func.
func (l *List[T]) All() xiter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward yields every (index, element) pair from tail to head,
// with indexes counting down to zero.
func (l *List[T]) Backward() xiter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.length - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// Values returns a snapshot of the elements in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
