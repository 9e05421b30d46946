/*
Package xlist implements a generic doubly linked list with O(1) insertion and
removal at both ends, signed index access (negative indexes count from the
tail), in-place reversal and O(1) splicing of whole lists.

The zero value of List is an empty list ready to use. A List is not safe for
concurrent mutation; callers must provide external synchronization.
*/
package xlist

import (
	"github.com/Brian-M-J/xlist/internal/xerrors"
)

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly linked chain of nodes. Every node is owned by exactly one
// list; Extend and Move transfer ownership instead of copying.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New builds a list from values in order, one node per value.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// allocNodeHook reports whether the next node allocation succeeds.
// It is assigned only from export_test.go to exercise allocation failure.
var allocNodeHook func() bool

func newNode[T any](v T) (*node[T], error) {
	if allocNodeHook != nil && !allocNodeHook() {
		return nil, xerrors.WithStackTrace(ErrNoMemory, xerrors.WithSkipDepth(1))
	}

	return &node[T]{value: v}, nil
}

func (l *List[T]) linkFront(n *node[T]) {
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

func (l *List[T]) linkBack(n *node[T]) {
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

func (l *List[T]) linkAfter(n, prev *node[T]) {
	n.prev = prev
	n.next = prev.next
	prev.next = n
	if n.next != nil {
		n.next.prev = n
	} else {
		l.tail = n
	}
	l.length++
}

// unlink is the single removal path: it patches both neighbor links, fixes
// head/tail if n was an endpoint, detaches n and returns its value.
func (l *List[T]) unlink(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.length--

	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil

	return v
}

// PushBack appends v at the tail.
func (l *List[T]) PushBack(v T) {
	l.linkBack(&node[T]{value: v})
}

// Append is an alias for PushBack.
func (l *List[T]) Append(v T) {
	l.PushBack(v)
}

// PushFront prepends v at the head.
func (l *List[T]) PushFront(v T) {
	l.linkFront(&node[T]{value: v})
}

// Pop removes the tail element and returns it.
// It reports false without mutating the list if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.tail == nil {
		var zero T

		return zero, false
	}

	return l.unlink(l.tail), true
}

// Clear detaches and abandons every node, leaving the list empty.
func (l *List[T]) Clear() {
	var zero T
	for n := l.head; n != nil; {
		next := n.next
		n.value = zero
		n.next = nil
		n.prev = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Head returns a pointer to the first element, aliasing live list storage.
func (l *List[T]) Head() (*T, bool) {
	if l.head == nil {
		return nil, false
	}

	return &l.head.value, true
}

// Tail returns a pointer to the last element, aliasing live list storage.
func (l *List[T]) Tail() (*T, bool) {
	if l.tail == nil {
		return nil, false
	}

	return &l.tail.value, true
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Clone returns an independent deep copy: same values, fresh nodes, no
// aliasing with the source.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}

	return out
}

// Move transfers ownership of the whole chain to a new list in O(1) and
// leaves the receiver valid and empty.
func (l *List[T]) Move() *List[T] {
	out := &List[T]{
		head:   l.head,
		tail:   l.tail,
		length: l.length,
	}
	l.head = nil
	l.tail = nil
	l.length = 0

	return out
}
