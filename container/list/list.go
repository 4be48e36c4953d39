// Package list contains the implementation of a type-safe doubly-linked list.
//
// The List type owns its elements through the chain of next links which
// starts at the front of the list. Each element also carries a link to its
// predecessor, which is only used to navigate backward and never keeps an
// element alive on its own: once an element is unlinked from the forward
// chain, it is released together with the values it holds.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list, or by calling New with the initial values:
//
//	l := list.New(1, 2, 3)
//	l.PushBack(4)
//	l.PushFront(0)
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		...
//	}
//
// Insertions and removals at both ends of the list run in constant time.
// Indexed operations walk the list from whichever end is the closest to the
// index, which bounds the traversal to half of the list length.
package list

import "github.com/segmentio/linkedlist/container"

// Element is a cell of a doubly-linked list.
type Element[T any] struct {
	prev, next *Element[T]

	// The value stored in the element.
	Value T
}

// Next returns the element after e, or nil if e is the last element of its
// list.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Prev returns the element before e, or nil if e is the first element of its
// list.
func (e *Element[T]) Prev() *Element[T] { return e.prev }

// List is a doubly-linked list of values of type T.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// New constructs a list holding the values passed as arguments, in order.
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (l *List[T]) Front() *Element[T] { return l.head }

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (l *List[T]) Back() *Element[T] { return l.tail }

// PushBack inserts v at the back of the list and returns the element holding
// it.
//
// Complexity: O(1)
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.pushBack(e)
	return e
}

// PushFront inserts v at the front of the list and returns the element holding
// it.
//
// Complexity: O(1)
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.pushFront(e)
	return e
}

// PopBack removes the element at the back of the list and returns its value.
// The method returns container.ErrEmpty if the list was empty.
//
// Complexity: O(1)
func (l *List[T]) PopBack() (T, error) {
	e := l.tail
	if e == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	l.remove(e)
	return e.Value, nil
}

// PopFront removes the element at the front of the list and returns its value.
// The method returns container.ErrEmpty if the list was empty.
//
// Complexity: O(1)
func (l *List[T]) PopFront() (T, error) {
	e := l.head
	if e == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	l.remove(e)
	return e.Value, nil
}

// PushBackList moves all the elements of other to the back of the list,
// leaving other empty. The operation runs in constant time.
func (l *List[T]) PushBackList(other *List[T]) {
	if other != l {
		l.pushBackList(other)
	}
}

// PushFrontList moves all the elements of other to the front of the list,
// leaving other empty. The operation runs in constant time.
func (l *List[T]) PushFrontList(other *List[T]) {
	if other != l {
		l.pushFrontList(other)
	}
}

// Clear removes all elements from the list.
//
// Complexity: O(n)
func (l *List[T]) Clear() {
	// Unlink along the forward chain only, the prev links do not own the
	// elements they point to.
	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		e = next
	}
	l.reset()
}

// Range calls f for each value of the list, from front to back. If f returns
// false, the iteration is stopped.
func (l *List[T]) Range(f func(T) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e.Value) {
			break
		}
	}
}

// Values returns a slice holding the values of the list, from front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

func (l *List[T]) pushFront(e *Element[T]) {
	if l.head == nil {
		l.tail = e
	} else {
		e.next = l.head
		l.head.prev = e
	}
	l.head = e
	l.size++
}

func (l *List[T]) pushBack(e *Element[T]) {
	if l.tail == nil {
		l.head = e
	} else {
		e.prev = l.tail
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

func (l *List[T]) pushFrontList(other *List[T]) {
	switch {
	case other.head == nil:
		return
	case l.head == nil:
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	default:
		other.tail.next = l.head
		l.head.prev = other.tail
		l.head = other.head
		l.size += other.size
	}
	other.reset()
}

func (l *List[T]) pushBackList(other *List[T]) {
	switch {
	case other.head == nil:
		return
	case l.head == nil:
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	default:
		other.head.prev = l.tail
		l.tail.next = other.head
		l.tail = other.tail
		l.size += other.size
	}
	other.reset()
}

// insertBefore links e right before mark, which must not be the head of the
// list.
func (l *List[T]) insertBefore(e, mark *Element[T]) {
	prev := mark.prev
	e.prev = prev
	e.next = mark
	prev.next = e
	mark.prev = e
	l.size++
}

func (l *List[T]) remove(e *Element[T]) {
	prev := e.prev
	next := e.next

	e.prev = nil
	e.next = nil

	if prev != nil {
		prev.next = next
	} else {
		l.head = next
	}

	if next != nil {
		next.prev = prev
	} else {
		l.tail = prev
	}

	l.size--
}

func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}
