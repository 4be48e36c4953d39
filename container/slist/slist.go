// Package slist contains the implementation of a type-safe singly-linked list.
//
// Compared to the doubly-linked list of package list, elements of a singly
// linked list only carry a link to their successor. This halves the linking
// overhead but means that operations which need the predecessor of an element,
// like removing the last element, must walk the list from the front.
package slist

import "github.com/segmentio/linkedlist/container"

// Element is a cell of a singly-linked list.
type Element[T any] struct {
	next *Element[T]

	// The value stored in the element.
	Value T
}

// Next returns the element after e, or nil if e is the last element of its
// list.
func (e *Element[T]) Next() *Element[T] { return e.next }

// List is a singly-linked list of values of type T.
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

// PushBack inserts v at the back of the list.
//
// Complexity: O(1)
func (l *List[T]) PushBack(v T) {
	l.pushBack(&Element[T]{Value: v})
}

// PushFront inserts v at the front of the list.
//
// Complexity: O(1)
func (l *List[T]) PushFront(v T) {
	e := &Element[T]{Value: v, next: l.head}
	if l.tail == nil {
		l.tail = e
	}
	l.head = e
	l.size++
}

// PopBack removes the element at the back of the list and returns its value.
// The method returns container.ErrEmpty if the list was empty.
//
// Complexity: O(n)
func (l *List[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, container.ErrEmpty
	}
	e := l.tail
	if l.head == e {
		l.reset()
		return e.Value, nil
	}
	prev := l.head
	for prev.next != e {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.size--
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
	l.head = e.next
	e.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return e.Value, nil
}

// Get returns the value at the given index of the list.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n)
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, container.OutOfRange(index, l.size)
	}
	return l.at(index).Value, nil
}

// Set replaces the value at the given index of the list.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n)
func (l *List[T]) Set(index int, v T) error {
	if index < 0 || index >= l.size {
		return container.OutOfRange(index, l.size)
	}
	l.at(index).Value = v
	return nil
}

// InsertAt inserts v so it ends up at the given index of the list.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or greater than the list length.
//
// Complexity: O(n)
func (l *List[T]) InsertAt(index int, v T) error {
	switch {
	case index < 0 || index > l.size:
		return container.OutOfRange(index, l.size)
	case index == 0:
		l.PushFront(v)
	case index == l.size:
		l.PushBack(v)
	default:
		prev := l.at(index - 1)
		prev.next = &Element[T]{Value: v, next: prev.next}
		l.size++
	}
	return nil
}

// RemoveAt removes the element at the given index of the list and returns its
// value.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n)
func (l *List[T]) RemoveAt(index int) (T, error) {
	switch {
	case index < 0 || index >= l.size:
		var zero T
		return zero, container.OutOfRange(index, l.size)
	case index == 0:
		return l.PopFront()
	case index == l.size-1:
		return l.PopBack()
	}
	prev := l.at(index - 1)
	e := prev.next
	prev.next = e.next
	e.next = nil
	l.size--
	return e.Value, nil
}

// Clear removes all elements from the list.
//
// Complexity: O(n)
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
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

func (l *List[T]) pushBack(e *Element[T]) {
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

func (l *List[T]) at(index int) *Element[T] {
	e := l.head
	for i := 0; i < index; i++ {
		e = e.next
	}
	return e
}

func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}
