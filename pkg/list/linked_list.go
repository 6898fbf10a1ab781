// Package list implements a generic singly linked list.
//
// The list exclusively owns its chain of nodes; nodes never leave the package, so no caller can hold a reference
// into the interior of a list. Unlinked nodes are detached right away and become garbage.
//
// Properties
// - Positions are 0-based offsets from the head.
// - InsertAtBeginning, DeleteAtBeginning and UpdateAtBeginning are O(1); everything else walks the chain in O(n).
// - Failing operations return one of ErrEmptyList, ErrInvalidPosition, ErrPositionOutOfRange or ErrValueNotFound
//   and leave the list untouched.
// - Lookups that miss (SearchByValue, SearchByIndex) are not errors; they return NotFound or false.
// - A list is not safe for concurrent use.
package list

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// linkedListNode represents a node in the singly linked list.
type linkedListNode[T any] struct {
	next  *linkedListNode[T] // nil marks the tail.
	Value T
}

// LinkedList represents a singly linked list. The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	head *linkedListNode[T] // nil when the list is empty.
}

// New returns an empty list.
func New[T comparable]() *LinkedList[T] {
	return new(LinkedList[T])
}

// FromSlice returns a list holding the given `values` in order.
func FromSlice[T comparable](values ...T) *LinkedList[T] {
	l := New[T]()
	var tail *linkedListNode[T]
	for _, v := range values {
		n := &linkedListNode[T]{Value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return l
}

// nodeAt walks `index` links from the head; returns nil if the chain ends first. `index` must be non-negative.
func (l *LinkedList[T]) nodeAt(index int) *linkedListNode[T] {
	current := l.head
	for i := 0; i < index && current != nil; i++ {
		current = current.next
	}
	return current
}

// tail returns the last node or nil if the list is empty.
func (l *LinkedList[T]) tail() *linkedListNode[T] {
	if l.head == nil {
		return nil
	}
	current := l.head
	for current.next != nil {
		current = current.next
	}
	return current
}

// unlinkAfter removes the node following `prev`; `prev.next` must be non-nil.
func unlinkAfter[T any](prev *linkedListNode[T]) {
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
}

// InsertAtBeginning makes `data` the new head.
func (l *LinkedList[T]) InsertAtBeginning(data T) {
	l.head = &linkedListNode[T]{Value: data, next: l.head}
}

// InsertAtEnd appends `data` after the current tail.
func (l *LinkedList[T]) InsertAtEnd(data T) {
	n := &linkedListNode[T]{Value: data}
	if last := l.tail(); last != nil {
		last.next = n
	} else { // List was empty.
		l.head = n
	}
}

// InsertAtPosition inserts `data` so that it ends up at index `position`.
// Position 0 inserts at the beginning and position Len() appends.
func (l *LinkedList[T]) InsertAtPosition(data T, position int) error {
	if position < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	if position == 0 {
		l.InsertAtBeginning(data)
		return nil
	}
	prev := l.nodeAt(position - 1)
	if prev == nil {
		return fmt.Errorf("%w: cannot insert at %d", ErrPositionOutOfRange, position)
	}
	prev.next = &linkedListNode[T]{Value: data, next: prev.next}
	return nil
}

// DeleteAtBeginning removes the head.
func (l *LinkedList[T]) DeleteAtBeginning() error {
	if l.head == nil {
		return ErrEmptyList
	}
	removed := l.head
	l.head = removed.next
	removed.next = nil
	return nil
}

// DeleteAtEnd removes the tail; removing the only node empties the list.
func (l *LinkedList[T]) DeleteAtEnd() error {
	if l.head == nil {
		return ErrEmptyList
	}
	if l.head.next == nil {
		l.head = nil
		return nil
	}
	current := l.head
	for current.next.next != nil {
		current = current.next
	}
	current.next = nil
	return nil
}

// DeleteAtPosition removes the node at index `position`, which must be in [0, Len()).
func (l *LinkedList[T]) DeleteAtPosition(position int) error {
	if position < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	if l.head == nil {
		return ErrEmptyList
	}
	if position == 0 {
		return l.DeleteAtBeginning()
	}
	prev := l.nodeAt(position - 1)
	if prev == nil || prev.next == nil {
		return fmt.Errorf("%w: cannot delete at %d", ErrPositionOutOfRange, position)
	}
	unlinkAfter(prev)
	return nil
}

// DeleteFirstOccurrence removes the first node holding `value`, keeping the order of the rest.
func (l *LinkedList[T]) DeleteFirstOccurrence(value T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	if l.head.Value == value {
		return l.DeleteAtBeginning()
	}
	current := l.head
	for current.next != nil && current.next.Value != value {
		current = current.next
	}
	if current.next == nil {
		return fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	unlinkAfter(current)
	return nil
}

// SearchByValue returns the index of the first node equal to `key`, or NotFound.
func (l *LinkedList[T]) SearchByValue(key T) int {
	position := 0
	for current := l.head; current != nil; current = current.next {
		if current.Value == key {
			return position
		}
		position++
	}
	return NotFound
}

// SearchByIndex returns the value at `index` and true, or false if `index` is outside [0, Len()).
func (l *LinkedList[T]) SearchByIndex(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	n := l.nodeAt(index)
	if n == nil {
		return zero, false
	}
	return n.Value, true
}

// UpdateAtBeginning overwrites the head value.
func (l *LinkedList[T]) UpdateAtBeginning(value T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	l.head.Value = value
	return nil
}

// UpdateAtEnd overwrites the tail value.
func (l *LinkedList[T]) UpdateAtEnd(value T) error {
	last := l.tail()
	if last == nil {
		return ErrEmptyList
	}
	last.Value = value
	return nil
}

// UpdateAtPosition overwrites the value at index `position`, which must reference an existing node.
func (l *LinkedList[T]) UpdateAtPosition(value T, position int) error {
	if position < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	if l.head == nil {
		return ErrEmptyList
	}
	n := l.nodeAt(position)
	if n == nil {
		return fmt.Errorf("%w: cannot update at %d", ErrPositionOutOfRange, position)
	}
	n.Value = value
	return nil
}

// Len counts the nodes from head to tail.
func (l *LinkedList[T]) Len() int {
	count := 0
	for current := l.head; current != nil; current = current.next {
		count++
	}
	return count
}

// All yields (index, value) pairs from head to tail.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := l.head; current != nil; current = current.next {
			if !yield(index, current.Value) {
				return
			}
			index++
		}
	}
}

// Values returns a copy of the list elements in order.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0)
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String renders the list as "1 -> 2 -> None".
func (l *LinkedList[T]) String() string {
	if l.head == nil {
		return "List is empty"
	}
	var builder strings.Builder
	for current := l.head; current != nil; current = current.next {
		_, _ = fmt.Fprint(&builder, current.Value)
		builder.WriteString(" -> ")
	}
	builder.WriteString("None")
	return builder.String()
}

// Display writes the String() form of the list as a single line to `w`.
func (l *LinkedList[T]) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, l.String())
	return err
}
