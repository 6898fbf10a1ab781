package list

import "github.com/nobletooth/primer/pkg/utils"

// FindMiddleTwoPointers returns the element at index Len()/2 in a single pass, or false on an empty list.
// The fast pointer advances two links for every link of the slow pointer; for even lengths the second of the
// two middle elements is returned.
func (l *LinkedList[T]) FindMiddleTwoPointers() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	if l.head.next == nil {
		return l.head.Value, true
	}
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.Value, true
}

// FindMiddleByLength returns the element at index Len()/2 by measuring the list first, or false on an empty list.
func (l *LinkedList[T]) FindMiddleByLength() (T, bool) {
	var zero T
	length := l.Len()
	if length == 0 {
		return zero, false
	}
	middle := l.nodeAt(length / 2)
	if middle == nil {
		utils.RaiseInvariant("list", "middle_past_tail", "Chain ended before the measured middle.",
			"length", length)
		return zero, false
	}
	return middle.Value, true
}
