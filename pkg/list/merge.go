package list

import (
	"cmp"

	"github.com/nobletooth/primer/pkg/utils"
)

// MergeSorted merges two ascending lists into a new ascending list. See MergeSortedFunc.
func MergeSorted[T cmp.Ordered](l1, l2 *LinkedList[T]) *LinkedList[T] {
	return MergeSortedFunc(l1, l2, cmp.Compare[T])
}

// MergeSortedFunc merges two lists sorted ascending by `compare` into one sorted list in O(n+m).
// Nodes are relinked, not copied: both inputs are consumed and left empty. Equal elements keep `l1` first.
// A nil input counts as an empty list. Inputs are expected to be sorted already; this is not verified.
func MergeSortedFunc[T comparable](l1, l2 *LinkedList[T], compare utils.CompareFn[T]) *LinkedList[T] {
	result := New[T]()
	if l1 != nil && l1 == l2 {
		utils.RaiseInvariant("list", "merge_aliased_inputs", "The same list was given as both merge inputs.")
		result.head, l1.head = l1.head, nil
		return result
	}

	// Take ownership of both chains before relinking anything.
	var p1, p2 *linkedListNode[T]
	if l1 != nil {
		p1, l1.head = l1.head, nil
	}
	if l2 != nil {
		p2, l2.head = l2.head, nil
	}

	sentinel := new(linkedListNode[T])
	current := sentinel
	for p1 != nil && p2 != nil {
		if compare(p1.Value, p2.Value) <= 0 {
			current.next, p1 = p1, p1.next
		} else {
			current.next, p2 = p2, p2.next
		}
		current = current.next
	}
	if p1 != nil {
		current.next = p1
	} else {
		current.next = p2
	}

	result.head = sentinel.next
	return result
}
