package list

import (
	"github.com/benz9527/xlinked/lib/infra"
)

// MergeSorted merges two ascending lists into a new ascending list.
// Equal values keep the node of first ahead of the node of second.
//
// The merged prefix is built from new nodes, while the remainder of the
// input that runs out last is adopted as is. The result and that input
// share the adopted nodes afterward. If either input is nil or empty,
// the other one is returned unchanged. Both inputs must be acyclic.
func MergeSorted[T infra.OrderedKey](first, second SinglyLinkedList[T]) SinglyLinkedList[T] {
	return MergeSortedFunc[T](first, second, infra.AscOrderedKeyComparator[T])
}

// MergeSortedFunc is MergeSorted with both inputs sorted by cmp.
func MergeSortedFunc[T infra.OrderedKey](
	first, second SinglyLinkedList[T],
	cmp infra.OrderedKeyComparator[T],
) SinglyLinkedList[T] {
	switch {
	case first == nil && second == nil:
		return NewSinglyLinkedList[T]()
	case first == nil || first.IsEmpty():
		if second == nil {
			return first
		}
		return second
	case second == nil || second.IsEmpty():
		return first
	}
	if cmp == nil {
		cmp = infra.AscOrderedKeyComparator[T]
	}

	merged := &singlyLinkedList[T]{}
	left, right := first.Head(), second.Head()
	var tail *SinglyNode[T]
	appendNode := func(n *SinglyNode[T]) {
		if tail == nil {
			merged.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	for left != nil && right != nil {
		if cmp(left.Value, right.Value) <= 0 {
			appendNode(NewSinglyNode[T](left.Value))
			left = left.next
		} else {
			appendNode(NewSinglyNode[T](right.Value))
			right = right.next
		}
	}
	// Exactly one side may still have nodes. Adopt its suffix wholesale.
	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	return merged
}
