package list

// SinglyNode is owned by its predecessor, or by the list head.
type SinglyNode[T comparable] struct {
	next  *SinglyNode[T]
	Value T
}

func NewSinglyNode[T comparable](v T) *SinglyNode[T] {
	return &SinglyNode[T]{Value: v}
}

func (n *SinglyNode[T]) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *SinglyNode[T]) Next() *SinglyNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// DoublyNode owns its next node. The prev link is a back-reference
// for traversal only.
type DoublyNode[T comparable] struct {
	prev, next *DoublyNode[T]
	Value      T
}

func newDoublyNode[T comparable](v T) *DoublyNode[T] {
	return &DoublyNode[T]{Value: v}
}

func (n *DoublyNode[T]) HasNext() bool {
	if n == nil {
		return false
	}
	return n.next != nil
}

func (n *DoublyNode[T]) HasPrev() bool {
	if n == nil {
		return false
	}
	return n.prev != nil
}

func (n *DoublyNode[T]) Next() *DoublyNode[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *DoublyNode[T]) Prev() *DoublyNode[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

// unlink drops both links so a removed node keeps nothing alive.
func (n *DoublyNode[T]) unlink() {
	n.prev, n.next = nil, nil
}
