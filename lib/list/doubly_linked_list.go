package list

import (
	"io"

	"github.com/benz9527/xlinked/lib/infra"
)

var _ DoublyLinkedList[int] = (*doublyLinkedList[int])(nil) // Type check assertion

type doublyLinkedList[T infra.OrderedKey] struct {
	head, tail *DoublyNode[T]
	len        int64
}

func NewDoublyLinkedList[T infra.OrderedKey]() DoublyLinkedList[T] {
	return &doublyLinkedList[T]{}
}

func NewDoublyLinkedListWith[T infra.OrderedKey](v T) DoublyLinkedList[T] {
	l := &doublyLinkedList[T]{}
	l.InsertToTail(v)
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *doublyLinkedList[T]) Head() *DoublyNode[T] {
	return l.head
}

func (l *doublyLinkedList[T]) Tail() *DoublyNode[T] {
	return l.tail
}

// first is the only node of an empty list, both boundaries point at it.
func (l *doublyLinkedList[T]) first(e *DoublyNode[T]) *DoublyNode[T] {
	l.head, l.tail = e, e
	l.len = 1
	return e
}

func (l *doublyLinkedList[T]) InsertToHead(v T) *DoublyNode[T] {
	e := newDoublyNode[T](v)
	if l.head == nil {
		return l.first(e)
	}
	e.next = l.head
	l.head.prev = e
	l.head = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) InsertToTail(v T) *DoublyNode[T] {
	e := newDoublyNode[T](v)
	if l.tail == nil {
		return l.first(e)
	}
	e.prev = l.tail
	l.tail.next = e
	l.tail = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) RemoveFromHead() (T, bool) {
	removed := l.head
	if removed == nil {
		var zero T
		return zero, false
	}

	l.head = removed.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		// The list is empty now, tail must go as well.
		l.tail = nil
	}
	removed.unlink()
	l.len--
	return removed.Value, true
}

func (l *doublyLinkedList[T]) RemoveFromTail() (T, bool) {
	removed := l.tail
	if removed == nil {
		var zero T
		return zero, false
	}

	l.tail = removed.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	removed.unlink()
	l.len--
	return removed.Value, true
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, n *DoublyNode[T]) error) error {
	if fn == nil {
		return nil
	}
	var idx int64
	for n := l.head; n != nil; n = n.next {
		if err := fn(idx, n); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, n *DoublyNode[T]) error) error {
	if fn == nil {
		return nil
	}
	var idx int64
	for n := l.tail; n != nil; n = n.prev {
		if err := fn(idx, n); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	_ = l.Foreach(func(_ int64, n *DoublyNode[T]) error {
		values = append(values, n.Value)
		return nil
	})
	return values
}

// PrintList has no cycle guard. The exported operations always move
// head and tail together, so a doubly chain cannot become cyclic.
func (l *doublyLinkedList[T]) PrintList(w io.Writer) error {
	_, err := io.WriteString(w, l.String()+"\n")
	return err
}

func (l *doublyLinkedList[T]) String() string {
	return renderValues(l.Values())
}
