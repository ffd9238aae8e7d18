package list

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xlinked/lib/infra"
)

const (
	renderDelimiter   = " -> "
	renderPrefix      = "List "
	cycleAbortMessage = "Print aborted: Cycle detected"
)

// ErrCycleDetected is returned by the traversals that refuse to walk a cyclic chain.
var ErrCycleDetected = infra.NewErrorStack("[list] cycle detected")

var _ SinglyLinkedList[int] = (*singlyLinkedList[int])(nil) // Type check assertion

type singlyLinkedList[T infra.OrderedKey] struct {
	head *SinglyNode[T]
}

func NewSinglyLinkedList[T infra.OrderedKey]() SinglyLinkedList[T] {
	return &singlyLinkedList[T]{}
}

func NewSinglyLinkedListWith[T infra.OrderedKey](v T) SinglyLinkedList[T] {
	return &singlyLinkedList[T]{head: NewSinglyNode[T](v)}
}

// NewSinglyLinkedListFromNode adopts the chain starting at head as is.
func NewSinglyLinkedListFromNode[T infra.OrderedKey](head *SinglyNode[T]) SinglyLinkedList[T] {
	return &singlyLinkedList[T]{head: head}
}

// NewSinglyLinkedListFromValues keeps the order of values, values[0] becomes the head.
func NewSinglyLinkedListFromValues[T infra.OrderedKey](values ...T) SinglyLinkedList[T] {
	l := &singlyLinkedList[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.Insert(values[i])
	}
	return l
}

func (l *singlyLinkedList[T]) Head() *SinglyNode[T] {
	return l.head
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *singlyLinkedList[T]) Insert(v T) *SinglyNode[T] {
	return l.InsertNode(NewSinglyNode[T](v))
}

func (l *singlyLinkedList[T]) InsertNode(n *SinglyNode[T]) *SinglyNode[T] {
	if n == nil {
		return nil
	}
	n.next = l.head
	l.head = n
	return n
}

func (l *singlyLinkedList[T]) Remove() (T, bool) {
	removed := l.head
	if removed == nil {
		var zero T
		return zero, false
	}
	l.head = removed.next
	return removed.Value, true
}

func (l *singlyLinkedList[T]) Search(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			return true
		}
	}
	return false
}

// Reverse
// [1 -> 2 -> 3] => [3 -> 2 -> 1]
// Each round detaches the current head, points it at the reversed prefix
// and moves on to the detached successor.
func (l *singlyLinkedList[T]) Reverse() error {
	if l.HasCycle() {
		return ErrCycleDetected
	}
	var reversed, next *SinglyNode[T]
	for l.head != nil {
		next = l.head.next
		l.head.next = reversed
		reversed = l.head
		l.head = next
	}
	l.head = reversed
	return nil
}

// FindMiddleNode
// The fast cursor starts one node ahead of the slow one, so
// [1,2,3] => 2 and [1,2,3,4] => 3.
// A cyclic chain has no middle.
func (l *singlyLinkedList[T]) FindMiddleNode() (*SinglyNode[T], bool) {
	if l.head == nil || l.HasCycle() {
		return nil, false
	}
	slow, fast := l.head, l.head.next
	for fast != nil {
		slow = slow.next
		fast = fast.Next().Next()
	}
	return slow, true
}

// HasCycle is Floyd's tortoise and hare. The cursors are compared by
// identity, equal values in different nodes do not count.
func (l *singlyLinkedList[T]) HasCycle() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, n *SinglyNode[T]) error) error {
	if fn == nil {
		return nil
	}
	if l.HasCycle() {
		return ErrCycleDetected
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

func (l *singlyLinkedList[T]) Values() ([]T, error) {
	values := make([]T, 0, 8)
	err := l.Foreach(func(_ int64, n *SinglyNode[T]) error {
		values = append(values, n.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (l *singlyLinkedList[T]) PrintList(w io.Writer) error {
	_, err := io.WriteString(w, l.String()+"\n")
	return err
}

func (l *singlyLinkedList[T]) String() string {
	values, err := l.Values()
	if err != nil {
		return cycleAbortMessage
	}
	return renderValues(values)
}

func renderValues[T comparable](values []T) string {
	return renderPrefix + strings.Join(lo.Map(values, func(v T, _ int) string {
		return fmt.Sprint(v)
	}), renderDelimiter)
}
