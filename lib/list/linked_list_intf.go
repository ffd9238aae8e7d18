package list

import (
	"io"

	"github.com/benz9527/xlinked/lib/infra"
)

// Note that neither list is thread safe.
// Callers have to serialize all the mutations on the same list.

// SinglyLinkedList is a head-only singly linked list.
//
// Traversals that could run forever on a cyclic chain (Foreach, Values,
// Reverse, FindMiddleNode, PrintList) run HasCycle first. Search does not, so the chain
// must be acyclic unless the target is known to sit before the cycle.
type SinglyLinkedList[T infra.OrderedKey] interface {
	Head() *SinglyNode[T]
	IsEmpty() bool
	// Insert prepends a new node with value v and returns it.
	Insert(v T) *SinglyNode[T]
	// InsertNode prepends an existing node. Its next link is overwritten
	// by the current head, so re-inserting a node that is still reachable
	// wires a cycle. A nil node is ignored.
	InsertNode(n *SinglyNode[T]) *SinglyNode[T]
	// Remove pops the head value. It returns false if the list is empty.
	Remove() (T, bool)
	// Search reports whether a node holds value v.
	Search(v T) bool
	// Reverse reverses the chain in place.
	Reverse() error
	// FindMiddleNode returns the middle node. For an even length it
	// returns the second one of the two middles. It returns false if the
	// list is empty or cyclic.
	FindMiddleNode() (*SinglyNode[T], bool)
	// HasCycle reports whether following next links revisits a node.
	HasCycle() bool
	// Foreach traverses the list and executes fn for each node.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, n *SinglyNode[T]) error) error
	Values() ([]T, error)
	// PrintList writes the rendered list as a single line. A cyclic chain
	// is reported instead of rendered.
	PrintList(w io.Writer) error
	String() string
}

// DoublyLinkedList keeps head and tail in the same chain.
// head == nil <=> tail == nil <=> Len() == 0.
type DoublyLinkedList[T infra.OrderedKey] interface {
	Len() int64
	IsEmpty() bool
	Head() *DoublyNode[T]
	Tail() *DoublyNode[T]
	InsertToHead(v T) *DoublyNode[T]
	InsertToTail(v T) *DoublyNode[T]
	RemoveFromHead() (T, bool)
	RemoveFromTail() (T, bool)
	Foreach(fn func(idx int64, n *DoublyNode[T]) error) error
	// ReverseForeach iterates from tail to head through the back-references.
	ReverseForeach(fn func(idx int64, n *DoublyNode[T]) error) error
	Values() []T
	PrintList(w io.Writer) error
	String() string
}
