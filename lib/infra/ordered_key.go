package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey is the element constraint of the linked lists.
// Every type in the set supports both == and <, which
// the search and merge algorithms rely on.
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the element taken from the first sequence.
//  1. i == j (return 0), keeps i ahead of j.
//  2. i > j (return 1), j goes first.
//  3. i < j (return -1), i goes first.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// AscOrderedKeyComparator orders keys in natural ascending order.
func AscOrderedKeyComparator[K OrderedKey](i, j K) int64 {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	}
	return 0
}

// DescOrderedKeyComparator orders keys in descending order.
func DescOrderedKeyComparator[K OrderedKey](i, j K) int64 {
	return AscOrderedKeyComparator[K](j, i)
}
