package node

import "cmp"

// Order is the result of comparing two keys.
type Order int8

// Results of a Comparator.
const (
	LT Order = -1
	EQ Order = 0
	GT Order = 1
)

func (o Order) String() string {
	switch o {
	case LT:
		return "LT"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	}
	return "Order(?)"
}

// Comparator is a total order over keys of type K.
//
// A comparator must be consistent and transitive. The tree engine relies on this
// without checking it; an inconsistent comparator results in trees with undefined
// key order, but every operation still terminates.
type Comparator[K any] func(a, b K) Order

// Natural is the comparator for the standard ordering of Go's ordered types.
func Natural[K cmp.Ordered](a, b K) Order {
	return Order(cmp.Compare(a, b))
}

// FromCompare adapts a comparison function in the style of strings.Compare or
// cmp.Compare (negative, zero, positive) to a Comparator.
func FromCompare[K any](compare func(a, b K) int) Comparator[K] {
	assert(compare != nil, "FromCompare requires a comparison function")
	return func(a, b K) Order {
		switch c := compare(a, b); {
		case c < 0:
			return LT
		case c > 0:
			return GT
		}
		return EQ
	}
}
