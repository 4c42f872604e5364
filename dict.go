package avl

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/npillmayer/avl/node"
)

// Order is the result of a key comparison: LT, EQ or GT.
type Order = node.Order

// Results of a Comparator.
const (
	LT = node.LT
	EQ = node.EQ
	GT = node.GT
)

// Comparator is a total order over keys of type K.
type Comparator[K any] = node.Comparator[K]

// Entry is a key/value pair, the element type of association lists.
type Entry[K, V any] = node.Entry[K, V]

// Dict is a persistent dictionary, mapping keys of type K to values of type V.
//
// A Dict is a small value type holding a comparator, the number of entries and a
// reference to an immutable tree. Copying a Dict is cheap and the copies are
// independent of each other.
//
// A dictionary created by
//
//	Dict[K, V]{}
//
// is a valid, empty dictionary for all read-only operations. It does not carry a
// comparator, however, so inserting into it is a programming error. Use one of the
// constructors Empty or EmptyWith instead.
type Dict[K, V any] struct {
	cmp   Comparator[K]
	count int
	root  *node.Node[K, V]
}

// Empty creates an empty dictionary for a key type with a natural ordering.
func Empty[K cmp.Ordered, V any]() Dict[K, V] {
	return EmptyWith[K, V](node.Natural[K])
}

// EmptyWith creates an empty dictionary, ordering keys by cmp.
func EmptyWith[K, V any](cmp Comparator[K]) Dict[K, V] {
	assert(cmp != nil, "avl: dictionary requires a comparator")
	return Dict[K, V]{cmp: cmp}
}

// Singleton creates a dictionary with one entry, for a key type with a natural
// ordering.
func Singleton[K cmp.Ordered, V any](key K, value V) Dict[K, V] {
	return SingletonWith(node.Natural[K], key, value)
}

// SingletonWith creates a dictionary with one entry, ordering keys by cmp.
func SingletonWith[K, V any](cmp Comparator[K], key K, value V) Dict[K, V] {
	assert(cmp != nil, "avl: dictionary requires a comparator")
	return Dict[K, V]{cmp: cmp, count: 1, root: node.Leaf(key, value)}
}

// FromList creates a dictionary from an association list, for a key type with a
// natural ordering.
//
// Entries are inserted from first to last. If a key occurs more than once, the
// value of the last occurrence wins.
func FromList[K cmp.Ordered, V any](entries []Entry[K, V]) Dict[K, V] {
	return FromListWith(node.Natural[K], entries)
}

// FromListWith creates a dictionary from an association list, ordering keys by
// cmp. If a key occurs more than once, the value of the last occurrence wins.
func FromListWith[K, V any](cmp Comparator[K], entries []Entry[K, V]) Dict[K, V] {
	d := EmptyWith[K, V](cmp)
	for _, e := range entries {
		d = d.Insert(e.Key, e.Value)
	}
	return d
}

// Comparator returns the key ordering of d.
func (d Dict[K, V]) Comparator() Comparator[K] {
	return d.cmp
}

// Root returns the root of the tree holding the entries of d, for inspection by
// validators and renderers. It is nil for an empty dictionary.
func (d Dict[K, V]) Root() *node.Node[K, V] {
	return d.root
}

// IsEmpty reports whether d has no entries.
func (d Dict[K, V]) IsEmpty() bool {
	return d.count == 0
}

// Size returns the number of entries in d. This is an O(1) operation.
func (d Dict[K, V]) Size() int {
	return d.count
}

// Get returns the value associated with key. The boolean result is false if key
// is not present in d.
func (d Dict[K, V]) Get(key K) (V, bool) {
	if d.root == nil {
		var zero V
		return zero, false
	}
	return node.Get(d.cmp, key, d.root)
}

// Member reports whether key is present in d.
func (d Dict[K, V]) Member(key K) bool {
	_, found := d.Get(key)
	return found
}

// Insert returns a dictionary with key mapped to value. If key is already present
// in d, its value is replaced and the size does not change.
func (d Dict[K, V]) Insert(key K, value V) Dict[K, V] {
	assert(d.cmp != nil, "avl: insert into dictionary without comparator")
	root, inserted := node.Insert(d.cmp, key, value, d.root)
	if inserted {
		return Dict[K, V]{cmp: d.cmp, count: d.count + 1, root: root}
	}
	return Dict[K, V]{cmp: d.cmp, count: d.count, root: root}
}

// Remove returns a dictionary without key. If key is not present, d is returned
// unchanged.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	if d.root == nil {
		return d
	}
	root, found := node.Remove(d.cmp, key, d.root)
	if !found {
		return d
	}
	return Dict[K, V]{cmp: d.cmp, count: d.count - 1, root: root}
}

// Update changes the entry for key with function fn.
//
// fn receives the current value and whether key is present. It returns the new
// value and whether key should be present afterwards:
//
//	present | keep  | result
//	--------+-------+----------------------
//	false   | false | d unchanged
//	false   | true  | new entry inserted
//	true    | false | entry removed
//	true    | true  | value replaced
func (d Dict[K, V]) Update(key K, fn func(V, bool) (V, bool)) Dict[K, V] {
	current, present := d.Get(key)
	value, keep := fn(current, present)
	switch {
	case keep:
		return d.Insert(key, value)
	case present:
		return d.Remove(key)
	}
	return d
}

// Clear returns an empty dictionary with the same comparator as d.
func (d Dict[K, V]) Clear() Dict[K, V] {
	return Dict[K, V]{cmp: d.cmp}
}

// Min returns the entry with the smallest key.
func (d Dict[K, V]) Min() (Entry[K, V], bool) {
	return node.Min(d.root)
}

// Max returns the entry with the largest key.
func (d Dict[K, V]) Max() (Entry[K, V], bool) {
	return node.Max(d.root)
}
