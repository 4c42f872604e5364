/*
Package avl offers persistent ordered dictionaries with pluggable key ordering.

Dictionaries

A Dict maps keys to values and keeps its keys sorted. Ordering is not tied to a
fixed built-in ordering of the key type: every dictionary carries a comparator,
which is handed in at construction time (EmptyWith, SingletonWith, FromListWith).
For key types with a natural ordering (integers, floats, strings) the constructors
Empty, Singleton and FromList supply it.

Dictionaries are persistent. Every modifying operation returns a new dictionary
and leaves the original untouched:

	d1 := avl.FromList([]avl.Entry[int, string]{{1, "one"}, {2, "two"}})
	d2 := d1.Insert(3, "three")
	d1.Size()  // => 2
	d2.Size()  // => 3

New versions share all unchanged parts of the tree with the old ones. An insert or
remove allocates only the nodes along one search path, i.e. O(log n) nodes.
As dictionaries are never modified after construction, any number of goroutines
may read the same dictionary without synchronization.

Internally a dictionary is an AVL tree (see package node), a binary search tree
where the heights of the two children of every node differ by at most one.

	Operation             |   Complexity
	----------------------+-------------
	Get, Member           |   O(log n)
	Insert, Remove        |   O(log n)
	Size, IsEmpty         |   O(1)
	Keys, Values, ToList  |   O(n)
	Map, Filter           |   O(n), O(n log n)
	Union, Intersect      |   O(m log(n+m))
	Merge                 |   O(n+m)

Combining two dictionaries built with different comparators gives undefined
results. Combinators use the comparator of their first operand.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// DictError is an error type for the avl module
type DictError string

func (e DictError) Error() string {
	return string(e)
}

// ErrUnordered is flagged by Check if keys violate the search tree order.
const ErrUnordered = DictError("avl: keys out of order")

// ErrUnbalanced is flagged by Check if the AVL balance condition is violated.
const ErrUnbalanced = DictError("avl: tree unbalanced")

// ErrHeightMismatch is flagged by Check if a node's memoized height is wrong.
const ErrHeightMismatch = DictError("avl: height mismatch")

// ErrCountMismatch is flagged by Check if the cached element count of a dictionary
// differs from the number of entries in its tree.
const ErrCountMismatch = DictError("avl: count mismatch")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
