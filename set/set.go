/*
Package set provides persistent ordered sets on top of avl dictionaries.

A Set is an avl.Dict without values. As with dictionaries, every modifying operation
returns a new set and leaves the original one untouched, and ordering of elements is
defined by a comparator.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/avl/node"
)

// Set is a persistent set of elements of type K, kept in ascending order.
type Set[K any] struct {
	dict avl.Dict[K, struct{}]
}

// Empty creates an empty set for an element type with a natural ordering.
func Empty[K cmp.Ordered]() Set[K] {
	return Set[K]{dict: avl.Empty[K, struct{}]()}
}

// EmptyWith creates an empty set, ordering elements by cmp.
func EmptyWith[K any](cmp avl.Comparator[K]) Set[K] {
	return Set[K]{dict: avl.EmptyWith[K, struct{}](cmp)}
}

// Singleton creates a set with one element.
func Singleton[K cmp.Ordered](k K) Set[K] {
	return Set[K]{dict: avl.Singleton(k, struct{}{})}
}

// FromList creates a set from a list of elements. Duplicates are dropped.
func FromList[K cmp.Ordered](elems []K) Set[K] {
	return FromListWith(node.Natural[K], elems)
}

// FromListWith creates a set from a list of elements, ordering them by cmp.
func FromListWith[K any](cmp avl.Comparator[K], elems []K) Set[K] {
	s := EmptyWith(cmp)
	for _, k := range elems {
		s = s.Insert(k)
	}
	return s
}

// Insert returns a set containing k in addition to the elements of s.
func (s Set[K]) Insert(k K) Set[K] {
	return Set[K]{dict: s.dict.Insert(k, struct{}{})}
}

// Remove returns a set without k.
func (s Set[K]) Remove(k K) Set[K] {
	return Set[K]{dict: s.dict.Remove(k)}
}

// Member reports whether k is an element of s.
func (s Set[K]) Member(k K) bool {
	return s.dict.Member(k)
}

// Size returns the number of elements of s.
func (s Set[K]) Size() int {
	return s.dict.Size()
}

// IsEmpty reports whether s has no elements.
func (s Set[K]) IsEmpty() bool {
	return s.dict.IsEmpty()
}

// ToList returns the elements of s in ascending order.
func (s Set[K]) ToList() []K {
	return s.dict.Keys()
}

// All returns an iterator over the elements of s in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.dict.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Filter returns the elements of s for which pred holds.
func (s Set[K]) Filter(pred func(K) bool) Set[K] {
	return Set[K]{dict: s.dict.Filter(func(k K, _ struct{}) bool { return pred(k) })}
}

// Partition splits s into elements for which pred holds and the remaining ones.
func (s Set[K]) Partition(pred func(K) bool) (Set[K], Set[K]) {
	yes, no := s.dict.Partition(func(k K, _ struct{}) bool { return pred(k) })
	return Set[K]{dict: yes}, Set[K]{dict: no}
}

// Dict returns the dictionary underlying s.
func (s Set[K]) Dict() avl.Dict[K, struct{}] {
	return s.dict
}

// Check validates the invariants of the tree underlying s. See avl.Dict.Check.
func (s Set[K]) Check(elemString func(K) string) error {
	return s.dict.Check(elemString)
}

func (s Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k := range s.All() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", k)
	}
	b.WriteByte('}')
	return b.String()
}

// Union returns the elements in a or b. The result uses the comparator of a.
func Union[K any](a, b Set[K]) Set[K] {
	return Set[K]{dict: avl.Union(a.dict, b.dict)}
}

// Intersect returns the elements in both a and b.
func Intersect[K any](a, b Set[K]) Set[K] {
	return Set[K]{dict: avl.Intersect(a.dict, b.dict)}
}

// Diff returns the elements of a which are not in b.
func Diff[K any](a, b Set[K]) Set[K] {
	return Set[K]{dict: avl.Diff(a.dict, b.dict)}
}

// Map applies fn to every element of s and collects the results in a new set,
// ordered by cmp. The result may be smaller than s if fn maps different elements
// to equal ones.
func Map[K, L any](s Set[K], cmp avl.Comparator[L], fn func(K) L) Set[L] {
	return Foldl(s, EmptyWith(cmp), func(k K, acc Set[L]) Set[L] {
		return acc.Insert(fn(k))
	})
}

// Foldl folds over the elements of s in ascending order.
func Foldl[K, A any](s Set[K], acc A, fn func(K, A) A) A {
	return avl.Foldl(s.dict, acc, func(k K, _ struct{}, acc A) A { return fn(k, acc) })
}

// Foldr folds over the elements of s in descending order.
func Foldr[K, A any](s Set[K], acc A, fn func(K, A) A) A {
	return avl.Foldr(s.dict, acc, func(k K, _ struct{}, acc A) A { return fn(k, acc) })
}
