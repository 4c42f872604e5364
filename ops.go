package avl

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/avl/node"
)

// Keys returns all keys of d in ascending order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.count)
	node.Walk(d.root, func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values of d, in ascending order of their keys.
func (d Dict[K, V]) Values() []V {
	values := make([]V, 0, d.count)
	node.Walk(d.root, func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// ToList returns the entries of d as an association list, in ascending key order.
func (d Dict[K, V]) ToList() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, d.count)
	node.Walk(d.root, func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

// All returns an iterator over all entries of d in ascending key order.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node.Walk(d.root, yield)
	}
}

// Backward returns an iterator over all entries of d in descending key order.
func (d Dict[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node.WalkBackward(d.root, yield)
	}
}

// Filter returns a dictionary with the entries of d for which pred holds.
//
// The result is built by inserting the selected entries into an empty dictionary,
// so its tree shape is independent of the shape of d.
func (d Dict[K, V]) Filter(pred func(K, V) bool) Dict[K, V] {
	return Foldl(d, d.Clear(), func(k K, v V, acc Dict[K, V]) Dict[K, V] {
		if pred(k, v) {
			return acc.Insert(k, v)
		}
		return acc
	})
}

// Partition splits d into the entries for which pred holds and the entries for
// which it does not.
func (d Dict[K, V]) Partition(pred func(K, V) bool) (Dict[K, V], Dict[K, V]) {
	type pair struct{ yes, no Dict[K, V] }
	p := Foldl(d, pair{d.Clear(), d.Clear()}, func(k K, v V, acc pair) pair {
		if pred(k, v) {
			acc.yes = acc.yes.Insert(k, v)
		} else {
			acc.no = acc.no.Insert(k, v)
		}
		return acc
	})
	return p.yes, p.no
}

// String returns a textual representation of d, listing entries in ascending key
// order, e.g.
//
//	{0:"A" 1:"B"}
func (d Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	node.Walk(d.root, func(k K, v V) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%#v", k, v)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// Map applies fn to every entry of d and returns a dictionary with the results as
// values. Keys, comparator and size stay the same.
func Map[K, V, W any](d Dict[K, V], fn func(K, V) W) Dict[K, W] {
	return Dict[K, W]{cmp: d.cmp, count: d.count, root: node.MapValues(d.root, fn)}
}

// Foldl folds over the entries of d, from lowest key to highest key.
func Foldl[K, V, A any](d Dict[K, V], acc A, fn func(K, V, A) A) A {
	return node.FoldL(d.root, acc, fn)
}

// Foldr folds over the entries of d, from highest key to lowest key.
func Foldr[K, V, A any](d Dict[K, V], acc A, fn func(K, V, A) A) A {
	return node.FoldR(d.root, acc, fn)
}
