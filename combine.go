package avl

import "github.com/npillmayer/avl/node"

// Union combines two dictionaries. If a key is present in both, the value from a
// is kept. The result uses the comparator of a.
func Union[K, V any](a, b Dict[K, V]) Dict[K, V] {
	if a.root == nil {
		if a.cmp == nil {
			return b
		}
		return Dict[K, V]{cmp: a.cmp, count: b.count, root: b.root}
	}
	union := Dict[K, V]{cmp: a.cmp, count: b.count, root: b.root}
	return Foldl(a, union, func(k K, v V, acc Dict[K, V]) Dict[K, V] {
		return acc.Insert(k, v)
	})
}

// Intersect keeps the entries of a whose key is present in b. Values are taken
// from a.
func Intersect[K, V, W any](a Dict[K, V], b Dict[K, W]) Dict[K, V] {
	if b.root == nil {
		return a.Clear()
	}
	return a.Filter(func(k K, _ V) bool {
		return b.Member(k)
	})
}

// Diff keeps the entries of a whose key is not present in b.
func Diff[K, V, W any](a Dict[K, V], b Dict[K, W]) Dict[K, V] {
	return Foldl(b, a, func(k K, _ W, acc Dict[K, V]) Dict[K, V] {
		return acc.Remove(k)
	})
}

// Merge is the most general way of combining two dictionaries. It visits every key
// present in a or b exactly once, in ascending key order, and calls
//
//   - onLeft for keys present only in a,
//   - onBoth for keys present in both a and b,
//   - onRight for keys present only in b,
//
// threading an accumulator through the calls. Merge runs in linear time of the
// combined sizes and uses the comparator of a.
func Merge[K, V, W, A any](
	onLeft func(K, V, A) A,
	onBoth func(K, V, W, A) A,
	onRight func(K, W, A) A,
	a Dict[K, V],
	b Dict[K, W],
	acc A,
) A {
	cmp := a.cmp
	if cmp == nil {
		cmp = b.cmp
	}
	if cmp == nil { // both dictionaries are zero values
		return acc
	}
	return node.MergeByKey(cmp, onLeft, onBoth, onRight, a.ToList(), b.root, acc)
}
