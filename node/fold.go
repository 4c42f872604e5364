package node

// FoldL folds over the tree in ascending key order (in-order traversal).
func FoldL[K, V, A any](n *Node[K, V], acc A, fn func(K, V, A) A) A {
	if n == nil {
		return acc
	}
	acc = FoldL(n.left, acc, fn)
	acc = fn(n.key, n.value, acc)
	return FoldL(n.right, acc, fn)
}

// FoldR folds over the tree in descending key order (reverse in-order traversal).
func FoldR[K, V, A any](n *Node[K, V], acc A, fn func(K, V, A) A) A {
	if n == nil {
		return acc
	}
	acc = FoldR(n.right, acc, fn)
	acc = fn(n.key, n.value, acc)
	return FoldR(n.left, acc, fn)
}

// Walk calls yield for every entry in ascending key order, until yield returns
// false. Walk returns false if it has been stopped early.
func Walk[K, V any](n *Node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return Walk(n.left, yield) && yield(n.key, n.value) && Walk(n.right, yield)
}

// WalkBackward is like Walk, but visits entries in descending key order.
func WalkBackward[K, V any](n *Node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return WalkBackward(n.right, yield) && yield(n.key, n.value) && WalkBackward(n.left, yield)
}

// MapValues copies a tree, replacing every value with fn(key, value).
// Keys, shape and heights are unchanged.
func MapValues[K, V, W any](n *Node[K, V], fn func(K, V) W) *Node[K, W] {
	if n == nil {
		return nil
	}
	return &Node[K, W]{
		height: n.height,
		key:    n.key,
		value:  fn(n.key, n.value),
		left:   MapValues(n.left, fn),
		right:  MapValues(n.right, fn),
	}
}

// MergeByKey merge-joins an ascending association list with a tree.
//
// Both sides are traversed in ascending key order. For every key present only in
// left, onLeft is called; for every key present in both, onBoth is called; for
// every key present only in right, onRight is called. Every key is visited exactly
// once and the callbacks see keys in ascending order. left has to be sorted
// ascending with respect to cmp and free of duplicates.
func MergeByKey[K, V, W, A any](
	cmp Comparator[K],
	onLeft func(K, V, A) A,
	onBoth func(K, V, W, A) A,
	onRight func(K, W, A) A,
	left []Entry[K, V],
	right *Node[K, W],
	acc A,
) A {
	rest := left
	acc = FoldL(right, acc, func(rkey K, rvalue W, acc A) A {
		for len(rest) > 0 {
			head := rest[0]
			switch cmp(head.Key, rkey) {
			case LT:
				acc = onLeft(head.Key, head.Value, acc)
				rest = rest[1:]
			case EQ:
				rest = rest[1:]
				return onBoth(rkey, head.Value, rvalue, acc)
			default:
				return onRight(rkey, rvalue, acc)
			}
		}
		return onRight(rkey, rvalue, acc)
	})
	for _, e := range rest {
		acc = onLeft(e.Key, e.Value, acc)
	}
	return acc
}

// Entries returns the entries of a tree as an ascending association list.
func Entries[K, V any](n *Node[K, V]) []Entry[K, V] {
	return FoldL(n, []Entry[K, V](nil), func(k K, v V, list []Entry[K, V]) []Entry[K, V] {
		return append(list, Entry[K, V]{Key: k, Value: v})
	})
}
