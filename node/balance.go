package node

// Balance creates a node from a key/value pair and two subtrees, restoring the
// AVL invariant with at most one (single or double) rotation.
//
// left and right must be valid AVL trees whose heights differ by at most 2. This
// holds whenever exactly one of them has been changed by a single insert or remove
// since they were last balanced against each other.
func Balance[K, V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	lh, rh := left.Height(), right.Height()
	switch {
	case lh == 0 && rh == 0:
		return Leaf(key, value)
	case lh > rh+1:
		assert(lh-rh <= 2, "Balance: left subtree too high")
		return rotateRight(key, value, left, right)
	case rh > lh+1:
		assert(rh-lh <= 2, "Balance: right subtree too high")
		return rotateLeft(key, value, left, right)
	}
	return mk(key, value, left, right)
}

// rotateLeft rebuilds a node whose right subtree is 2 levels higher than its left
// subtree.
//
// Whether a single or a double rotation is needed is decided by comparing the
// heights of the right child's subtrees: if the inner grandchild (right.left) is
// higher than the outer one (right.right), it has to be lifted to the top.
func rotateLeft[K, V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	inner, outer := right.left, right.right
	if inner == nil || inner.height <= outer.Height() {
		return mk(right.key, right.value, mk(key, value, left, inner), outer)
	}
	return mk(inner.key, inner.value,
		mk(key, value, left, inner.left),
		mk(right.key, right.value, inner.right, outer))
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[K, V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	inner, outer := left.right, left.left
	if inner == nil || inner.height <= outer.Height() {
		return mk(left.key, left.value, outer, mk(key, value, inner, right))
	}
	return mk(inner.key, inner.value,
		mk(left.key, left.value, outer, inner.left),
		mk(key, value, inner.right, right))
}
