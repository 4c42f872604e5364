package node

// Insert adds or replaces the value for key and returns the new tree.
//
// The boolean result reports whether key was new to the tree. If key has already
// been present, its value is replaced and the shape of the tree stays the same;
// callers maintaining an element count must not increment it in this case.
func Insert[K, V any](cmp Comparator[K], key K, value V, n *Node[K, V]) (*Node[K, V], bool) {
	if n == nil {
		return Leaf(key, value), true
	}
	switch cmp(key, n.key) {
	case LT:
		left, inserted := Insert(cmp, key, value, n.left)
		return Balance(n.key, n.value, left, n.right), inserted
	case GT:
		right, inserted := Insert(cmp, key, value, n.right)
		return Balance(n.key, n.value, n.left, right), inserted
	}
	return &Node[K, V]{
		height: n.height,
		key:    n.key,
		value:  value,
		left:   n.left,
		right:  n.right,
	}, false
}

// Remove deletes key from the tree.
//
// If key is not present, Remove returns n unchanged together with false.
// Otherwise it returns the new (possibly empty) tree and true.
func Remove[K, V any](cmp Comparator[K], key K, n *Node[K, V]) (*Node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	switch cmp(key, n.key) {
	case LT:
		left, found := Remove(cmp, key, n.left)
		if !found {
			return n, false
		}
		return Balance(n.key, n.value, left, n.right), true
	case GT:
		right, found := Remove(cmp, key, n.right)
		if !found {
			return n, false
		}
		return Balance(n.key, n.value, n.left, right), true
	}
	return removeRoot(n), true
}

// removeRoot deletes the top node of n. The replacement is taken from the higher
// of the two subtrees: the in-order predecessor if the left subtree is at least as
// high as the right one, the in-order successor otherwise.
func removeRoot[K, V any](n *Node[K, V]) *Node[K, V] {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left.Height() >= n.right.Height():
		pred, left := RemoveMax(n.left)
		return Balance(pred.Key, pred.Value, left, n.right)
	}
	succ, right := RemoveMin(n.right)
	return Balance(succ.Key, succ.Value, n.left, right)
}

// RemoveMin detaches the entry with the smallest key from a non-empty tree and
// returns it together with the rebalanced remainder.
func RemoveMin[K, V any](n *Node[K, V]) (Entry[K, V], *Node[K, V]) {
	assert(n != nil, "RemoveMin called for empty tree")
	if n.left == nil {
		return n.Entry(), n.right
	}
	first, left := RemoveMin(n.left)
	return first, Balance(n.key, n.value, left, n.right)
}

// RemoveMax detaches the entry with the largest key from a non-empty tree and
// returns it together with the rebalanced remainder.
func RemoveMax[K, V any](n *Node[K, V]) (Entry[K, V], *Node[K, V]) {
	assert(n != nil, "RemoveMax called for empty tree")
	if n.right == nil {
		return n.Entry(), n.left
	}
	last, right := RemoveMax(n.right)
	return last, Balance(n.key, n.value, n.left, right)
}
