package node

// Node is a node of a persistent AVL tree. A nil *Node is the empty tree.
//
// Nodes are created by the functions of this package and never change afterwards.
// Clients may inspect them (e.g., for validation or rendering), but there is no way
// to modify a node in place.
type Node[K, V any] struct {
	height int // height of the subtree rooted here, >= 1
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
}

// Entry is a key/value pair, the element type of association lists.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Leaf creates a one-node tree.
func Leaf[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{height: 1, key: key, value: value}
}

// mk creates a node from two subtrees which are already balanced with respect
// to each other.
func mk[K, V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		height: 1 + max(left.Height(), right.Height()),
		key:    key,
		value:  value,
		left:   left,
		right:  right,
	}
}

// IsEmpty reports whether n is the empty tree.
func (n *Node[K, V]) IsEmpty() bool {
	return n == nil
}

// Height returns the height of the subtree rooted at n. The empty tree has height 0.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Key returns the key stored at n, or the zero key for the empty tree.
func (n *Node[K, V]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Value returns the value stored at n, or the zero value for the empty tree.
func (n *Node[K, V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

// Left returns the left subtree of n.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree of n.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Entry returns the key/value pair stored at n.
func (n *Node[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: n.Key(), Value: n.Value()}
}

// Get searches the tree for key and returns the associated value.
// The boolean result is false if key is not present.
func Get[K, V any](cmp Comparator[K], key K, n *Node[K, V]) (V, bool) {
	for n != nil {
		switch cmp(key, n.key) {
		case LT:
			n = n.left
		case GT:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Min returns the entry with the smallest key. The boolean result is false for the
// empty tree.
func Min[K, V any](n *Node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.Entry(), true
}

// Max returns the entry with the largest key. The boolean result is false for the
// empty tree.
func Max[K, V any](n *Node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.Entry(), true
}
