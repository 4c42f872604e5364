package avl

import (
	"fmt"

	"github.com/npillmayer/avl/node"
)

// Check validates the structural invariants of d:
//
//   - keys are in search tree order with respect to the comparator of d,
//   - the heights of the children of every node differ by at most 1,
//   - the memoized height of every node is correct,
//   - the cached size of d equals the number of entries in its tree.
//
// keyString is used for formatting keys in error messages; it may be nil, in
// which case keys are formatted with %v. Check returns d's first violation it
// finds, or nil. It is intended for tests.
func (d Dict[K, V]) Check(keyString func(K) string) error {
	if keyString == nil {
		keyString = func(k K) string { return fmt.Sprintf("%v", k) }
	}
	if d.root != nil && d.cmp == nil {
		return fmt.Errorf("%w: non-empty dictionary without comparator", ErrUnordered)
	}
	v := validator[K, V]{cmp: d.cmp, keyString: keyString}
	_, count, err := v.checkNode(d.root, nil, nil)
	if err != nil {
		tracer().Debugf("dictionary check failed: %v", err)
		return err
	}
	if count != d.count {
		return fmt.Errorf("%w: dictionary size is %d, tree holds %d entries", ErrCountMismatch, d.count, count)
	}
	return nil
}

type validator[K, V any] struct {
	cmp       Comparator[K]
	keyString func(K) string
}

// checkNode recomputes height and count of the subtree at n. All keys of the
// subtree have to lie strictly between lo and hi, if present.
func (v validator[K, V]) checkNode(n *node.Node[K, V], lo, hi *K) (height int, count int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	key := n.Key()
	if lo != nil && v.cmp(*lo, key) != LT {
		return 0, 0, fmt.Errorf("%w: key %s is not greater than ancestor %s",
			ErrUnordered, v.keyString(key), v.keyString(*lo))
	}
	if hi != nil && v.cmp(key, *hi) != LT {
		return 0, 0, fmt.Errorf("%w: key %s is not less than ancestor %s",
			ErrUnordered, v.keyString(key), v.keyString(*hi))
	}
	lh, lc, err := v.checkNode(n.Left(), lo, &key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := v.checkNode(n.Right(), &key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fmt.Errorf("%w: node %s has subtrees of height %d and %d",
			ErrUnbalanced, v.keyString(key), lh, rh)
	}
	height = 1 + max(lh, rh)
	if height != n.Height() {
		return 0, 0, fmt.Errorf("%w: node %s has height %d, expected %d",
			ErrHeightMismatch, v.keyString(key), n.Height(), height)
	}
	return height, lc + rc + 1, nil
}
