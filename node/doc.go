/*
Package node implements the tree engine underneath package avl: a persistent
binary search tree maintaining the AVL height-balance invariant.

The package is intentionally low-level. Functions operate on subtrees and take the
key comparator as an explicit argument; there is no container type holding a root,
a count or a comparator (see package avl for that).

Nodes are immutable. Every modifying operation returns a new root and rebuilds only
the nodes on the search path it touches. All other subtrees are shared between the
old and the new version, so any number of versions of a tree may be held at the
same time.

The empty subtree is represented by a nil *Node. All accessor methods are safe to
call on nil.

Balancing does not store balance factors. Balance is recomputed from the memoized
subtree heights whenever a node is rebuilt.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package node

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
