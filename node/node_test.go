package node

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkTree verifies search order, AVL balance and memoized heights of n and
// returns the number of nodes.
func checkTree[V any](t *testing.T, n *Node[int, V]) int {
	t.Helper()
	var check func(n *Node[int, V], lo, hi *int) (height, count int)
	check = func(n *Node[int, V], lo, hi *int) (int, int) {
		if n == nil {
			return 0, 0
		}
		if lo != nil && n.key <= *lo || hi != nil && n.key >= *hi {
			t.Fatalf("key %d out of order", n.key)
		}
		lh, lc := check(n.left, lo, &n.key)
		rh, rc := check(n.right, &n.key, hi)
		if lh-rh > 1 || rh-lh > 1 {
			t.Fatalf("node %d unbalanced: left height %d, right height %d", n.key, lh, rh)
		}
		h := 1 + max(lh, rh)
		if h != n.height {
			t.Fatalf("node %d has height %d, expected %d", n.key, n.height, h)
		}
		return h, lc + rc + 1
	}
	_, count := check(n, nil, nil)
	return count
}

func build(keys ...int) *Node[int, string] {
	var root *Node[int, string]
	for _, k := range keys {
		root, _ = Insert(Natural[int], k, "v", root)
	}
	return root
}

func keysOf[V any](n *Node[int, V]) []int {
	return FoldL(n, []int(nil), func(k int, _ V, acc []int) []int {
		return append(acc, k)
	})
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrderString(t *testing.T) {
	if LT.String() != "LT" || EQ.String() != "EQ" || GT.String() != "GT" {
		t.Errorf("unexpected order names: %s %s %s", LT, EQ, GT)
	}
}

func TestFromCompare(t *testing.T) {
	cmp := FromCompare(strings.Compare)
	if cmp("a", "b") != LT || cmp("b", "b") != EQ || cmp("c", "b") != GT {
		t.Errorf("FromCompare(strings.Compare) does not order strings")
	}
}

func TestEmptyTree(t *testing.T) {
	var root *Node[int, string]
	if !root.IsEmpty() || root.Height() != 0 {
		t.Fatalf("nil node should be an empty tree of height 0")
	}
	if root.Left() != nil || root.Right() != nil || root.Key() != 0 || root.Value() != "" {
		t.Errorf("accessors of empty tree should return zero values")
	}
	if _, ok := Get(Natural[int], 1, root); ok {
		t.Errorf("found key in empty tree")
	}
	if _, ok := Min(root); ok {
		t.Errorf("empty tree has no minimum")
	}
	if n, found := Remove(Natural[int], 1, root); found || n != nil {
		t.Errorf("remove from empty tree should report not found")
	}
}

func TestInsertAscendingStaysBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	var root *Node[int, int]
	for i := 0; i < 1023; i++ {
		var inserted bool
		root, inserted = Insert(Natural[int], i, i*i, root)
		if !inserted {
			t.Fatalf("key %d reported as already present", i)
		}
	}
	if n := checkTree(t, root); n != 1023 {
		t.Fatalf("expected 1023 nodes, have %d", n)
	}
	if root.Height() != 10 {
		t.Errorf("ascending inserts of 2^10-1 keys should result in a perfect tree, height = %d", root.Height())
	}
	for i := 0; i < 1023; i++ {
		if v, ok := Get(Natural[int], i, root); !ok || v != i*i {
			t.Fatalf("Get(%d) = %d, %v", i, v, ok)
		}
	}
}

func TestInsertReplacesValue(t *testing.T) {
	root := build(2, 0, 5, 3, 1, 4)
	again, inserted := Insert(Natural[int], 3, "x", root)
	if inserted {
		t.Fatalf("existing key reported as inserted")
	}
	if again.Height() != root.Height() {
		t.Errorf("replacing a value changed the height")
	}
	if v, _ := Get(Natural[int], 3, again); v != "x" {
		t.Errorf("expected new value for key 3, have %q", v)
	}
	if v, _ := Get(Natural[int], 3, root); v != "v" {
		t.Errorf("old version has been modified, value = %q", v)
	}
	if !sameInts(keysOf(again), []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("unexpected keys %v", keysOf(again))
	}
}

func TestInsertSharesUntouchedSubtrees(t *testing.T) {
	root := build(1, 2, 3, 4, 5, 6, 7)
	if root.Key() != 4 || root.Height() != 3 {
		t.Fatalf("expected perfect tree with root 4, have root %d of height %d", root.Key(), root.Height())
	}
	next, _ := Insert(Natural[int], 8, "v", root)
	if next.Left() != root.Left() {
		t.Errorf("left subtree should be shared after inserting into the right subtree")
	}
	if checkTree(t, root) != 7 || checkTree(t, next) != 8 {
		t.Errorf("versions have unexpected sizes")
	}
}

func TestBalanceRotations(t *testing.T) {
	tests := []struct {
		name        string
		left, right *Node[int, string]
		key         int
		root        int
	}{
		{"right-right", nil, mk(2, "v", nil, Leaf(3, "v")), 1, 2},
		{"right-left", nil, mk(3, "v", Leaf(2, "v"), nil), 1, 2},
		{"left-left", mk(2, "v", Leaf(1, "v"), nil), nil, 3, 2},
		{"left-right", mk(1, "v", nil, Leaf(2, "v")), nil, 3, 2},
		{"balanced", Leaf(1, "v"), Leaf(3, "v"), 2, 2},
	}
	for _, tt := range tests {
		n := Balance(tt.key, "v", tt.left, tt.right)
		if n.Key() != tt.root || n.Height() != 2 {
			t.Errorf("%s: expected root %d of height 2, have %d of height %d",
				tt.name, tt.root, n.Key(), n.Height())
		}
		if c := checkTree(t, n); c != 3 {
			t.Errorf("%s: expected 3 nodes, have %d", tt.name, c)
		}
	}
}

func TestBalanceAfterDeletionUsesSingleRotation(t *testing.T) {
	// right child with two grandchildren of equal height
	right := mk(4, "v", Leaf(3, "v"), Leaf(5, "v"))
	n := Balance(1, "v", nil, right)
	if n.Key() != 4 || n.Height() != 3 {
		t.Fatalf("expected root 4 of height 3, have %d of height %d", n.Key(), n.Height())
	}
	checkTree(t, n)
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(17))
	keys := rnd.Perm(500)
	var root *Node[int, string]
	for _, k := range keys {
		root, _ = Insert(Natural[int], k, "v", root)
	}
	versions := []*Node[int, string]{root}
	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		var found bool
		root, found = Remove(Natural[int], k, root)
		if !found {
			t.Fatalf("key %d not found for removal", k)
		}
		if _, ok := Get(Natural[int], k, root); ok {
			t.Fatalf("key %d still present after removal", k)
		}
		if c := checkTree(t, root); c != len(keys)-i-1 {
			t.Fatalf("expected %d nodes after removal of %d, have %d", len(keys)-i-1, k, c)
		}
		if i%100 == 0 {
			versions = append(versions, root)
		}
	}
	if root != nil {
		t.Errorf("tree should be empty after removing all keys")
	}
	if c := checkTree(t, versions[0]); c != 500 {
		t.Errorf("first version has been modified, has %d nodes", c)
	}
}

func TestRemoveMissingKeyKeepsTree(t *testing.T) {
	root := build(1, 2, 3)
	n, found := Remove(Natural[int], 7, root)
	if found || n != root {
		t.Errorf("removing a missing key should return the unchanged tree")
	}
}

func TestRemoveMinMax(t *testing.T) {
	root := build(5, 3, 8, 1, 4, 7, 9, 2, 6)
	first, rest := RemoveMin(root)
	if first.Key != 1 {
		t.Errorf("expected min 1, have %d", first.Key)
	}
	checkTree(t, rest)
	last, rest := RemoveMax(rest)
	if last.Key != 9 {
		t.Errorf("expected max 9, have %d", last.Key)
	}
	if !sameInts(keysOf(rest), []int{2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("unexpected keys after removing extremes: %v", keysOf(rest))
	}
	if e, _ := Min(rest); e.Key != 2 {
		t.Errorf("expected new min 2, have %d", e.Key)
	}
	if e, _ := Max(rest); e.Key != 8 {
		t.Errorf("expected new max 8, have %d", e.Key)
	}
}

func TestFoldOrder(t *testing.T) {
	root := build(2, 0, 5, 3, 1, 4)
	asc := keysOf(root)
	desc := FoldR(root, []int(nil), func(k int, _ string, acc []int) []int {
		return append(acc, k)
	})
	if !sameInts(asc, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("FoldL not ascending: %v", asc)
	}
	if !sameInts(desc, []int{5, 4, 3, 2, 1, 0}) {
		t.Errorf("FoldR not descending: %v", desc)
	}
	entries := Entries(root)
	if len(entries) != 6 || entries[0].Key != 0 || entries[5].Key != 5 {
		t.Errorf("Entries not ascending: %v", entries)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	root := build(1, 2, 3, 4, 5, 6, 7, 8, 9)
	var seen []int
	complete := Walk(root, func(k int, _ string) bool {
		seen = append(seen, k)
		return k < 4
	})
	if complete || !sameInts(seen, []int{1, 2, 3, 4}) {
		t.Errorf("Walk did not stop at 4: %v", seen)
	}
	seen = seen[:0]
	WalkBackward(root, func(k int, _ string) bool {
		seen = append(seen, k)
		return k > 7
	})
	if !sameInts(seen, []int{9, 8, 7}) {
		t.Errorf("WalkBackward did not stop at 7: %v", seen)
	}
}

func TestMapValuesKeepsShape(t *testing.T) {
	root := build(2, 0, 5, 3, 1, 4)
	mapped := MapValues(root, func(k int, v string) int { return k * 10 })
	if mapped.Height() != root.Height() || mapped.Key() != root.Key() {
		t.Errorf("MapValues changed the shape of the tree")
	}
	if v, _ := Get(Natural[int], 4, mapped); v != 40 {
		t.Errorf("expected 40 for key 4, have %d", v)
	}
	checkTree(t, mapped)
}

func TestMergeByKey(t *testing.T) {
	left := Entries(build(0, 1, 2, 3, 7))
	right := build(2, 3, 4, 5, 9)
	type visit struct {
		kind string
		key  int
	}
	visits := MergeByKey(Natural[int],
		func(k int, _ string, acc []visit) []visit { return append(acc, visit{"L", k}) },
		func(k int, _, _ string, acc []visit) []visit { return append(acc, visit{"B", k}) },
		func(k int, _ string, acc []visit) []visit { return append(acc, visit{"R", k}) },
		left, right, nil)
	expected := []visit{{"L", 0}, {"L", 1}, {"B", 2}, {"B", 3}, {"R", 4}, {"R", 5}, {"L", 7}, {"R", 9}}
	if len(visits) != len(expected) {
		t.Fatalf("expected %d visits, have %v", len(expected), visits)
	}
	for i := range expected {
		if visits[i] != expected[i] {
			t.Errorf("visit %d: expected %v, have %v", i, expected[i], visits[i])
		}
	}
}
