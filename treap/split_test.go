package treap

import "testing"

func buildChain(values []int64, priorities []int64) *node {
	var root *node
	for i, v := range values {
		leaf := newLeaf(v, priorities[i])
		left, right := splitByPos(root, int64(i))
		root = merge(merge(left, leaf), right)
	}
	return root
}

func sequenceOf(t *node) []int64 {
	return extract(t, nil)
}

// TestSplitByPosPartitionsCorrectly verifies splitByPos isolates exactly
// the first k elements of a tree whose shape is fixed by non-monotone
// priorities.
func TestSplitByPosPartitionsCorrectly(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}
	priorities := []int64{5, 3, 9, 1, 7}
	root := buildChain(values, priorities)

	left, right := splitByPos(root, 2)
	if got := sequenceOf(left); !equalSlices(got, []int64{10, 20}) {
		t.Fatalf("left = %v, want [10 20]", got)
	}
	if got := sequenceOf(right); !equalSlices(got, []int64{30, 40, 50}) {
		t.Fatalf("right = %v, want [30 40 50]", got)
	}
}

// TestSplitByValuePartitionsAscendingSubtree verifies splitByValue on an
// ascending subtree separates values <= key from values > key.
func TestSplitByValuePartitionsAscendingSubtree(t *testing.T) {
	values := []int64{1, 3, 3, 5, 8}
	priorities := []int64{2, 8, 4, 9, 1}
	root := buildChain(values, priorities)

	le, gt := splitByValue(root, 3)
	if got := sequenceOf(le); !equalSlices(got, []int64{1, 3, 3}) {
		t.Fatalf("le = %v, want [1 3 3]", got)
	}
	if got := sequenceOf(gt); !equalSlices(got, []int64{5, 8}) {
		t.Fatalf("gt = %v, want [5 8]", got)
	}
}

// TestMergeIsIdentityOnNil verifies merge treats a nil side as the
// identity.
func TestMergeIsIdentityOnNil(t *testing.T) {
	root := buildChain([]int64{1, 2, 3}, []int64{1, 2, 3})
	if merge(root, nil) != root {
		t.Fatalf("merge(t, nil) should return t unchanged")
	}
	if merge(nil, root) != root {
		t.Fatalf("merge(nil, t) should return t unchanged")
	}
}

func equalSlices(a, b []int64) bool {
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
