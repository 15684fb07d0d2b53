package treap

// withRange isolates the inclusive sub-range [l, r] of the tree rooted at
// root by two splits, hands the isolated fragment to mutate, and remerges
// whatever mutate returns in its place (spec.md §4.3). This is the sole
// mechanism by which any range operation touches the tree — every public
// range method on Engine is a thin wrapper around a call to withRange.
//
// mutate may replace the fragment entirely (remove does; Insert does not go
// through withRange at all) or return it
// unchanged after reading or rewriting its tags (sum/assign/add/permute
// do). It must not reach outside the fragment it is given.
func withRange(root *node, l, r int64, mutate func(*node) *node) *node {
	mid, right := splitByPos(root, r+1)
	left, mid := splitByPos(mid, l)
	mid = mutate(mid)
	return merge(merge(left, mid), right)
}
