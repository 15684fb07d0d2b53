package treap

import "fmt"

// debugAssertAscending panics if t's cached flag says its subtree is not
// non-decreasing. splitByValue's precondition (spec.md §9, "value-split
// correctness") only holds on subtrees the permutation engine has just
// proven monotone, so a violation here means a bug in the caller, not bad
// user input — hence a panic rather than a returned error, matching the
// teacher's rule that algorithms assert invariants rather than silently
// producing wrong answers (builder/errors.go confines recoverable failures
// to option constructors; this is the algorithmic analogue for an internal
// precondition).
func debugAssertAscending(t *node) {
	if t != nil && !t.isAscending {
		panic("treap: splitByValue called on a non-ascending subtree")
	}
}

// CheckInvariants walks the engine's tree and verifies every structural
// invariant spec.md §8 names: heap order on priority, and every cached
// aggregate recomputed from a clean in-order traversal that applies all
// pending tags. It is intended for tests, not production call sites — it
// is O(N) and mutates nothing, but it does force a full push of every
// pending tag to make the comparison possible.
func (e *Engine) CheckInvariants() error {
	values := e.Extract()
	if int64(len(values)) != e.Len() {
		return fmt.Errorf("treap: extracted length %d does not match Len() %d", len(values), e.Len())
	}
	return checkSubtree(e.root, values, 0)
}

// checkSubtree recursively verifies n against the expected flattened
// sequence, which must equal what Extract() would report for n's span of
// the whole tree starting at offset.
func checkSubtree(n *node, expected []int64, offset int64) error {
	if n == nil {
		return nil
	}
	push(n)

	leftLen := nodeSize(n.left)
	if err := checkSubtree(n.left, expected, offset); err != nil {
		return err
	}
	pos := offset + leftLen
	if n.value != expected[pos] {
		return fmt.Errorf("treap: node at position %d has value %d, want %d", pos, n.value, expected[pos])
	}
	if err := checkSubtree(n.right, expected, pos+1); err != nil {
		return err
	}

	if n.left != nil && n.left.priority > n.priority {
		return fmt.Errorf("treap: heap order violated at position %d (left child priority %d > parent %d)", pos, n.left.priority, n.priority)
	}
	if n.right != nil && n.right.priority > n.priority {
		return fmt.Errorf("treap: heap order violated at position %d (right child priority %d > parent %d)", pos, n.right.priority, n.priority)
	}

	wantSize := leftLen + nodeSize(n.right) + 1
	if n.size != wantSize {
		return fmt.Errorf("treap: node at position %d has size %d, want %d", pos, n.size, wantSize)
	}
	wantSum := nodeSum(n.left) + nodeSum(n.right) + n.value
	if n.sum != wantSum {
		return fmt.Errorf("treap: node at position %d has sum %d, want %d", pos, n.sum, wantSum)
	}
	wantLeftVal := nodeLeftVal(n.left, n.value)
	if n.leftVal != wantLeftVal {
		return fmt.Errorf("treap: node at position %d has leftVal %d, want %d", pos, n.leftVal, wantLeftVal)
	}
	wantRightVal := nodeRightVal(n.right, n.value)
	if n.rightVal != wantRightVal {
		return fmt.Errorf("treap: node at position %d has rightVal %d, want %d", pos, n.rightVal, wantRightVal)
	}
	wantAscending := junctionHolds(n.left, n.right, n.value, true)
	if n.isAscending != wantAscending {
		return fmt.Errorf("treap: node at position %d has isAscending %v, want %v", pos, n.isAscending, wantAscending)
	}
	wantDescending := junctionHolds(n.left, n.right, n.value, false)
	if n.isDescending != wantDescending {
		return fmt.Errorf("treap: node at position %d has isDescending %v, want %v", pos, n.isDescending, wantDescending)
	}

	return nil
}
