package treap

// node is one vertex of the implicit treap. Its in-order position is never
// stored; it falls out of the sizes of the nodes to its left. pendingAssign
// is only meaningful when hasPendingSet is true — a real assignment can
// legitimately be any int64 including zero, so the "none" sentinel spec.md
// describes is tracked as an explicit bool rather than a magic value.
type node struct {
	value    int64
	priority int64

	size int64
	sum  int64

	leftVal  int64
	rightVal int64

	isAscending  bool
	isDescending bool

	pendingAdd     int64
	pendingAssign  int64
	hasPendingSet  bool
	pendingReverse bool

	left, right *node
}

// newLeaf returns a freshly allocated single-element subtree.
func newLeaf(value int64, priority int64) *node {
	return &node{
		value:        value,
		priority:     priority,
		size:         1,
		sum:          value,
		leftVal:      value,
		rightVal:     value,
		isAscending:  true,
		isDescending: true,
	}
}

// The following free functions treat a nil *node as the neutral element —
// size 0, sum 0, a no-op push/pull — which is the Go re-architecture of the
// source's "call a method through a possibly-null receiver" pattern
// (spec.md §9, "Null-receiver method calls"): Go does not allow dereferencing
// through a nil pointer the way the C++ `this == nullptr` checks do, so every
// call site that might touch a missing child goes through one of these
// instead of a bare method call.

func nodeSize(n *node) int64 {
	if n == nil {
		return 0
	}
	return n.size
}

func nodeSum(n *node) int64 {
	if n == nil {
		return 0
	}
	return n.sum
}

func nodeLeftVal(n *node, self int64) int64 {
	if n == nil {
		return self
	}
	return n.leftVal
}

func nodeRightVal(n *node, self int64) int64 {
	if n == nil {
		return self
	}
	return n.rightVal
}

func nodeIsAscending(n *node) bool {
	if n == nil {
		return true
	}
	return n.isAscending
}

func nodeIsDescending(n *node) bool {
	if n == nil {
		return true
	}
	return n.isDescending
}
