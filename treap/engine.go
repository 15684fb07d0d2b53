package treap

// Engine maintains an ordered sequence of 64-bit signed integers and
// exposes range sum, range assignment, range addition, positional
// insert/remove, and in-place next-/prev-permutation over an arbitrary
// contiguous sub-range, each in expected O(log N) time (spec.md §6).
//
// Engine is single-owner and non-reentrant: it performs no locking of its
// own, because split and merge can touch arbitrary spines and no
// finer-grained lock would help (spec.md §5). A caller that shares one
// Engine across goroutines must serialize every call itself — typically
// with a single mutex at the call boundary, not inside Engine.
type Engine struct {
	root *node
	rng  *priorityRNG
}

// New returns an empty Engine.
func New(opts ...Option) *Engine {
	cfg := newConfig(opts...)
	return &Engine{rng: newPriorityRNG(cfg.rng)}
}

// Len reports the current number of elements.
func (e *Engine) Len() int64 {
	return nodeSize(e.root)
}

// checkRange validates that l and r describe a well-formed inclusive range
// within the current sequence, returning the appropriate sentinel error
// otherwise. l == r (a single element) is always valid here; permutation
// callers additionally treat it as a no-op per spec.md §7, which is
// handled by the caller, not this check.
func (e *Engine) checkRange(l, r int64) error {
	n := e.Len()
	if l < 0 || r < 0 || l >= n || r >= n {
		return ErrIndexOutOfRange
	}
	if l > r {
		return ErrEmptyRange
	}
	return nil
}

// Insert places value at position pos, shifting everything at or after pos
// one step to the right. pos must be in [0, Len()].
func (e *Engine) Insert(pos int64, value int64) error {
	if pos < 0 || pos > e.Len() {
		return ErrIndexOutOfRange
	}
	left, right := splitByPos(e.root, pos)
	leaf := newLeaf(value, e.rng.next())
	e.root = merge(merge(left, leaf), right)
	return nil
}

// Remove deletes the element at pos. pos must be in [0, Len()).
func (e *Engine) Remove(pos int64) error {
	if err := e.checkRange(pos, pos); err != nil {
		return err
	}
	e.root = withRange(e.root, pos, pos, func(*node) *node {
		return nil
	})
	return nil
}

// Sum returns the sum of values in the inclusive range [l, r].
func (e *Engine) Sum(l, r int64) (int64, error) {
	if err := e.checkRange(l, r); err != nil {
		return 0, err
	}
	var sum int64
	e.root = withRange(e.root, l, r, func(m *node) *node {
		sum = nodeSum(m)
		return m
	})
	return sum, nil
}

// Assign sets every value in the inclusive range [l, r] to v.
func (e *Engine) Assign(v, l, r int64) error {
	if err := e.checkRange(l, r); err != nil {
		return err
	}
	e.root = withRange(e.root, l, r, func(m *node) *node {
		applyAssign(m, v)
		return m
	})
	return nil
}

// Add adds delta to every value in the inclusive range [l, r].
func (e *Engine) Add(delta, l, r int64) error {
	if err := e.checkRange(l, r); err != nil {
		return err
	}
	e.root = withRange(e.root, l, r, func(m *node) *node {
		applyAdd(m, delta)
		return m
	})
	return nil
}

// NextPermutation rearranges the inclusive range [l, r] into its
// lexicographic successor in place, wrapping to the smallest arrangement
// when the range is already its largest. l == r is a no-op.
func (e *Engine) NextPermutation(l, r int64) error {
	if err := e.checkRange(l, r); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	e.root = withRange(e.root, l, r, nextPermutation)
	return nil
}

// PrevPermutation rearranges the inclusive range [l, r] into its
// lexicographic predecessor in place, wrapping to the largest arrangement
// when the range is already its smallest. l == r is a no-op.
func (e *Engine) PrevPermutation(l, r int64) error {
	if err := e.checkRange(l, r); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	e.root = withRange(e.root, l, r, prevPermutation)
	return nil
}

// Extract returns the current sequence as a freshly allocated slice.
func (e *Engine) Extract() []int64 {
	return extract(e.root, make([]int64, 0, e.Len()))
}
