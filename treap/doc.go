// Package treap implements an ordered sequence of 64-bit signed integers
// backed by an implicit (position-keyed) randomized balanced binary search
// tree — a treap.
//
// Every position is computed from subtree sizes rather than stored, so the
// sequence supports positional insert and remove in addition to the usual
// range queries. Three composable range transformations — add, assign, and
// reverse — are propagated lazily, and each node caches enough aggregate
// state (size, sum, endpoint values, ascending/descending run flags) that
// the classical next-permutation and prev-permutation rearrangements can
// locate their pivot on an arbitrary sub-range in O(log N) instead of the
// O(N) a flat-array implementation requires.
//
// Engine is the single exported entry point. It is not safe for concurrent
// use; callers sharing an Engine across goroutines must serialize access
// themselves (see Engine's doc comment).
package treap
