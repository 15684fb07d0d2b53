package treap

// extract appends n's in-order sequence to out, pushing each node before
// descending into it so the values observed reflect every pending tag
// (spec.md §4.6).
func extract(n *node, out []int64) []int64 {
	if n == nil {
		return out
	}
	push(n)
	out = extract(n.left, out)
	out = append(out, n.value)
	out = extract(n.right, out)
	return out
}
