// Package bst provides an unbalanced binary search tree over any totally
// ordered element type. Ordering is supplied by the caller as a comparison
// function. Every operation walks the tree iteratively, so degenerate trees
// built from sorted input cost depth in time but never in call stack.
package bst

import "cmp"

type node[T any] struct {
	value       T
	left, right *node[T]
}

// Tree is a binary search tree holding distinct values. Inserting a value
// that compares equal to one already present is a no-op. The tree does not
// rebalance itself. A Tree is not safe for concurrent mutation.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
}

// New creates an empty tree ordered by compare, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewOrdered creates an empty tree using the natural ordering of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Insert adds value to the tree. Equal values are not reinserted.
func (t *Tree[T]) Insert(value T) {
	link := &t.root
	for *link != nil {
		c := t.compare(value, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return
		}
	}
	*link = &node[T]{value: value}
	t.size++
}

// Search reports whether a value equal to value is stored in the tree.
func (t *Tree[T]) Search(value T) bool {
	return *t.find(value) != nil
}

// Delete removes value from the tree if present. A node with two children
// takes the minimum value of its right subtree, and that minimum is then
// unlinked from the right subtree.
func (t *Tree[T]) Delete(value T) {
	link := t.find(value)
	target := *link
	if target == nil {
		return
	}
	t.size--

	switch {
	case target.left == nil:
		*link = target.right
		return
	case target.right == nil:
		*link = target.left
		return
	}

	// The leftmost node of the right subtree has no left child, so
	// splicing it out is always a zero- or one-child removal.
	succ := &target.right
	for (*succ).left != nil {
		succ = &(*succ).left
	}
	target.value = (*succ).value
	*succ = (*succ).right
}

// find returns the link that points at the node holding value, or the nil
// link where value would be inserted.
func (t *Tree[T]) find(value T) **node[T] {
	link := &t.root
	for *link != nil {
		c := t.compare(value, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return link
		}
	}
	return link
}

// Min returns the smallest value in the tree. The boolean is false when the
// tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the tree. The boolean is false when the
// tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// InOrder returns every value in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var pending []*node[T]
	n := t.root
	for n != nil || len(pending) > 0 {
		for n != nil {
			pending = append(pending, n)
			n = n.left
		}
		n = pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		out = append(out, n.value)
		n = n.right
	}
	return out
}

// PreOrder returns values in node, left, right order.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	pending := []*node[T]{t.root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		out = append(out, n.value)
		if n.right != nil {
			pending = append(pending, n.right)
		}
		if n.left != nil {
			pending = append(pending, n.left)
		}
	}
	return out
}

// PostOrder returns values in left, right, node order.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	// Emit node, right, left and reverse the result.
	pending := []*node[T]{t.root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		out = append(out, n.value)
		if n.left != nil {
			pending = append(pending, n.left)
		}
		if n.right != nil {
			pending = append(pending, n.right)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Height returns the number of nodes on the longest root-to-leaf path, or 0
// for an empty tree. The value depends on insertion order and is meant to be
// informational.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Len returns the number of values stored.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}
