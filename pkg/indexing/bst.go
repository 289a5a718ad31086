// Package indexing provides ordered in-memory indexes of course records
// keyed on course number. BST is the default; Balanced is a drop-in
// replacement with guaranteed logarithmic operations.
package indexing

import (
	"github.com/ksemonis/advisor/pkg/domain"
)

// node owns one course record and at most one child on each side.
type node struct {
	course domain.Course
	left   *node
	right  *node
}

// BST is an unbalanced binary search tree of course records. Keys in a
// node's left subtree compare strictly less than the node's number;
// keys in the right subtree compare greater or equal. Ties are routed
// right, so records sharing a number are all retained and Lookup finds
// the first-inserted one.
//
// No rebalancing is performed: inserting already-sorted numbers
// degrades the tree to a list and operations to linear time. Use
// Balanced if that matters.
type BST struct {
	root *node
	size int
}

// NewBST creates an empty index.
func NewBST() *BST {
	return &BST{}
}

// Insert adds one record to the tree. Exactly one node is allocated and
// linked; existing nodes are never modified or replaced.
func (t *BST) Insert(course domain.Course) {
	t.root = insert(t.root, course)
	t.size++
}

func insert(n *node, course domain.Course) *node {
	if n == nil {
		return &node{course: course}
	}
	if course.Number < n.course.Number {
		n.left = insert(n.left, course)
	} else {
		n.right = insert(n.right, course)
	}
	return n
}

// Lookup returns the record stored under number, or nil when no record
// has that number. The pointer refers to node-owned storage and stays
// valid across later inserts.
func (t *BST) Lookup(number string) *domain.Course {
	return lookup(t.root, number)
}

func lookup(n *node, number string) *domain.Course {
	if n == nil {
		return nil
	}
	switch {
	case number == n.course.Number:
		return &n.course
	case number < n.course.Number:
		return lookup(n.left, number)
	default:
		return lookup(n.right, number)
	}
}

// InOrder walks the tree left-self-right, yielding records in
// non-decreasing number order. The walk stops when yield returns false.
func (t *BST) InOrder(yield func(domain.Course) bool) {
	walk(t.root, yield)
}

func walk(n *node, yield func(domain.Course) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, yield) {
		return false
	}
	if !yield(n.course) {
		return false
	}
	return walk(n.right, yield)
}

// Len reports the number of stored records, duplicates included.
func (t *BST) Len() int {
	return t.size
}
