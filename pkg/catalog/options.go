package catalog

import (
	"github.com/ksemonis/advisor/pkg/domain"
	"github.com/ksemonis/advisor/pkg/indexing"
)

type Option func(*Catalog)

// WithBalancedIndex backs the session with the self-balancing index
// instead of the unbalanced BST. Same contract, logarithmic operations
// even when the input file is already sorted.
func WithBalancedIndex() Option {
	return func(c *Catalog) {
		c.newIndex = func() domain.CourseIndex { return indexing.NewBalanced() }
	}
}

// WithIndex backs the session with a caller-supplied index constructor.
// Each load pass calls it once for the fresh index.
func WithIndex(newIndex func() domain.CourseIndex) Option {
	return func(c *Catalog) {
		c.newIndex = newIndex
	}
}
