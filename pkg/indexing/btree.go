package indexing

import (
	"github.com/google/btree"

	"github.com/ksemonis/advisor/pkg/domain"
)

const balancedDegree = 32

// balancedItem keys a record by (number, insertion sequence). The
// sequence makes every key unique, so duplicate numbers are retained,
// and it orders duplicates by insertion so Lookup finds the first one,
// matching the observable semantics of BST.
type balancedItem struct {
	course *domain.Course
	seq    uint64
}

// Balanced is a self-balancing ordered index backed by a B-tree. It
// implements the same contract as BST with logarithmic insert and
// lookup regardless of insertion order, for catalogs loaded from
// already-sorted data.
type Balanced struct {
	tree *btree.BTreeG[balancedItem]
	seq  uint64
}

// NewBalanced creates an empty index.
func NewBalanced() *Balanced {
	less := func(a, b balancedItem) bool {
		if a.course.Number != b.course.Number {
			return a.course.Number < b.course.Number
		}
		return a.seq < b.seq
	}
	return &Balanced{tree: btree.NewG(balancedDegree, less)}
}

// Insert adds one record. Sequence numbers start at 1, so every stored
// key is unique and ReplaceOrInsert never actually replaces.
func (b *Balanced) Insert(course domain.Course) {
	b.seq++
	b.tree.ReplaceOrInsert(balancedItem{course: &course, seq: b.seq})
}

// Lookup returns the first-inserted record stored under number, or nil
// when absent.
func (b *Balanced) Lookup(number string) *domain.Course {
	var found *domain.Course
	pivot := balancedItem{course: &domain.Course{Number: number}}
	b.tree.AscendGreaterOrEqual(pivot, func(item balancedItem) bool {
		if item.course.Number == number {
			found = item.course
		}
		return false
	})
	return found
}

// InOrder yields every record in non-decreasing number order, stopping
// when yield returns false.
func (b *Balanced) InOrder(yield func(domain.Course) bool) {
	b.tree.Ascend(func(item balancedItem) bool {
		return yield(*item.course)
	})
}

// Len reports the number of stored records, duplicates included.
func (b *Balanced) Len() int {
	return b.tree.Len()
}
