package indexing_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksemonis/advisor/pkg/domain"
	"github.com/ksemonis/advisor/pkg/indexing"
)

// Both implementations must be observably identical, so every semantic
// test runs against both.
var implementations = []struct {
	name string
	new  func() domain.CourseIndex
}{
	{"BST", func() domain.CourseIndex { return indexing.NewBST() }},
	{"Balanced", func() domain.CourseIndex { return indexing.NewBalanced() }},
}

func collect(idx domain.CourseIndex) []domain.Course {
	var courses []domain.Course
	idx.InOrder(func(c domain.Course) bool {
		courses = append(courses, c)
		return true
	})
	return courses
}

func numbers(courses []domain.Course) []string {
	nums := make([]string, len(courses))
	for i, c := range courses {
		nums[i] = c.Number
	}
	return nums
}

func TestEmptyIndex(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()

			assert.Nil(t, idx.Lookup("CS101"))
			assert.Empty(t, collect(idx))
			assert.Equal(t, 0, idx.Len())
		})
	}
}

func TestInsertAndLookup(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			idx.Insert(domain.NewCourse("CS300", "Data Structures", []string{"CS200"}))
			idx.Insert(domain.NewCourse("CS100", "Intro to CS", nil))
			idx.Insert(domain.NewCourse("CS200", "Discrete Math", []string{"CS100"}))

			course := idx.Lookup("CS200")
			require.NotNil(t, course)
			assert.Equal(t, "Discrete Math", course.Title)
			assert.Equal(t, []string{"CS100"}, course.Prerequisites)

			assert.Nil(t, idx.Lookup("CS999"))
			assert.Equal(t, 3, idx.Len())
		})
	}
}

func TestInOrderYieldsSortedNumbers(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			idx.Insert(domain.NewCourse("CS300", "Data Structures", []string{"CS200"}))
			idx.Insert(domain.NewCourse("CS100", "Intro to CS", nil))
			idx.Insert(domain.NewCourse("CS200", "Discrete Math", []string{"CS100"}))

			assert.Equal(t, []string{"CS100", "CS200", "CS300"}, numbers(collect(idx)))
		})
	}
}

func TestInOrderRandomizedStaysSorted(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			rng := rand.New(rand.NewSource(42))
			keys := []string{
				"MATH201", "CS101", "PHYS150", "CS350", "ENG120",
				"CS499", "BIO110", "CS250", "HIST101", "CS300",
			}
			rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
			for _, k := range keys {
				idx.Insert(domain.NewCourse(k, "Title "+k, nil))
			}

			got := numbers(collect(idx))
			assert.True(t, sort.StringsAreSorted(got), "in-order walk out of order: %v", got)
			assert.Len(t, got, len(keys))
		})
	}
}

func TestSortedInsertionOrderStillWorks(t *testing.T) {
	// Degenerate input for the BST (worst-case depth); must still be
	// correct, just slower.
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			keys := []string{"CS100", "CS200", "CS300", "CS400", "CS500"}
			for _, k := range keys {
				idx.Insert(domain.NewCourse(k, "Title "+k, nil))
			}

			assert.Equal(t, keys, numbers(collect(idx)))
			for _, k := range keys {
				course := idx.Lookup(k)
				require.NotNil(t, course)
				assert.Equal(t, "Title "+k, course.Title)
			}
		})
	}
}

func TestDuplicateNumbersRetainedAndShadowed(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			idx.Insert(domain.NewCourse("CS200", "A", nil))
			idx.Insert(domain.NewCourse("CS200", "B", nil))

			// Lookup sees the first-inserted record; the duplicate is
			// shadowed but still enumerated.
			course := idx.Lookup("CS200")
			require.NotNil(t, course)
			assert.Equal(t, "A", course.Title)

			courses := collect(idx)
			require.Len(t, courses, 2)
			assert.Equal(t, "A", courses[0].Title)
			assert.Equal(t, "B", courses[1].Title)
			assert.Equal(t, 2, idx.Len())
		})
	}
}

func TestInOrderIsRestartable(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			idx.Insert(domain.NewCourse("CS200", "Discrete Math", nil))
			idx.Insert(domain.NewCourse("CS100", "Intro to CS", nil))

			first := collect(idx)
			second := collect(idx)
			assert.Equal(t, first, second)

			// A later insert shows up on the next walk.
			idx.Insert(domain.NewCourse("CS050", "Computing Basics", nil))
			assert.Equal(t, []string{"CS050", "CS100", "CS200"}, numbers(collect(idx)))
		})
	}
}

func TestInOrderStopsWhenYieldReturnsFalse(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			for _, k := range []string{"CS300", "CS100", "CS200", "CS400"} {
				idx.Insert(domain.NewCourse(k, "Title "+k, nil))
			}

			var seen []string
			idx.InOrder(func(c domain.Course) bool {
				seen = append(seen, c.Number)
				return len(seen) < 2
			})
			assert.Equal(t, []string{"CS100", "CS200"}, seen)
		})
	}
}

func TestLookupPointerStableAcrossInserts(t *testing.T) {
	for _, impl := range implementations {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.new()
			idx.Insert(domain.NewCourse("CS200", "Discrete Math", []string{"CS100"}))
			course := idx.Lookup("CS200")
			require.NotNil(t, course)

			for _, k := range []string{"CS100", "CS300", "CS150", "CS250"} {
				idx.Insert(domain.NewCourse(k, "Title "+k, nil))
			}

			assert.Equal(t, "Discrete Math", course.Title)
			assert.Equal(t, []string{"CS100"}, course.Prerequisites)
		})
	}
}
