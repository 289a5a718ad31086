package domain

// CourseIndex defines the interface for ordered course indexes.
// Implementations keep records ordered by course number under byte-wise
// lexicographic comparison.
//
// Duplicate numbers are accepted and retained: both records appear in
// InOrder, and Lookup returns the first-inserted one. Rejecting or
// overwriting duplicates is a call-site policy, not an index concern.
//
// Implementations are not safe for concurrent use; callers that share an
// index across goroutines must serialize access themselves.
type CourseIndex interface {
	// Insert adds one record. It never fails and never replaces an
	// existing record.
	Insert(course Course)

	// Lookup returns the record stored under number, or nil when absent.
	// Absence is a normal outcome, not an error. The returned pointer is
	// owned by the index and stays valid across later inserts.
	Lookup(number string) *Course

	// InOrder yields every record in non-decreasing number order. Each
	// call walks the current tree, so it is restartable and reflects
	// inserts made since the previous call. The walk stops early when
	// yield returns false.
	InOrder(yield func(Course) bool)

	// Len reports the number of stored records, duplicates included.
	Len() int
}
