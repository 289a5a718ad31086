package domain

// Course represents one course record in the catalog. A Course is
// immutable once constructed: the index stores it and never rewrites it.
type Course struct {
	Number        string   `json:"number" msgpack:"number"`
	Title         string   `json:"title" msgpack:"title"`
	Prerequisites []string `json:"prerequisites,omitempty" msgpack:"prerequisites,omitempty"`
}

// NewCourse creates a course record with its own copy of the
// prerequisite list, so later mutation of the caller's slice cannot
// reach into the catalog.
func NewCourse(number, title string, prerequisites []string) Course {
	var prereqs []string
	if len(prerequisites) > 0 {
		prereqs = make([]string, len(prerequisites))
		copy(prereqs, prerequisites)
	}
	return Course{
		Number:        number,
		Title:         title,
		Prerequisites: prereqs,
	}
}
