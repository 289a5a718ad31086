package domain

// LoadResult summarizes one load pass over a course data file.
type LoadResult struct {
	Loaded     int `json:"loaded"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

// CatalogSession defines the session operations the serving layers
// depend on: one current index plus the loaded flag, replaced wholesale
// by each load pass.
type CatalogSession interface {
	Load(filename string) (*LoadResult, error)
	Find(number string) (Course, bool)
	All() []Course
	Loaded() bool
	Len() int
}
