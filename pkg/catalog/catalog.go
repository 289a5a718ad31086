package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ksemonis/advisor/pkg/domain"
	"github.com/ksemonis/advisor/pkg/indexing"
)

// ErrEmptyLoad is returned when a load pass produces no valid course
// records. The previous catalog contents, if any, are kept.
var ErrEmptyLoad = errors.New("no valid course records in input")

// Catalog is one advising session: the current course index plus the
// loaded flag, owned explicitly by the caller instead of living in
// package-level state. A load replaces the whole index; it never merges
// with prior data.
//
// The index types themselves are single-threaded, so Catalog serializes
// access with an RWMutex: Load takes the write lock, queries take read
// locks. That makes one session safe to share across HTTP handlers.
type Catalog struct {
	mu       sync.RWMutex
	index    domain.CourseIndex
	loaded   bool
	newIndex func() domain.CourseIndex
}

// New creates an empty session. The default index is the unbalanced
// BST; see WithBalancedIndex.
func New(options ...Option) *Catalog {
	c := &Catalog{
		newIndex: func() domain.CourseIndex { return indexing.NewBST() },
	}
	for _, option := range options {
		option(c)
	}
	c.index = c.newIndex()
	return c
}

// NormalizePath rewrites backslash separators to forward slashes so
// Windows-style paths pasted at the prompt still open.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Load reads course records from the named file and replaces the
// catalog contents with them. Malformed lines are skipped and counted;
// the pass fails only when the file cannot be opened or yields no valid
// records at all (ErrEmptyLoad), in which case the previous contents
// are kept.
func (c *Catalog) Load(filename string) (*domain.LoadResult, error) {
	filename = NormalizePath(filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open course data file: %w", err)
	}
	defer file.Close()
	return c.loadScanner(bufio.NewScanner(file))
}

// LoadReader is Load for an already-open stream of course data lines.
func (c *Catalog) LoadReader(r io.Reader) (*domain.LoadResult, error) {
	return c.loadScanner(bufio.NewScanner(r))
}

func (c *Catalog) loadScanner(scanner *bufio.Scanner) (*domain.LoadResult, error) {
	index := c.newIndex()
	result := &domain.LoadResult{}

	for scanner.Scan() {
		line := scanner.Text()
		course, err := ParseRecord(SplitLine(line))
		if err != nil {
			log.Printf("WARN: Skipping malformed line %q: %v", line, err)
			result.Skipped++
			continue
		}
		if index.Lookup(course.Number) != nil {
			// Retained per the index contract, but shadowed for exact
			// lookup, so make the hazard visible to operators.
			log.Printf("WARN: Duplicate course number %q: record retained but unreachable by lookup", course.Number)
			result.Duplicates++
		}
		index.Insert(course)
		result.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course data: %w", err)
	}
	if result.Loaded == 0 {
		return result, ErrEmptyLoad
	}

	c.mu.Lock()
	c.index = index
	c.loaded = true
	c.mu.Unlock()

	log.Printf("INFO: Loaded %d courses (%d lines skipped, %d duplicate numbers)",
		result.Loaded, result.Skipped, result.Duplicates)
	return result, nil
}

// Find returns the course stored under number. The boolean reports
// whether it was found; absence is a normal outcome.
func (c *Catalog) Find(number string) (domain.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	course := c.index.Lookup(number)
	if course == nil {
		return domain.Course{}, false
	}
	return *course, true
}

// All returns every course in non-decreasing number order.
func (c *Catalog) All() []domain.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	courses := make([]domain.Course, 0, c.index.Len())
	c.index.InOrder(func(course domain.Course) bool {
		courses = append(courses, course)
		return true
	})
	return courses
}

// Loaded reports whether a load pass has completed successfully.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Len reports the number of stored courses, duplicates included.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.Len()
}
